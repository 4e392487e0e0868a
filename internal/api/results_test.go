package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults_DecodesWrappedList(t *testing.T) {
	raw := json.RawMessage(`{
		"total_count": 2,
		"results": [
			{"id": "p1", "name": "Alpha", "identifier": "ALP"},
			{"id": "p2", "name": "Beta", "identifier": "BET"}
		]
	}`)

	projects, err := Results[Project](raw)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "BET", projects[1].Identifier)
}

func TestResults_EmptyList(t *testing.T) {
	projects, err := Results[Project](json.RawMessage(`{"results": []}`))
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestResults_MissingResultsKey(t *testing.T) {
	_, err := Results[Project](json.RawMessage(`{"detail": "oops"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'results'")
}

func TestResultsOrArray_BareArray(t *testing.T) {
	raw := json.RawMessage(`[{"id": "m1", "display_name": "Ada"}]`)

	members, err := ResultsOrArray[Member](raw)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada", members[0].DisplayName)
}

func TestResultsOrArray_WrappedList(t *testing.T) {
	raw := json.RawMessage(`{"results": [{"id": "m1", "display_name": "Ada"}]}`)

	members, err := ResultsOrArray[Member](raw)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada", members[0].DisplayName)
}

func TestResultsOrArray_NeitherShape(t *testing.T) {
	_, err := ResultsOrArray[Member](json.RawMessage(`{"detail": "oops"}`))
	require.Error(t, err)
}
