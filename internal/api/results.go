package api

import (
	"encoding/json"
	"errors"
)

// Results decodes a list response of the usual shape: a top-level object
// wrapping a "results" array. A response without that array is an error.
func Results[T any](raw json.RawMessage) ([]T, error) {
	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Results == nil {
		return nil, errors.New("unexpected response format: missing 'results' array")
	}
	return wrapped.Results, nil
}

// ResultsOrArray decodes endpoints that sometimes return a bare top-level
// array instead of the results wrapper (the members list does this). The
// bare array is tried first.
func ResultsOrArray[T any](raw json.RawMessage) ([]T, error) {
	var arr []T
	if err := json.Unmarshal(raw, &arr); err == nil && arr != nil {
		return arr, nil
	}
	return Results[T](raw)
}
