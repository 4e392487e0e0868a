package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_DisjointKeys(t *testing.T) {
	base := Document{"a": float64(1)}
	merge(base, Document{"b": float64(2)})
	assert.Equal(t, Document{"a": float64(1), "b": float64(2)}, base)
}

func TestMerge_NestedObjects(t *testing.T) {
	base := Document{"outer": Document{"a": float64(1), "b": float64(2)}}
	merge(base, Document{"outer": Document{"b": float64(99), "c": float64(3)}})
	assert.Equal(t, Document{
		"outer": Document{"a": float64(1), "b": float64(99), "c": float64(3)},
	}, base)
}

func TestMerge_OverlayScalarReplacesObject(t *testing.T) {
	base := Document{"key": Document{"nested": true}}
	merge(base, Document{"key": "flat"})
	assert.Equal(t, Document{"key": "flat"}, base)
}

func TestMerge_OverlayObjectReplacesScalar(t *testing.T) {
	base := Document{"key": "flat"}
	merge(base, Document{"key": Document{"nested": true}})
	assert.Equal(t, Document{"key": Document{"nested": true}}, base)
}

func TestMerge_NullReplacesValue(t *testing.T) {
	base := Document{"api_key": "secret"}
	merge(base, Document{"api_key": nil})
	assert.Equal(t, Document{"api_key": nil}, base)
}

func TestMerge_ArraysReplaceWholesale(t *testing.T) {
	base := Document{"list": []any{"a", "b"}}
	merge(base, Document{"list": []any{"c"}})
	assert.Equal(t, Document{"list": []any{"c"}}, base)
}

func TestMerge_MissingOverlayKeysKeepBase(t *testing.T) {
	base := Document{"keep": "me", "outer": Document{"keep": true}}
	merge(base, Document{"outer": Document{"add": float64(1)}})
	assert.Equal(t, Document{
		"keep":  "me",
		"outer": Document{"keep": true, "add": float64(1)},
	}, base)
}
