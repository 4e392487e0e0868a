package settings

// Document is an untyped configuration tree as produced by encoding/json:
// objects are map[string]any, arrays []any, and leaves are string, float64,
// bool or nil.
type Document = map[string]any

// merge layers overlay onto base in place. It recurses wherever both sides
// hold an object; in every other case (scalar, array, null, or mismatched
// kinds) the overlay value replaces the base value outright. Keys absent
// from the overlay keep the base value.
func merge(base, overlay Document) {
	for key, val := range overlay {
		if baseObj, ok := base[key].(Document); ok {
			if overlayObj, ok := val.(Document); ok {
				merge(baseObj, overlayObj)
				continue
			}
		}
		base[key] = val
	}
}
