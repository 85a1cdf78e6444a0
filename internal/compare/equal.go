package compare

import (
	"encoding/json"

	"github.com/mcncl/jsoncompare/internal/models"
)

// StructuralEqual reports whether two JSON trees are equal by structure and
// value. Object field order is ignored; array elements are compared
// positionally (index 0 against index 0, and so on).
//
// Numbers are compared by their textual form, so "1" and "1.0" are not
// equal. This is the same notion of equality the parser preserves via
// json.Number and it keeps the boolean verdict consistent with the rendered
// values the classifier sees.
func StructuralEqual(a, b models.JSONValue) bool {
	switch av := a.(type) {
	case models.JSONObject:
		bv, ok := b.(models.JSONObject)
		return ok && equalObjects(av, bv)
	case models.JSONArray:
		bv, ok := b.(models.JSONArray)
		return ok && equalArrays(av, bv)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av.String() == bv.String()
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	case models.Binary:
		// No native comparison exists for binary payloads; two nodes are
		// considered equal only when their rendered forms are identical.
		bv, ok := b.(models.Binary)
		return ok && ValueString(av) == ValueString(bv)
	case models.Opaque:
		bv, ok := b.(models.Opaque)
		return ok && ValueString(av) == ValueString(bv)
	default:
		// Missing slots and unknown kinds never compare equal.
		return false
	}
}

func equalObjects(a, b models.JSONObject) bool {
	if len(a) != len(b) {
		return false
	}
	for name, valueA := range a {
		valueB, present := b[name]
		if !present {
			return false
		}
		if !StructuralEqual(valueA, valueB) {
			return false
		}
	}
	return true
}

func equalArrays(a, b models.JSONArray) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !StructuralEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
