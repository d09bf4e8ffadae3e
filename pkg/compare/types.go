package compare

import "encoding/json"

// Tree value type names as they appear in type difference records.
const (
	TypeNull   = "null"
	TypeBool   = "bool"
	TypeNumber = "number"
	TypeString = "string"
	TypeArray  = "array"
	TypeObject = "object"
)

// TypeName classifies a parsed tree value. Documents are normalized by
// pkg/document before they reach the engine, so every value is one of the
// six tree types; anything unexpected is treated as a string scalar.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBool
	case string:
		return TypeString
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return TypeNumber
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		return TypeString
	}
}
