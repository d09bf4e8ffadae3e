package diff

import (
	"encoding/json"
	"fmt"
)

// Kind is the category a difference record belongs to. The set is fixed:
// session files carrying any other kind are rejected on load.
type Kind string

const (
	KindKey   Kind = "key"
	KindType  Kind = "type"
	KindValue Kind = "value"
	KindArray Kind = "array"
)

// KindOrder is the fixed order kinds are grouped in when rendering.
var KindOrder = []Kind{KindKey, KindType, KindValue, KindArray}

// KnownKind reports whether k is one of the four difference kinds.
func KnownKind(k Kind) bool {
	switch k {
	case KindKey, KindType, KindValue, KindArray:
		return true
	}
	return false
}

// Side names one of the two compared documents.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// KindSet is the set of difference kinds a run checks for or displays.
type KindSet map[Kind]bool

func NewKindSet(kinds ...Kind) KindSet {
	set := make(KindSet, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

func (s KindSet) Has(k Kind) bool { return s[k] }

// Slice returns the members of the set in KindOrder.
func (s KindSet) Slice() []Kind {
	kinds := make([]Kind, 0, len(s))
	for _, k := range KindOrder {
		if s[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Record is a single classified difference. Path addresses the differing
// field with dotted segments and [i] array indexes. Which of the remaining
// fields are set depends on Kind:
//
//	KindKey:   Side (the document that has the field)
//	KindType:  LeftType, RightType
//	KindValue: LeftValue, RightValue
//	KindArray: Value, Side (the document that has the element)
type Record struct {
	Kind       Kind   `json:"kind"`
	Path       string `json:"path"`
	Side       Side   `json:"side,omitempty"`
	LeftType   string `json:"left_type,omitempty"`
	RightType  string `json:"right_type,omitempty"`
	LeftValue  string `json:"left_value,omitempty"`
	RightValue string `json:"right_value,omitempty"`
	Value      string `json:"value,omitempty"`
}

func NewKeyDiff(path string, side Side) Record {
	return Record{Kind: KindKey, Path: path, Side: side}
}

func NewTypeDiff(path, leftType, rightType string) Record {
	return Record{Kind: KindType, Path: path, LeftType: leftType, RightType: rightType}
}

func NewValueDiff(path, leftValue, rightValue string) Record {
	return Record{Kind: KindValue, Path: path, LeftValue: leftValue, RightValue: rightValue}
}

func NewArrayDiff(path, value string, side Side) Record {
	return Record{Kind: KindArray, Path: path, Value: value, Side: side}
}

// RenderValue turns a tree value into its display string: strings are shown
// as-is, nil as the empty string, everything else as compact JSON.
func RenderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
