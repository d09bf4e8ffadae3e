package diff

import (
	"fmt"
	"reflect"
)

// Classify turns the engine's raw facts into final difference records,
// applying the order-sensitivity policy to array facts and filtering
// everything to the requested kinds. Records are emitted in the facts'
// discovery order.
func Classify(raw *RawDiffSet, orderSensitive bool, kinds KindSet) []Record {
	records := []Record{}
	for _, f := range raw.Facts {
		switch f.Kind {
		case FactKeyOnly:
			if kinds.Has(KindKey) {
				records = append(records, NewKeyDiff(f.Path, f.Side))
			}
		case FactTypeMismatch:
			if kinds.Has(KindType) {
				records = append(records, NewTypeDiff(f.Path, f.LeftType, f.RightType))
			}
		case FactScalarMismatch:
			if kinds.Has(KindValue) {
				records = append(records, NewValueDiff(f.Path, f.LeftValue, f.RightValue))
			}
		case FactArray:
			records = append(records, classifyArray(f, orderSensitive, kinds)...)
		}
	}
	return records
}

// classifyArray applies the order policy to a single array fact.
//
// Unordered: one array record per element present on one side only.
// Ordered, unequal lengths: a single value record at the array's own path
// holding both full serializations. Ordered, equal lengths: one value record
// per index whose elements differ. Ordered mode never produces array
// records, whether or not the array kind was requested.
func classifyArray(f Fact, orderSensitive bool, kinds KindSet) []Record {
	if !orderSensitive {
		if !kinds.Has(KindArray) {
			return nil
		}
		var records []Record
		for _, v := range f.OnlyLeft {
			records = append(records, NewArrayDiff(f.Path, RenderValue(v), SideLeft))
		}
		for _, v := range f.OnlyRight {
			records = append(records, NewArrayDiff(f.Path, RenderValue(v), SideRight))
		}
		return records
	}

	if !kinds.Has(KindValue) {
		return nil
	}
	if len(f.Left) != len(f.Right) {
		return []Record{NewValueDiff(f.Path, RenderValue(f.Left), RenderValue(f.Right))}
	}
	var records []Record
	for i := range f.Left {
		if !reflect.DeepEqual(f.Left[i], f.Right[i]) {
			path := fmt.Sprintf("%s[%d]", f.Path, i)
			records = append(records, NewValueDiff(path, RenderValue(f.Left[i]), RenderValue(f.Right[i])))
		}
	}
	return records
}
