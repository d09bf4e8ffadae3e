package diff

import (
	"testing"
)

func TestClassify_ForwardsScalarFactsInDiscoveryOrder(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{Kind: FactScalarMismatch, Path: "name", LeftValue: "a", RightValue: "b"})
	raw.Add(Fact{Kind: FactArray, Path: "tags", Left: []any{"x", "y"}, Right: []any{"x"}, OnlyLeft: []any{"y"}})

	records := Classify(raw, false, NewKindSet(KindValue, KindArray))

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Kind != KindValue || records[0].Path != "name" || records[0].LeftValue != "a" || records[0].RightValue != "b" {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[1].Kind != KindArray || records[1].Path != "tags" || records[1].Value != "y" || records[1].Side != SideLeft {
		t.Errorf("Unexpected second record: %+v", records[1])
	}
}

func TestClassify_UnorderedEmitsOneArrayDiffPerMissingElement(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{
		Kind:      FactArray,
		Path:      "tags",
		Left:      []any{"x", "y"},
		Right:     []any{"x", "z"},
		OnlyLeft:  []any{"y"},
		OnlyRight: []any{"z"},
	})

	records := Classify(raw, false, NewKindSet(KindArray))

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Value != "y" || records[0].Side != SideLeft {
		t.Errorf("Expected element y on side left, got %+v", records[0])
	}
	if records[1].Value != "z" || records[1].Side != SideRight {
		t.Errorf("Expected element z on side right, got %+v", records[1])
	}
}

func TestClassify_OrderedUnequalLengthsFallsBackToWholeArrays(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{
		Kind:     FactArray,
		Path:     "tags",
		Left:     []any{"x", "y"},
		Right:    []any{"x"},
		OnlyLeft: []any{"y"},
	})

	records := Classify(raw, true, NewKindSet(KindValue, KindArray))

	if len(records) != 1 {
		t.Fatalf("Expected exactly 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Kind != KindValue {
		t.Errorf("Expected a value record, got %s", r.Kind)
	}
	if r.Path != "tags" {
		t.Errorf("Expected the array's own path, got %s", r.Path)
	}
	if r.LeftValue != `["x","y"]` || r.RightValue != `["x"]` {
		t.Errorf("Expected full serializations, got %q / %q", r.LeftValue, r.RightValue)
	}
}

func TestClassify_OrderedEqualLengthsEmitsIndexedValueDiffs(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{
		Kind:      FactArray,
		Path:      "tags",
		Left:      []any{"x", "y"},
		Right:     []any{"x", "z"},
		OnlyLeft:  []any{"y"},
		OnlyRight: []any{"z"},
	})

	records := Classify(raw, true, NewKindSet(KindValue, KindArray))

	if len(records) != 1 {
		t.Fatalf("Expected exactly 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Kind != KindValue {
		t.Errorf("Expected a value record, got %s", r.Kind)
	}
	if r.Path != "tags[1]" {
		t.Errorf("Expected index-qualified path tags[1], got %s", r.Path)
	}
	if r.LeftValue != "y" || r.RightValue != "z" {
		t.Errorf("Expected element values y / z, got %q / %q", r.LeftValue, r.RightValue)
	}
}

func TestClassify_OrderedNeverEmitsArrayRecords(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{Kind: FactArray, Path: "a", Left: []any{"1"}, Right: []any{"2"}, OnlyLeft: []any{"1"}, OnlyRight: []any{"2"}})
	raw.Add(Fact{Kind: FactArray, Path: "b", Left: []any{"1", "2"}, Right: []any{"1"}, OnlyLeft: []any{"2"}})

	records := Classify(raw, true, NewKindSet(KindKey, KindType, KindValue, KindArray))

	for _, r := range records {
		if r.Kind == KindArray {
			t.Errorf("Ordered mode produced an array record: %+v", r)
		}
	}
}

func TestClassify_FiltersToRequestedKinds(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{Kind: FactKeyOnly, Path: "only_left", Side: SideLeft})
	raw.Add(Fact{Kind: FactTypeMismatch, Path: "typed", LeftType: "string", RightType: "number"})
	raw.Add(Fact{Kind: FactScalarMismatch, Path: "name", LeftValue: "a", RightValue: "b"})
	raw.Add(Fact{Kind: FactArray, Path: "tags", Left: []any{"x"}, Right: []any{"y"}, OnlyLeft: []any{"x"}, OnlyRight: []any{"y"}})

	allKinds := []Kind{KindKey, KindType, KindValue, KindArray}
	for _, requested := range allKinds {
		kinds := NewKindSet(requested)
		for _, ordered := range []bool{false, true} {
			records := Classify(raw, ordered, kinds)
			for _, r := range records {
				if !kinds.Has(r.Kind) {
					t.Errorf("ordered=%v requested=%s: record of kind %s leaked through", ordered, requested, r.Kind)
				}
			}
		}
	}
}

func TestClassify_EqualElementsNeverReported(t *testing.T) {
	raw := &RawDiffSet{}
	raw.Add(Fact{Kind: FactArray, Path: "tags", Left: []any{"x", "y"}, Right: []any{"y", "x"}})

	if records := Classify(raw, false, NewKindSet(KindArray)); len(records) != 0 {
		t.Errorf("Expected no records for equal multisets, got %d", len(records))
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"number", 42.0, "42"},
		{"bool", true, "true"},
		{"array", []any{"x", "y"}, `["x","y"]`},
		{"object", map[string]any{"a": 1.0}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderValue(tt.value); got != tt.want {
				t.Errorf("RenderValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
