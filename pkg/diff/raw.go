package diff

// FactKind tags an unclassified fact emitted by the comparison engine.
type FactKind int

const (
	FactKeyOnly FactKind = iota
	FactTypeMismatch
	FactScalarMismatch
	FactArray
)

// Fact is one raw structural difference found by the comparison engine,
// before the order-sensitivity policy is applied. Which fields are set
// depends on Kind:
//
//	FactKeyOnly:        Side (the document that has the key)
//	FactTypeMismatch:   LeftType, RightType
//	FactScalarMismatch: LeftValue, RightValue (already rendered)
//	FactArray:          Left, Right (the raw arrays) plus OnlyLeft, OnlyRight
//	                    (element multiset deltas by deep equality)
type Fact struct {
	Kind       FactKind
	Path       string
	Side       Side
	LeftType   string
	RightType  string
	LeftValue  string
	RightValue string
	Left       []any
	Right      []any
	OnlyLeft   []any
	OnlyRight  []any
}

// RawDiffSet is the ordered output of a comparison engine run. Facts appear
// in path-discovery order and are never re-sorted.
type RawDiffSet struct {
	Facts []Fact
}

func (s *RawDiffSet) Add(f Fact) {
	s.Facts = append(s.Facts, f)
}

// Engine is the boundary to the raw tree comparison. It walks two parsed
// documents and reports unclassified facts; it knows nothing about the
// order-sensitivity policy, which belongs to Classify.
type Engine interface {
	Compare(left, right map[string]any, kinds KindSet) *RawDiffSet
}
