package diff

// Session is the immutable result of a completed comparison run: the kinds
// that were checked, the order-sensitivity policy, the classified records in
// emission order, and the two source labels for display. A Session built by
// a fresh check and one loaded from a session file are indistinguishable to
// the renderer.
type Session struct {
	kinds          []Kind
	orderSensitive bool
	records        []Record
	leftLabel      string
	rightLabel     string
}

// NewSession copies its slice arguments, so later mutation of the inputs
// cannot reach the session.
func NewSession(kinds []Kind, orderSensitive bool, records []Record, leftLabel, rightLabel string) *Session {
	ks := make([]Kind, len(kinds))
	copy(ks, kinds)
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Session{
		kinds:          ks,
		orderSensitive: orderSensitive,
		records:        rs,
		leftLabel:      leftLabel,
		rightLabel:     rightLabel,
	}
}

// Kinds returns the difference kinds this session was checked for.
func (s *Session) Kinds() []Kind {
	kinds := make([]Kind, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

func (s *Session) KindSet() KindSet { return NewKindSet(s.kinds...) }

func (s *Session) HasKind(k Kind) bool {
	for _, kind := range s.kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func (s *Session) OrderSensitive() bool { return s.orderSensitive }

// Records returns the full record sequence in emission order.
func (s *Session) Records() []Record {
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// RecordsOfKind returns the records of one kind, preserving their relative
// order.
func (s *Session) RecordsOfKind(k Kind) []Record {
	var records []Record
	for _, r := range s.records {
		if r.Kind == k {
			records = append(records, r)
		}
	}
	return records
}

// Labels returns the left and right source labels.
func (s *Session) Labels() (left, right string) {
	return s.leftLabel, s.rightLabel
}
