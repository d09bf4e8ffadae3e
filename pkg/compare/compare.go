// Package compare implements the raw tree comparison: it walks two parsed
// documents and emits unclassified difference facts. Order-sensitivity is
// deliberately not handled here; the facts carry enough information for
// diff.Classify to apply either policy.
package compare

import (
	"reflect"
	"sort"

	"github.com/wonderfulspam/datadiff/pkg/diff"
)

// TreeEngine is the default diff.Engine implementation.
type TreeEngine struct{}

func NewEngine() *TreeEngine { return &TreeEngine{} }

// Compare walks the union of both object trees and collects facts for the
// requested kinds. Object keys are visited in sorted order at every level,
// so the fact sequence is identical across runs on identical inputs.
func (e *TreeEngine) Compare(left, right map[string]any, kinds diff.KindSet) *diff.RawDiffSet {
	set := &diff.RawDiffSet{}
	e.compareObjects("", left, right, kinds, set)
	return set
}

func (e *TreeEngine) compareObjects(prefix string, a, b map[string]any, kinds diff.KindSet, set *diff.RawDiffSet) {
	for _, key := range unionKeys(a, b) {
		path := joinPath(prefix, key)
		av, inA := a[key]
		bv, inB := b[key]
		switch {
		case inA && !inB:
			if kinds.Has(diff.KindKey) {
				set.Add(diff.Fact{Kind: diff.FactKeyOnly, Path: path, Side: diff.SideLeft})
			}
		case !inA && inB:
			if kinds.Has(diff.KindKey) {
				set.Add(diff.Fact{Kind: diff.FactKeyOnly, Path: path, Side: diff.SideRight})
			}
		default:
			e.compareValues(path, av, bv, kinds, set)
		}
	}
}

func (e *TreeEngine) compareValues(path string, a, b any, kinds diff.KindSet, set *diff.RawDiffSet) {
	leftType, rightType := TypeName(a), TypeName(b)
	if leftType != rightType {
		if kinds.Has(diff.KindType) {
			set.Add(diff.Fact{Kind: diff.FactTypeMismatch, Path: path, LeftType: leftType, RightType: rightType})
		}
		return
	}

	switch leftType {
	case TypeObject:
		e.compareObjects(path, a.(map[string]any), b.(map[string]any), kinds, set)
	case TypeArray:
		// Array facts feed both the array kind (unordered policy) and the
		// value kind (ordered policy).
		if !kinds.Has(diff.KindArray) && !kinds.Has(diff.KindValue) {
			return
		}
		av, bv := a.([]any), b.([]any)
		onlyLeft, onlyRight := multisetDiff(av, bv)
		set.Add(diff.Fact{
			Kind:      diff.FactArray,
			Path:      path,
			Left:      av,
			Right:     bv,
			OnlyLeft:  onlyLeft,
			OnlyRight: onlyRight,
		})
	case TypeNull:
		// equal by definition
	default:
		if kinds.Has(diff.KindValue) && !reflect.DeepEqual(a, b) {
			set.Add(diff.Fact{
				Kind:       diff.FactScalarMismatch,
				Path:       path,
				LeftValue:  diff.RenderValue(a),
				RightValue: diff.RenderValue(b),
			})
		}
	}
}

// multisetDiff matches elements of a against elements of b by deep equality,
// consuming each match once, and returns the unmatched leftovers per side.
func multisetDiff(a, b []any) (onlyA, onlyB []any) {
	used := make([]bool, len(b))
	for _, av := range a {
		matched := false
		for i, bv := range b {
			if !used[i] && reflect.DeepEqual(av, bv) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			onlyA = append(onlyA, av)
		}
	}
	for i, bv := range b {
		if !used[i] {
			onlyB = append(onlyB, bv)
		}
	}
	return onlyA, onlyB
}

func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]bool, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for key := range a {
		seen[key] = true
		keys = append(keys, key)
	}
	for key := range b {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
