// Package renderer turns a session into user-facing output: grouped terminal
// tables or a self-contained HTML document. Rendering is a pure function of
// the session, the target and the display filter.
package renderer

import (
	"github.com/wonderfulspam/datadiff/pkg/diff"
)

// Target selects the output form.
type Target int

const (
	TargetTable Target = iota
	TargetDocument
)

// Theme changes the document's layout density and colors, never its content.
type Theme string

const (
	ThemeDefault         Theme = "default"
	ThemePrinterFriendly Theme = "printer-friendly"
)

// Options configures one render. Kinds is the display filter; when empty,
// every kind stored in the session is shown.
type Options struct {
	Target Target
	Theme  Theme
	Kinds  diff.KindSet
}

var groupTitles = map[diff.Kind]string{
	diff.KindKey:   "Key Differences",
	diff.KindType:  "Type Differences",
	diff.KindValue: "Value Differences",
	diff.KindArray: "Array Differences",
}

var groupAnchors = map[diff.Kind]string{
	diff.KindKey:   "key_diff",
	diff.KindType:  "type_diff",
	diff.KindValue: "value_diff",
	diff.KindArray: "array_diff",
}

// group is one renderable section. Missing marks a kind that was requested
// for display but never checked in this session; it renders as a notice
// instead of a table.
type group struct {
	Kind    diff.Kind
	Title   string
	Anchor  string
	Records []diff.Record
	Missing bool
}

// Render produces the output for the chosen target.
func Render(session *diff.Session, opts Options) (string, error) {
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = session.KindSet()
	}
	groups := buildGroups(session, kinds)

	if opts.Target == TargetDocument {
		theme := opts.Theme
		if theme == "" {
			theme = ThemeDefault
		}
		return renderDocument(session, groups, theme)
	}
	return renderTables(session, groups), nil
}

// buildGroups walks the fixed kind order, applying the display filter. A
// stored kind with zero records is omitted entirely.
func buildGroups(session *diff.Session, kinds diff.KindSet) []group {
	var groups []group
	for _, k := range diff.KindOrder {
		if !kinds.Has(k) {
			continue
		}
		if !session.HasKind(k) {
			groups = append(groups, group{Kind: k, Title: groupTitles[k], Anchor: groupAnchors[k], Missing: true})
			continue
		}
		records := session.RecordsOfKind(k)
		if len(records) == 0 {
			continue
		}
		groups = append(groups, group{Kind: k, Title: groupTitles[k], Anchor: groupAnchors[k], Records: records})
	}
	return groups
}

// groupArrayRecords buckets array records by path, preserving first-seen
// path order, and splits each bucket's values per side.
func groupArrayRecords(records []diff.Record) (paths []string, leftVals, rightVals map[string][]string) {
	leftVals = make(map[string][]string)
	rightVals = make(map[string][]string)
	seen := make(map[string]bool)
	for _, r := range records {
		if !seen[r.Path] {
			seen[r.Path] = true
			paths = append(paths, r.Path)
		}
		if r.Side == diff.SideLeft {
			leftVals[r.Path] = append(leftVals[r.Path], r.Value)
		} else {
			rightVals[r.Path] = append(rightVals[r.Path], r.Value)
		}
	}
	return paths, leftVals, rightVals
}
