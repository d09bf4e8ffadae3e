package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wonderfulspam/datadiff/pkg/diff"
)

const (
	checkMark = "✓"
	crossMark = "×"
)

func renderTables(session *diff.Session, groups []group) string {
	if len(groups) == 0 {
		return "No differences to display.\n"
	}

	left, right := session.Labels()
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(g.Title + "\n")
		if g.Missing {
			b.WriteString("  (not checked in this session)\n\n")
			continue
		}
		b.WriteString(renderGroupTable(g, left, right))
		b.WriteString("\n\n")
	}
	return b.String()
}

func renderGroupTable(g group, left, right string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	switch g.Kind {
	case diff.KindKey:
		t.Headers("Key", left, right)
		for _, r := range g.Records {
			t.Row(r.Path, presenceMark(r.Side, diff.SideLeft), presenceMark(r.Side, diff.SideRight))
		}
	case diff.KindType:
		t.Headers("Key", left, right)
		for _, r := range g.Records {
			t.Row(r.Path, r.LeftType, r.RightType)
		}
	case diff.KindValue:
		t.Headers("Key", left, right)
		for _, r := range g.Records {
			t.Row(r.Path, r.LeftValue, r.RightValue)
		}
	case diff.KindArray:
		t.Headers("Key", "Only "+left+" has", "Only "+right+" has")
		paths, leftVals, rightVals := groupArrayRecords(g.Records)
		for _, p := range paths {
			t.Row(p, strings.Join(leftVals[p], ",\n"), strings.Join(rightVals[p], ",\n"))
		}
	}
	return t.Render()
}

func presenceMark(side, want diff.Side) string {
	if side == want {
		return checkMark
	}
	return crossMark
}
