package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/wonderfulspam/datadiff/pkg/diff"
	"github.com/wonderfulspam/datadiff/pkg/document"
)

type docSection struct {
	Anchor  string
	Title   string
	Headers []string
	Rows    [][]string
	Pre     bool
	Missing bool
}

type docData struct {
	Left     string
	Right    string
	CSS      template.CSS
	Sections []docSection
}

func renderDocument(session *diff.Session, groups []group, theme Theme) (string, error) {
	left, right := session.Labels()
	data := docData{
		Left:  left,
		Right: right,
		CSS:   template.CSS(defaultCSS),
	}
	if theme == ThemePrinterFriendly {
		data.CSS = template.CSS(printerCSS)
	}
	for _, g := range groups {
		data.Sections = append(data.Sections, buildSection(g, left, right))
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return buf.String(), nil
}

func buildSection(g group, left, right string) docSection {
	s := docSection{Anchor: g.Anchor, Title: g.Title, Missing: g.Missing}
	if g.Missing {
		return s
	}
	switch g.Kind {
	case diff.KindKey:
		s.Headers = []string{"Key", left, right}
		for _, r := range g.Records {
			s.Rows = append(s.Rows, []string{r.Path, presenceMark(r.Side, diff.SideLeft), presenceMark(r.Side, diff.SideRight)})
		}
	case diff.KindType:
		s.Headers = []string{"Key", left, right}
		for _, r := range g.Records {
			s.Rows = append(s.Rows, []string{r.Path, r.LeftType, r.RightType})
		}
	case diff.KindValue:
		s.Headers = []string{"Key", left, right}
		s.Pre = true
		for _, r := range g.Records {
			s.Rows = append(s.Rows, []string{r.Path, document.PrettyJSON(r.LeftValue), document.PrettyJSON(r.RightValue)})
		}
	case diff.KindArray:
		s.Headers = []string{"Key", fmt.Sprintf("Only %q has", left), fmt.Sprintf("Only %q has", right)}
		s.Pre = true
		paths, leftVals, rightVals := groupArrayRecords(g.Records)
		for _, p := range paths {
			s.Rows = append(s.Rows, []string{p, prettyJoin(leftVals[p]), prettyJoin(rightVals[p])})
		}
	}
	return s
}

func prettyJoin(values []string) string {
	pretty := make([]string, len(values))
	for i, v := range values {
		pretty[i] = document.PrettyJSON(v)
	}
	return strings.Join(pretty, ",\n")
}

var docTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<title>datadiff: comparing {{.Left}} and {{.Right}}</title>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>{{.CSS}}</style>
</head>
<body>
<div class="header">
  <div class="lead">
    <h1>Data Differences</h1>
    <p>The following differences were found comparing
      <span class="code">{{.Left}}</span> against <span class="code">{{.Right}}</span></p>
  </div>
  <ul class="table-of-contents">
    <h2>Table of Contents</h2>
{{- range .Sections}}
    <li><a href="#{{.Anchor}}">{{.Title}}</a></li>
{{- end}}
  </ul>
</div>
{{- range .Sections}}
<h2 id="{{.Anchor}}">{{.Title}}</h2>
{{- if .Missing}}
<p class="notice">This kind was not checked in this session.</p>
{{- else}}
<table class="diff-table">
  <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{- $pre := .Pre}}
{{- range .Rows}}
  <tr>
{{- range $i, $cell := .}}
{{- if eq $i 0}}
    <td class="code">{{$cell}}</td>
{{- else if $pre}}
    <td><pre>{{$cell}}</pre></td>
{{- else}}
    <td>{{$cell}}</td>
{{- end}}
{{- end}}
  </tr>
{{- end}}
</table>
{{- end}}
{{- end}}
</body>
</html>
`))

const defaultCSS = `* {
    font-family: Arial, Helvetica, sans-serif;
}

body {
    padding: 1em;
    font-size: 14px;
    background-color: #0a0b0b;
    color: #fff;
}

h1, h2 {
    width: fit-content;
    text-align: left;
    background: linear-gradient(to right, #8e2de2, #4a00e0);
    background-clip: text;
    -webkit-text-fill-color: transparent;
}

h2 {
    margin-top: 2em;
}

.code, pre {
    font-family: "Lucida Console", "Courier New", monospace;
}

.header {
    display: flex;
    flex-direction: row;
    justify-content: space-between;
}

.header .lead {
    display: flex;
    flex-direction: column;
}

.header .lead p .code {
    font-weight: bold;
    background-color: rgba(100, 100, 100, 0.4);
    padding: 0.2em;
    border-radius: 2px;
}

ul.table-of-contents {
    width: fit-content;
    margin: 2em 0;
    padding: 1em;
    background-color: rgba(100, 100, 100, 0.2);
    border-radius: 10px;
    list-style-type: none;
}

.table-of-contents h2 {
    margin-top: 0;
}

.table-of-contents li {
    width: 100%;
    margin: 1em 0;
    padding: 0.5em 0;
    border-top: 1px solid #ffffff;
}

.table-of-contents li a {
    color: #ffffff;
    text-decoration: none;
}

.table-of-contents li a:hover {
    text-decoration: underline;
}

.notice {
    font-style: italic;
    color: #aaa;
}

.diff-table {
    margin: 2em auto auto;
    text-align: center;
    width: 100%;
    color: #ffffff;
    border-radius: 10px;
}

.diff-table th, .diff-table td {
    padding: 1.2em;
    text-align: left;
}

.diff-table th {
    background-color: rgba(100, 100, 100, 0.3);
}

.diff-table tr:nth-child(odd) {
    background-color: rgba(100, 100, 100, 0.1);
}

.diff-table tr:nth-child(even) {
    background-color: rgba(100, 100, 100, 0.2);
}`

const printerCSS = `* {
    font-family: Arial, Helvetica, sans-serif;
}

body {
    padding: 0.5em;
    font-size: 12px;
    background-color: #ffffff;
    color: #000000;
}

h1, h2 {
    text-align: left;
    color: #000000;
}

.code, pre {
    font-family: "Lucida Console", "Courier New", monospace;
}

.header {
    display: flex;
    flex-direction: row;
    justify-content: space-between;
}

ul.table-of-contents {
    width: fit-content;
    margin: 1em 0;
    padding: 0.5em 1em;
    border: 1px solid #000000;
    list-style-type: none;
}

.table-of-contents li {
    margin: 0.3em 0;
}

.table-of-contents li a {
    color: #000000;
}

.notice {
    font-style: italic;
}

.diff-table {
    width: 100%;
    border-collapse: collapse;
}

.diff-table th, .diff-table td {
    padding: 0.4em;
    text-align: left;
    border: 1px solid #000000;
}`
