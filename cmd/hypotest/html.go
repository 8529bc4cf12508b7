// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/google/safehtml/template"
	"golang.org/x/hypotest/normality"
	"golang.org/x/hypotest/ttest"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.hypotest { border-collapse: collapse; margin-bottom: 1em; }
.hypotest th { text-align: left; border-bottom: 1px solid #666; }
.hypotest td, .hypotest th { padding: 0em 1em; }
.hypotest td:nth-child(1n+2) { text-align: right; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Sizes}}
<p>{{.Sizes}}</p>
{{- end}}
{{- range .Sections}}
<h2>{{.Heading}}</h2>
{{- range .Columns}}
<table class='hypotest'>
<tr><th>{{.Name}}<th>statistic<th>p-value
{{- range .Rows}}
<tr><td>{{.Label}}<td>{{.Statistic}}<td>{{.P}}
{{- end}}
</table>
{{- end}}
{{- end}}
{{- with .Summary}}
<h2>t-test</h2>
<table class='hypotest'>
{{- range .}}
<tr><td>{{.Label}}<td>{{.Statistic}}
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

type htmlDoc struct {
	Title    string
	Sizes    string
	Sections []htmlSection
	Summary  []htmlRow
}

type htmlSection struct {
	Heading string
	Columns []htmlColumn
}

type htmlColumn struct {
	Name string
	Rows []htmlRow
}

type htmlRow struct {
	Label        string
	Statistic, P string
}

func writeHTML(w io.Writer, doc *htmlDoc) error {
	return htmlTemplate.Execute(w, doc)
}

func normalDoc(files []string, reports []*normality.Report) *htmlDoc {
	doc := &htmlDoc{Title: "normality tests"}
	for i, rep := range reports {
		doc.Sections = append(doc.Sections, reportSection(files[i], rep))
	}
	return doc
}

func tTestDoc(r *ttest.Result) *htmlDoc {
	doc := &htmlDoc{Title: fmt.Sprintf("%s t-test (%s)", r.Kind, r.Alternative)}
	if r.Kind == ttest.IndependentKind {
		doc.Sizes = fmt.Sprintf("sample size, x1:%d, x2:%d", r.N1, r.N2)
	} else {
		doc.Sizes = fmt.Sprintf("sample size: %d", r.N1)
	}
	for i, rep := range r.Normality {
		doc.Sections = append(doc.Sections, reportSection("normality of "+r.Labels[i], rep))
	}
	doc.Summary = []htmlRow{
		{Label: "t value", Statistic: format(r.T)},
		{Label: "degrees of freedom", Statistic: fmt.Sprint(r.DoF)},
		{Label: "p value", Statistic: format(r.P)},
		{Label: "cohen's d", Statistic: format(r.D)},
	}
	return doc
}

func reportSection(heading string, rep *normality.Report) htmlSection {
	sec := htmlSection{Heading: heading}
	for _, c := range rep.Columns {
		col := htmlColumn{Name: c.Name}
		for _, res := range c.Results {
			col.Rows = append(col.Rows, htmlRow{Label: res.Test.String(), Statistic: format(res.Statistic), P: format(res.P)})
		}
		sec.Columns = append(sec.Columns, col)
	}
	return sec
}

func format(x float64) string {
	return fmt.Sprintf("%.4f", x)
}
