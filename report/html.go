// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"html/template"
	"io"
	"strings"
)

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; background: rgb(250,250,250); margin: 1em; }
#tree { overflow: auto; }
.node:hover { stroke: black; stroke-width: 2; }
</style>
</head>
<body>
<h1>{{.Title}} (n={{.Terms}})</h1>
<label for="coloring">Color by:</label>
<select id="coloring">
{{- range $i, $c := .Colorings}}
<option value="{{$i}}">{{if $c.Default}}default{{if $c.Column}} ({{$c.Column}}){{end}}{{else}}{{$c.Column}}{{end}}</option>
{{- end}}
</select>
<div id="tree">
{{.SVG}}
</div>
<script type="application/json" id="bundle">{{.Bundle}}</script>
<script>
const bundle = JSON.parse(document.getElementById("bundle").textContent);
document.getElementById("coloring").addEventListener("change", function(ev) {
	const colors = bundle.colorings[ev.target.value].colors;
	colors.forEach(function(c, i) {
		const n = document.getElementById("node-" + i);
		if (n) {
			n.setAttribute("fill", c);
		}
	});
});
</script>
</body>
</html>
`))

// HTML writes the report as a self-contained HTML page,
// with the tree as an SVG image,
// and a selector to change the coloring of the nodes.
// The JSON bundle is embedded in the page.
func (r *Report) HTML(w io.Writer) error {
	var svg strings.Builder
	if err := r.svg(&svg); err != nil {
		return err
	}

	data := struct {
		Title     string
		Terms     int
		Colorings []coloringLabel
		SVG       template.HTML
		Bundle    bundle
	}{
		Title:  r.Title,
		Terms:  r.NumTerms(),
		SVG:    template.HTML(svg.String()),
		Bundle: r.bundle(),
	}
	for _, c := range r.Colorings {
		data.Colorings = append(data.Colorings, coloringLabel{
			Column:  c.Column,
			Default: c.Default,
		})
	}
	return page.Execute(w, data)
}

type coloringLabel struct {
	Column  string
	Default bool
}
