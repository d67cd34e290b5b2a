/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/mindom/dom"
	"github.com/npillmayer/mindom/dom/style/cssom"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	SheetTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide a node of the DOM
// and a Writer.
//
// If n is a *dom.Document, the diagram shows its root and, as separate
// boxes, the rules of every style sheet collected by the document.
func ToGraphViz(n dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.SheetTmpl = template.Must(template.New("stylesheet").Parse(styleSheetTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams}
	if doc, ok := n.(*dom.Document); ok {
		if root, ok := doc.Root(); ok {
			g.nodes(root)
		}
		for i, sheet := range doc.StyleSheets() {
			g.styleSheet(i, sheet)
		}
	} else {
		g.nodes(n)
	}
	if g.err != nil {
		return g.err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// graph numbers DOM nodes in pre-order. Trees are strictly owned, so every
// node is visited exactly once and needs no lookup table.
type graph struct {
	w      io.Writer
	params *graphParamsType
	count  int
	err    error
}

type node struct {
	Name  string
	Label string
	Kind  string
	N     dom.Node
}

type edge struct {
	N1, N2 string
}

func (g *graph) nodes(n dom.Node) string {
	g.count++
	name := fmt.Sprintf("node%05d", g.count)
	g.execute(g.params.NodeTmpl, node{Name: name, Label: label(n), Kind: n.NodeType().String(), N: n})
	if e, ok := n.(*dom.Element); ok {
		for _, ch := range e.Children {
			chname := g.nodes(ch)
			g.execute(g.params.EdgeTmpl, edge{name, chname})
		}
	}
	return name
}

type sheetParams struct {
	Name  string
	Rules []string
}

func (g *graph) styleSheet(i int, sheet *cssom.StyleSheet) {
	params := sheetParams{Name: fmt.Sprintf("sheet%03d", i)}
	for _, r := range sheet.Rules {
		params.Rules = append(params.Rules, strings.Join(strings.Fields(r.String()), " "))
	}
	g.execute(g.params.SheetTmpl, params)
}

func (g *graph) execute(tmpl *template.Template, data interface{}) {
	if g.err != nil {
		return
	}
	g.err = tmpl.Execute(g.w, data)
}

func label(n dom.Node) string {
	switch n := n.(type) {
	case *dom.Element:
		return n.TagName
	case *dom.Text:
		return n.Data
	case *dom.Comment:
		return n.Data
	case *dom.Document:
		return "#document"
	}
	panic(fmt.Sprintf("domdbg: unknown node type %T", n))
}

func shortText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", `"`+s+`"`)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Kind "element" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else if eq .Kind "comment" }}
{{ .Name }}	[ label={{ shortstring .Label }} shape=note style=filled fillcolor=lightyellow fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const styleSheetTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="left"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Rules }}
      <tr><td align="left">{{ html . }}</td></tr>
      {{ else }}
      <tr><td>no rules</td></tr>
      {{ end }}
    </table>> ] ;
`
