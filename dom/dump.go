package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mindom/dom/style/cssom"
	tp "github.com/xlab/treeprint"
)

// Dump renders the raw structure of a node, field by field. For a Document
// this includes its root and the collected style sheets:
//
//   .
//   └── [document]  1 style sheet(s)
//       ├── [element]  html
//       │   └── [element]  style
//       …
func Dump(n Node) string {
	printer := tp.New()
	dumpNode(printer, n)
	return printer.String()
}

func dumpNode(branch tp.Tree, n Node) {
	switch n := n.(type) {
	case *Element:
		el := branch.AddMetaBranch("element", n.TagName)
		for _, name := range n.Attributes.Names() {
			v := n.Attributes[name]
			switch v.Kind {
			case AttrText:
				el.AddMetaNode("attr", name+"="+strconv.Quote(v.Text))
			case AttrImplicit:
				el.AddMetaNode("attr", name+" (implicit)")
			}
		}
		for _, ch := range n.Children {
			dumpNode(el, ch)
		}
	case *Text:
		branch.AddMetaNode("text", strconv.Quote(n.Data))
	case *Comment:
		branch.AddMetaNode("comment", strconv.Quote(n.Data))
	case *Document:
		docBranch := branch.AddMetaBranch("document", fmt.Sprintf("%d style sheet(s)", len(n.stylesheets)))
		if root, ok := n.Root(); ok {
			dumpNode(docBranch, root)
		} else {
			docBranch.AddMetaNode("root", "none")
		}
		for i, sheet := range n.stylesheets {
			dumpStyleSheet(docBranch, i, sheet)
		}
	default:
		panic(fmt.Sprintf("dom: unknown node type %T", n))
	}
}

func dumpStyleSheet(branch tp.Tree, i int, sheet *cssom.StyleSheet) {
	sb := branch.AddMetaBranch("stylesheet", fmt.Sprintf("#%d", i))
	for _, rule := range sheet.Rules {
		sels := make([]string, len(rule.Selectors))
		for j, sel := range rule.Selectors {
			sels[j] = sel.String()
		}
		rb := sb.AddMetaBranch("rule", strings.Join(sels, ", "))
		for _, decl := range rule.Declarations {
			rb.AddMetaNode(decl.Name, dumpValue(decl.Value))
		}
	}
}

func dumpValue(v cssom.Value) string {
	switch v := v.(type) {
	case cssom.Keyword:
		return "keyword " + v.String()
	case cssom.Length:
		return fmt.Sprintf("length %s = %v", v, v.Dimen())
	case cssom.Color:
		return "color " + v.String()
	}
	panic(fmt.Sprintf("dom: unknown value type %T", v))
}
