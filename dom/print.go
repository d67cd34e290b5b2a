package dom

import (
	"fmt"
	"io"
	"strings"
)

const indentation = "  "

// Fprint writes an indented rendering of a node and its descendants to w:
//
//   <div class="note">
//     <p></p>
//     Some text
//     <!-- a comment -->
//   </div>
//
// Elements without children are collapsed onto a single line. A Document
// renders as nothing; print its root instead.
func Fprint(w io.Writer, n Node) error {
	var b strings.Builder
	printNode(&b, n, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

// Sprint returns the rendering of Fprint as a string.
func Sprint(n Node) string {
	var b strings.Builder
	printNode(&b, n, 0)
	return b.String()
}

func printNode(b *strings.Builder, n Node, depth int) {
	pad := strings.Repeat(indentation, depth)
	switch n := n.(type) {
	case *Element:
		b.WriteString(pad)
		b.WriteString("<" + n.TagName)
		if n.Attributes.Len() > 0 {
			b.WriteString(" " + n.Attributes.String())
		}
		if !n.HasChildNodes() {
			b.WriteString("></" + n.TagName + ">\n")
			return
		}
		b.WriteString(">\n")
		for _, ch := range n.Children {
			printNode(b, ch, depth+1)
		}
		b.WriteString(pad + "</" + n.TagName + ">\n")
	case *Text:
		b.WriteString(pad + n.Data + "\n")
	case *Comment:
		b.WriteString(pad + "<!-- " + n.Data + " -->\n")
	case *Document:
		// renders nothing
	default:
		panic(fmt.Sprintf("dom: unknown node type %T", n))
	}
}
