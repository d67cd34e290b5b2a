package dom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTree(t *testing.T) {
	tree := NewElement("div", AttrMap{"class": TextValue("note"), "hidden": Implicit()}, []Node{
		NewElement("p", nil, nil),
		NewText("Some text"),
		NewComment("a comment"),
		NewElement("ul", nil, []Node{
			NewElement("li", nil, []Node{NewText("one")}),
		}),
	})
	expected := `<div class="note" hidden>
  <p></p>
  Some text
  <!-- a comment -->
  <ul>
    <li>
      one
    </li>
  </ul>
</div>
`
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree))
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, expected, tree.String())
}

func TestPrintDocumentRendersNothing(t *testing.T) {
	_, doc := mustParse(t, "<p>x</p>")
	assert.Equal(t, "", Sprint(doc))
}

func TestAttrMapString(t *testing.T) {
	attrs := AttrMap{"b": TextValue("2"), "a": TextValue(""), "c": Implicit()}
	assert.Equal(t, `a="" b="2" c`, attrs.String())
	assert.Equal(t, []string{"a", "b", "c"}, attrs.Names())
	assert.True(t, attrs.Has("c"))
	assert.False(t, attrs.Has("d"))
}

// Printing a parsed tree and parsing the printout again yields an isomorphic
// tree. Text picks up the indentation of the printout, so it is compared
// with white space trimmed.
func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		`<html><head><title>T</title></head><body><p class="x" id='y'>a <b>b</b></p><hr/></body></html>`,
		`<ul><li>one</li><li>two</li><!-- end --></ul>`,
		`<p>one</p><p>two</p>`,
		`<form><input checked name="c"/></form>`,
	}
	for _, input := range inputs {
		first, _ := mustParse(t, input)
		printed := Sprint(first)
		second, _ := mustParse(t, printed)
		assert.Equal(t, shape(first), shape(second), "round trip of %q", input)
		assert.Equal(t, countNodes(first), countNodes(second), "node count for %q", input)
	}
}

func countNodes(n Node) int {
	count := 1
	if e, ok := n.(*Element); ok {
		for _, ch := range e.Children {
			count += countNodes(ch)
		}
	}
	return count
}

func shape(n Node) string {
	switch n := n.(type) {
	case *Element:
		var b strings.Builder
		b.WriteString(n.TagName + "[" + n.Attributes.String() + "](")
		for _, ch := range n.Children {
			b.WriteString(shape(ch) + " ")
		}
		b.WriteString(")")
		return b.String()
	case *Text:
		return "#text:" + strings.TrimSpace(n.Data)
	case *Comment:
		return "#comment:" + n.Data
	}
	return "?"
}
