package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/mindom/dom/scan"
	"github.com/npillmayer/mindom/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) (Node, *Document) {
	t.Helper()
	doc := NewDocument()
	require.NoError(t, doc.LoadDocument(input))
	root, ok := doc.Root()
	require.True(t, ok, "expected document to have a root")
	return root, doc
}

func asElement(t *testing.T, n Node) *Element {
	t.Helper()
	e, ok := n.(*Element)
	require.True(t, ok, "expected an element, have %T", n)
	return e
}

func TestParseEmptyElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mindom.dom")
	defer teardown()
	//
	root, _ := mustParse(t, "<div></div>")
	div := asElement(t, root)
	assert.Equal(t, "div", div.TagName)
	assert.Equal(t, 0, div.Attributes.Len())
	assert.Empty(t, div.Children)
	assert.Equal(t, "<div></div>\n", Sprint(div))
}

func TestParseTextChild(t *testing.T) {
	root, _ := mustParse(t, "<p>hi</p>")
	p := asElement(t, root)
	require.Len(t, p.Children, 1)
	assert.Equal(t, &Text{Data: "hi"}, p.Children[0])
}

func TestParseComment(t *testing.T) {
	root, _ := mustParse(t, "<!-- note -->")
	assert.Equal(t, &Comment{Data: "note"}, root)
	root, _ = mustParse(t, "<!--a-b->c-->")
	assert.Equal(t, &Comment{Data: "a-b->c"}, root)
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mindom.dom")
	defer teardown()
	//
	root, _ := mustParse(t, `<input disabled name="x" value='' title="a 'b'" />`)
	input := asElement(t, root)
	assert.Equal(t, AttrMap{
		"disabled": Implicit(),
		"name":     TextValue("x"),
		"value":    TextValue(""),
		"title":    TextValue("a 'b'"),
	}, input.Attributes)
	assert.Empty(t, input.Children)
	//
	root, _ = mustParse(t, `<a href="1" href="2"></a>`)
	v, ok := asElement(t, root).Attributes.Get("href")
	require.True(t, ok)
	assert.Equal(t, "2", v.Text, "duplicate attributes overwrite")
}

func TestParseNestedDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mindom.dom")
	defer teardown()
	//
	input := `<html>
  <body class="main">
    <h1 id="title">Title</h1>
    <!-- first paragraph -->
    <p>Some <em>emphasized</em> text</p>
    <br/>
  </body>
</html>`
	root, _ := mustParse(t, input)
	html := asElement(t, root)
	require.Len(t, html.Children, 1)
	body := asElement(t, html.Children[0])
	require.Len(t, body.Children, 4)
	assert.Equal(t, CommentNode, body.Children[1].NodeType())
	p := asElement(t, body.Children[2])
	require.Len(t, p.Children, 3)
	assert.Equal(t, "Some ", p.Children[0].(*Text).Data)
	assert.Equal(t, "em", asElement(t, p.Children[1]).TagName)
	assert.Equal(t, "text", p.Children[2].(*Text).Data)
	br := asElement(t, body.Children[3])
	assert.Equal(t, "br", br.TagName)
	assert.False(t, br.HasChildNodes())
	t.Logf("tree =\n%s", Dump(root))
}

func TestTopLevelWrapping(t *testing.T) {
	root, _ := mustParse(t, "<p>one</p> <p>two</p>")
	html := asElement(t, root)
	assert.Equal(t, "html", html.TagName)
	assert.Equal(t, 0, html.Attributes.Len())
	assert.Len(t, html.Children, 2)
	//
	root, _ = mustParse(t, "  <p>one</p>  ")
	assert.Equal(t, "p", asElement(t, root).TagName, "single top-level node is not wrapped")
	//
	root, _ = mustParse(t, "")
	assert.Empty(t, asElement(t, root).Children, "empty input yields an empty <html>")
}

func TestStyleForwarding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mindom.dom")
	defer teardown()
	//
	_, doc := mustParse(t, "<style>h1{font-size:14px;}</style>")
	sheets := doc.StyleSheets()
	require.Len(t, sheets, 1)
	require.Len(t, sheets[0].Rules, 1)
	assert.Equal(t, cssom.Length{Amount: 14, Unit: cssom.Px}, sheets[0].Rules[0].Declarations[0].Value)
	//
	_, doc = mustParse(t, `<html><body><div><p>x</p><style>h1{font-size:14px;}</style></div></body>
<style>p { color: #000000; }</style></html>`)
	sheets = doc.StyleSheets()
	require.Len(t, sheets, 2, "style elements anywhere in the tree are collected")
	assert.Equal(t, "h1 {\n  font-size: 14px;\n}\n\n", sheets[0].String())
	assert.Equal(t, "p", sheets[1].Rules[0].Selectors[0].String())
	//
	_, doc = mustParse(t, "<style></style>")
	assert.Empty(t, doc.StyleSheets(), "empty style element forwards nothing")
	_, doc = mustParse(t, "<style><!-- x --></style>")
	assert.Empty(t, doc.StyleSheets(), "only text content is forwarded")
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mindom.dom")
	defer teardown()
	//
	for _, tc := range []struct {
		input string
		kind  scan.Kind
		pos   int
	}{
		{"<!-- unterminated", scan.UnexpectedEndOfInput, 17},
		{"<a></b>", scan.MismatchedClosingTag, 5},
		{"<a><b></a></b>", scan.MismatchedClosingTag, 8},
		{"<a>text", scan.UnexpectedEndOfInput, 7},
		{"<a", scan.UnexpectedEndOfInput, 2},
		{"<a href=x></a>", scan.UnexpectedCharacter, 8},
		{`<a href="x></a>`, scan.UnexpectedEndOfInput, 15},
		{"< a></a>", scan.UnexpectedCharacter, 1},
		{"<a -x></a>", scan.UnexpectedCharacter, 3},
		{"<br/ >", scan.UnexpectedCharacter, 4},
		{"<a></a></b>", scan.UnexpectedCharacter, 7},
		{"<style>p { margin: 1em; }</style>", scan.UnrecognizedUnit, 20},
		{"<style>p { color: #fff; }</style>", scan.UnexpectedCharacter, 22},
	} {
		doc := NewDocument()
		err := doc.LoadDocument(tc.input)
		if !assert.Error(t, err, "input %q", tc.input) {
			continue
		}
		_, hasRoot := doc.Root()
		assert.False(t, hasRoot, "no partial tree for %q", tc.input)
		var perr *scan.Error
		if assert.True(t, errors.As(err, &perr), "input %q", tc.input) {
			assert.Equal(t, tc.kind, perr.Kind, "input %q: %v", tc.input, err)
			assert.Equal(t, tc.pos, perr.Pos, "input %q: %v", tc.input, err)
		}
	}
}

func TestStyleErrorIsWrapped(t *testing.T) {
	err := NewDocument().LoadDocument("<div><style>p { margin: 1em; }</style></div>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrUnrecognizedUnit))
	assert.Contains(t, err.Error(), "style element at position 5")
}
