package dom

import (
	"errors"

	"github.com/npillmayer/mindom/dom/style/css"
	"github.com/npillmayer/mindom/dom/style/cssom"
	"github.com/npillmayer/mindom/maybe"
	"github.com/npillmayer/mindom/result"
)

// ErrRootAssigned is returned when loading markup into a document which
// already has a root.
var ErrRootAssigned = errors.New("document root already assigned")

// Document is the root of a parsed document. It also serves as the context
// of the markup parser, collecting the style sheets of <style> elements.
type Document struct {
	root        maybe.Maybe[Node]
	stylesheets []*cssom.StyleSheet
}

// NewDocument creates a document without a root.
func NewDocument() *Document {
	return &Document{root: maybe.Nothing[Node]()}
}

// Parse is a shortcut for creating a document and loading markup into it.
func Parse(text string) result.Result[*Document] {
	doc := NewDocument()
	if err := doc.LoadDocument(text); err != nil {
		return result.Err[*Document](err)
	}
	return result.Ok(doc)
}

func (*Document) NodeType() NodeType { return DocumentNode }
func (*Document) isNode()            {}

// Root returns the root node, if the document has been loaded.
func (doc *Document) Root() (Node, bool) {
	return maybe.Get(doc.root)
}

// StyleSheets returns the style sheets collected so far, in document order.
func (doc *Document) StyleSheets() []*cssom.StyleSheet {
	sheets := make([]*cssom.StyleSheet, len(doc.stylesheets))
	copy(sheets, doc.stylesheets)
	return sheets
}

// LoadStyle parses a style sheet and appends it to the document. On error
// nothing is appended.
func (doc *Document) LoadStyle(text string) error {
	sheet, err := css.Parse(text)
	if err != nil {
		return err
	}
	doc.stylesheets = append(doc.stylesheets, sheet)
	tracer().Debugf("dom: loaded style sheet #%d with %d rule(s)", len(doc.stylesheets), len(sheet.Rules))
	return nil
}

// LoadDocument parses markup and sets the result as the root of the
// document. The document's root may be set only once.
//
// Loading is all-or-nothing: if parsing fails, the root stays unset and
// style sheets collected during the failed parse are dropped again.
func (doc *Document) LoadDocument(text string) error {
	if maybe.IsJust(doc.root) {
		return ErrRootAssigned
	}
	mark := len(doc.stylesheets)
	root, err := parse(text, doc)
	if err != nil {
		for i := mark; i < len(doc.stylesheets); i++ {
			doc.stylesheets[i] = nil
		}
		doc.stylesheets = doc.stylesheets[:mark]
		return err
	}
	doc.root = maybe.Just(root)
	return nil
}
