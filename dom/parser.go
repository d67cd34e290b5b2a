package dom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/mindom/dom/scan"
	"golang.org/x/net/html/atom"
)

const (
	commentStart = "<!--"
	commentEnd   = "-->"
	closingTag   = "</"
)

// parser is a recursive-descent parser for markup. It forwards the content
// of <style> elements to its document.
type parser struct {
	s   *scan.Scanner
	doc *Document
}

// parse parses a markup document. A single top-level node is returned as
// is, several top-level nodes are wrapped into a synthetic <html> element.
func parse(input string, doc *Document) (Node, error) {
	p := &parser{s: scan.New(input), doc: doc}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if !p.s.EOF() { // stray closing tag at top level
		return nil, p.s.Errorf(scan.UnexpectedCharacter, "end of input")
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	tracer().Debugf("dom: wrapping %d top-level nodes into <html>", len(nodes))
	return NewElement("html", nil, nodes), nil
}

// parseNodes parses sibling nodes until end of input or a closing tag.
func (p *parser) parseNodes() ([]Node, error) {
	var nodes []Node
	for {
		p.s.SkipWhitespace()
		if p.s.EOF() || p.s.StartsWith(closingTag) {
			return nodes, nil
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *parser) parseNode() (Node, error) {
	switch {
	case p.s.StartsWith(commentStart):
		return p.parseComment()
	case p.s.StartsWith("<"):
		return p.parseElement()
	}
	return p.parseText(), nil
}

func (p *parser) parseText() Node {
	return NewText(p.s.ConsumeWhile(func(c rune) bool { return c != '<' }))
}

func (p *parser) parseComment() (Node, error) {
	start := p.s.Pos()
	if err := p.s.ExpectString(commentStart); err != nil {
		return nil, err
	}
	end := strings.Index(p.s.Rest(), commentEnd)
	if end < 0 {
		p.s.Advance(len(p.s.Rest()))
		return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "%q closing comment at position %d", commentEnd, start)
	}
	text := p.s.Rest()[:end]
	p.s.Advance(end + len(commentEnd))
	return NewComment(strings.TrimSpace(text)), nil
}

func (p *parser) parseElement() (Node, error) {
	start := p.s.Pos()
	if err := p.s.Expect('<'); err != nil {
		return nil, err
	}
	tagName, err := p.parseName("tag name")
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if p.s.StartsWith("/") { // self-closing
		p.s.Next()
		if err := p.s.Expect('>'); err != nil {
			return nil, err
		}
		return NewElement(tagName, attrs, nil), nil
	}
	if err := p.s.Expect('>'); err != nil {
		return nil, err
	}
	contentPos := p.s.Pos()
	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if atom.Lookup([]byte(tagName)) == atom.Style {
		if err := p.forwardStyle(start, contentPos, children); err != nil {
			return nil, err
		}
	}
	if err := p.parseClosingTag(tagName, start); err != nil {
		return nil, err
	}
	return NewElement(tagName, attrs, children), nil
}

// forwardStyle hands the text content of a <style> element to the document.
// Positions of style errors are made relative to the markup input.
func (p *parser) forwardStyle(pos, contentPos int, children []Node) error {
	if len(children) == 0 {
		return nil
	}
	text, ok := children[0].(*Text)
	if !ok {
		return nil
	}
	tracer().Debugf("dom: forwarding <style> at position %d", pos)
	err := p.doc.LoadStyle(text.Data)
	if err == nil {
		return nil
	}
	var perr *scan.Error
	if errors.As(err, &perr) {
		content := p.s.Input()[contentPos:]
		shifted := *perr
		shifted.Pos += contentPos + len(content) - len(strings.TrimLeftFunc(content, unicode.IsSpace))
		err = &shifted
	}
	return fmt.Errorf("style element at position %d: %w", pos, err)
}

func (p *parser) parseClosingTag(tagName string, openPos int) error {
	if p.s.EOF() {
		return p.s.Errorf(scan.UnexpectedEndOfInput, "closing tag </%s> for element at position %d", tagName, openPos)
	}
	if err := p.s.ExpectString(closingTag); err != nil {
		return err
	}
	pos := p.s.Pos()
	name := p.s.ConsumeWhile(scan.IsASCIIAlnum)
	if name != tagName {
		return p.s.ErrorAt(pos, scan.MismatchedClosingTag, fmt.Sprintf("closing tag </%s>", tagName), fmt.Sprintf("</%s>", name))
	}
	return p.s.Expect('>')
}

// parseName parses a tag or attribute name, which must not be empty.
func (p *parser) parseName(what string) (string, error) {
	name := p.s.ConsumeWhile(scan.IsASCIIAlnum)
	if name == "" {
		return "", p.s.Errorf(scan.UnexpectedCharacter, "%s", what)
	}
	return name, nil
}

func (p *parser) parseAttributes() (AttrMap, error) {
	attrs := AttrMap{}
	for {
		p.s.SkipWhitespace()
		c, ok := p.s.Peek()
		if !ok {
			return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "'>' or '/' closing the tag")
		}
		if c == '>' || c == '/' {
			return attrs, nil
		}
		name, value, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs[name] = value
	}
}

// parseAttribute parses `name`, `name="value"` or `name='value'`.
func (p *parser) parseAttribute() (string, AttrValue, error) {
	name, err := p.parseName("attribute name")
	if err != nil {
		return "", AttrValue{}, err
	}
	if !p.s.StartsWith("=") {
		return name, Implicit(), nil
	}
	p.s.Next()
	value, err := p.parseAttributeValue()
	if err != nil {
		return "", AttrValue{}, err
	}
	return name, TextValue(value), nil
}

func (p *parser) parseAttributeValue() (string, error) {
	quote, ok := p.s.Peek()
	if !ok {
		return "", p.s.Errorf(scan.UnexpectedEndOfInput, "quoted attribute value")
	}
	if quote != '"' && quote != '\'' {
		return "", p.s.Errorf(scan.UnexpectedCharacter, "quoted attribute value")
	}
	p.s.Next()
	value := p.s.ConsumeWhile(func(c rune) bool { return c != quote })
	if err := p.s.Expect(quote); err != nil {
		return "", err
	}
	return value, nil
}
