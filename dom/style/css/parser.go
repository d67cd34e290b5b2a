package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mindom/dom/scan"
	"github.com/npillmayer/mindom/dom/style/cssom"
	"github.com/npillmayer/mindom/maybe"
)

// Parse parses a style sheet.
func Parse(input string) (*cssom.StyleSheet, error) {
	p := &parser{s: scan.New(input)}
	rules, err := p.parseRules()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("css: parsed %d rule(s) from %d bytes", len(rules), len(input))
	return &cssom.StyleSheet{Rules: rules}, nil
}

type parser struct {
	s *scan.Scanner
}

func (p *parser) parseRules() ([]*cssom.Rule, error) {
	var rules []*cssom.Rule
	p.s.SkipWhitespace()
	for !p.s.EOF() {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		p.s.SkipWhitespace()
	}
	return rules, nil
}

func (p *parser) parseRule() (*cssom.Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return nil, err
	}
	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	return &cssom.Rule{Selectors: selectors, Declarations: decls}, nil
}

// parseSelectors parses a comma-separated list of selectors, up to but not
// including the opening brace of the declaration block.
func (p *parser) parseSelectors() ([]cssom.Selector, error) {
	var selectors []cssom.Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.s.SkipWhitespace()
		c, ok := p.s.Peek()
		switch {
		case !ok:
			return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "',' or '{' in selector list")
		case c == ',':
			p.s.Next()
			p.s.SkipWhitespace()
		case c == '{':
			return selectors, nil
		default:
			return nil, p.s.Errorf(scan.UnexpectedCharacter, "',' or '{' in selector list")
		}
	}
}

func (p *parser) parseSimpleSelector() (*cssom.SimpleSelector, error) {
	sel := cssom.NewSimpleSelector()
	start := p.s.Pos()
	matchers := 0
	for {
		p.s.SkipWhitespace()
		c, ok := p.s.Peek()
		if !ok {
			return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "selector")
		}
		switch {
		case c == '#':
			p.s.Next()
			id, err := p.parseMatcherName()
			if err != nil {
				return nil, err
			}
			sel.ID = maybe.Just(id)
		case c == '.':
			p.s.Next()
			class, err := p.parseMatcherName()
			if err != nil {
				return nil, err
			}
			sel.Classes = append(sel.Classes, class)
		case c == '*':
			p.s.Next()
			if w, ok := p.s.Peek(); !ok || !isWhitespace(w) {
				return nil, p.s.Errorf(scan.UnexpectedCharacter, "white space after '*'")
			}
		case scan.IsASCIIAlnum(c):
			sel.TagName = maybe.Just(p.parseIdentifier())
		default: // '{' or any other non-identifier character ends the selector
			if matchers == 0 {
				return nil, p.s.ErrorAt(start, scan.UnexpectedCharacter, "selector", strconv.QuoteRune(c))
			}
			return sel, nil
		}
		matchers++
	}
}

// parseMatcherName parses the identifier following '#' or '.'.
func (p *parser) parseMatcherName() (string, error) {
	if c, ok := p.s.Peek(); !ok || !scan.IsASCIIAlnum(c) {
		return "", p.s.Errorf(scan.UnexpectedCharacter, "identifier")
	}
	return p.parseIdentifier(), nil
}

func (p *parser) parseIdentifier() string {
	return p.s.ConsumeWhile(isIdentifierChar)
}

func (p *parser) parseDeclarations() ([]cssom.Declaration, error) {
	if err := p.s.Expect('{'); err != nil {
		return nil, err
	}
	var decls []cssom.Declaration
	for {
		p.s.SkipWhitespace()
		c, ok := p.s.Peek()
		if !ok {
			return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "'}' closing the declaration block")
		}
		if c == '}' {
			p.s.Next()
			return decls, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
}

func (p *parser) parseDeclaration() (cssom.Declaration, error) {
	var decl cssom.Declaration
	decl.Name = p.parseIdentifier()
	if decl.Name == "" {
		return decl, p.s.Errorf(scan.UnexpectedCharacter, "property name")
	}
	p.s.SkipWhitespace()
	if err := p.s.Expect(':'); err != nil {
		return decl, err
	}
	p.s.SkipWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return decl, err
	}
	decl.Value = value
	p.s.SkipWhitespace()
	if err := p.s.Expect(';'); err != nil {
		return decl, err
	}
	return decl, nil
}

func (p *parser) parseValue() (cssom.Value, error) {
	c, ok := p.s.Peek()
	switch {
	case !ok:
		return nil, p.s.Errorf(scan.UnexpectedEndOfInput, "value")
	case scan.IsASCIIDigit(c):
		return p.parseLength()
	case c == '#':
		return p.parseColor()
	}
	keyword := p.parseIdentifier()
	if keyword == "" {
		return nil, p.s.Errorf(scan.UnexpectedCharacter, "value")
	}
	return cssom.Keyword(keyword), nil
}

func (p *parser) parseLength() (cssom.Value, error) {
	start := p.s.Pos()
	num := p.s.ConsumeWhile(scan.IsASCIIDigit)
	if p.s.StartsWith(".") {
		p.s.Next()
		frac := p.s.ConsumeWhile(scan.IsASCIIDigit)
		num += "." + frac
	}
	amount, err := strconv.ParseFloat(num, 32)
	if err != nil { // digits only, this is an overflow
		return nil, p.s.ErrorAt(start, scan.UnexpectedCharacter, "number", strconv.Quote(num))
	}
	unitPos := p.s.Pos()
	unit := p.parseIdentifier()
	switch strings.ToLower(unit) {
	case "px":
		return cssom.Length{Amount: float32(amount), Unit: cssom.Px}, nil
	}
	return nil, p.s.ErrorAt(unitPos, scan.UnrecognizedUnit, "unit 'px'", strconv.Quote(unit))
}

func (p *parser) parseColor() (cssom.Value, error) {
	if err := p.s.Expect('#'); err != nil {
		return nil, err
	}
	var rgb [3]uint8
	for i := range rgb {
		b, err := p.parseHexPair()
		if err != nil {
			return nil, err
		}
		rgb[i] = b
	}
	return cssom.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func (p *parser) parseHexPair() (uint8, error) {
	var b uint8
	for i := 0; i < 2; i++ {
		c, ok := p.s.Peek()
		if !ok {
			return 0, p.s.Errorf(scan.UnexpectedEndOfInput, "hex digit")
		}
		d, isHex := hexValue(c)
		if !isHex {
			return 0, p.s.Errorf(scan.UnexpectedCharacter, "hex digit")
		}
		p.s.Next()
		b = b<<4 | d
	}
	return b, nil
}

func hexValue(c rune) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint8(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint8(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint8(c-'A') + 10, true
	}
	return 0, false
}

func isIdentifierChar(c rune) bool {
	return scan.IsASCIIAlnum(c) || c == '-'
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
