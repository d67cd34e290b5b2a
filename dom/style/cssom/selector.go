package cssom

import (
	"strings"

	"github.com/npillmayer/mindom/maybe"
)

// Selector matches elements. For now there is just one kind of selector,
// SimpleSelector. Combinators are not supported.
type Selector interface {
	String() string
	isSelector()
}

// SimpleSelector combines an optional tag name, an optional id and any
// number of class names, e.g. "div.note.wide#intro".
type SimpleSelector struct {
	TagName maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string
}

// NewSimpleSelector creates a selector without any matchers, which is
// the universal selector "*".
func NewSimpleSelector() *SimpleSelector {
	return &SimpleSelector{
		TagName: maybe.Nothing[string](),
		ID:      maybe.Nothing[string](),
	}
}

func (*SimpleSelector) isSelector() {}

// Tag returns the tag-name matcher, if present.
func (sel *SimpleSelector) Tag() (string, bool) {
	return maybe.Get(sel.TagName)
}

// Id returns the id matcher, if present.
func (sel *SimpleSelector) Id() (string, bool) {
	return maybe.Get(sel.ID)
}

// IsUniversal is true for a selector without any matchers.
func (sel *SimpleSelector) IsUniversal() bool {
	return !maybe.IsJust(sel.TagName) && !maybe.IsJust(sel.ID) && len(sel.Classes) == 0
}

// String renders tag, classes and id in this order. A universal selector
// renders as "*".
func (sel *SimpleSelector) String() string {
	if sel.IsUniversal() {
		return "*"
	}
	var b strings.Builder
	if tag, ok := sel.Tag(); ok {
		b.WriteString(tag)
	}
	if len(sel.Classes) > 0 {
		b.WriteString(".")
		b.WriteString(strings.Join(sel.Classes, "."))
	}
	if id, ok := sel.Id(); ok {
		b.WriteString("#")
		b.WriteString(id)
	}
	return b.String()
}

var _ Selector = &SimpleSelector{}
