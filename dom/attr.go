package dom

import (
	"sort"
	"strings"
)

// AttrKind tells an attribute with an explicit value from a valueless one.
type AttrKind int

// Kinds of attribute values.
const (
	AttrText     AttrKind = iota // name="value", the value may be empty
	AttrImplicit                 // bare name, e.g. 'disabled'
)

// AttrValue is the value of an attribute.
type AttrValue struct {
	Kind AttrKind
	Text string // empty for AttrImplicit
}

// TextValue creates an explicit attribute value.
func TextValue(s string) AttrValue {
	return AttrValue{Kind: AttrText, Text: s}
}

// Implicit creates the value of a valueless attribute.
func Implicit() AttrValue {
	return AttrValue{Kind: AttrImplicit}
}

// AttrMap maps attribute names to values. Names are unique; setting a name
// twice overwrites the first value.
type AttrMap map[string]AttrValue

// Get returns the value for an attribute name.
func (m AttrMap) Get(name string) (AttrValue, bool) {
	v, ok := m[name]
	return v, ok
}

// Has checks for existence of an attribute, explicit or implicit.
func (m AttrMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Len is the number of attributes.
func (m AttrMap) Len() int {
	return len(m)
}

// Names returns all attribute names in lexical order.
func (m AttrMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String joins name="value" pairs, or bare names for implicit attributes,
// with single spaces. Names are sorted.
func (m AttrMap) String() string {
	parts := make([]string, 0, len(m))
	for _, name := range m.Names() {
		v := m[name]
		switch v.Kind {
		case AttrText:
			parts = append(parts, name+`="`+v.Text+`"`)
		case AttrImplicit:
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}
