package cssom

import (
	"strings"
)

// StyleSheet is an ordered sequence of rules.
type StyleSheet struct {
	Rules []*Rule
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends all rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// String renders every rule as a block. Blocks are separated by an empty line.
func (sheet *StyleSheet) String() string {
	if sheet.Empty() {
		return ""
	}
	blocks := make([]string, len(sheet.Rules))
	for i, r := range sheet.Rules {
		blocks[i] = r.String()
	}
	return strings.Join(blocks, "\n") + "\n"
}

// Rule is a list of selectors together with the declarations which apply
// to elements matched by any of the selectors.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Properties returns the property names of a rule in declaration order,
// e.g. "margin-top".
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Name)
	}
	return props
}

// Value returns the value of the last declaration for a property, if any.
func (r *Rule) Value(name string) (Value, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Name == name {
			return r.Declarations[i].Value, true
		}
	}
	return nil, false
}

func (r *Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	var b strings.Builder
	b.WriteString(strings.Join(sels, ", "))
	b.WriteString(" {\n  ")
	for _, d := range r.Declarations {
		b.WriteString(d.String())
	}
	b.WriteString("\n}\n")
	return b.String()
}

// Declaration is a single 'name: value;' pair.
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String() + ";"
}
