package cssom

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
)

// Value is the value of a declaration. It is one of Keyword, Length or Color.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. "block" or "bold".
type Keyword string

func (Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}

// Unit is the unit of a length.
type Unit int

// Supported units.
const (
	Px Unit = iota
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	panic(fmt.Sprintf("cssom: unknown unit %d", int(u)))
}

// Length is a numeric value with a unit, e.g. "10px".
type Length struct {
	Amount float32
	Unit   Unit
}

func (Length) isValue() {}

// String renders the amount in its shortest form, followed by the unit.
func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Amount), 'f', -1, 32) + l.Unit.String()
}

// pxToPT is the CSS reference ratio: 96px = 72pt = 1in.
const pxToPT = 0.75

// Dimen converts a length to typesetting units.
func (l Length) Dimen() dimen.DU {
	switch l.Unit {
	case Px:
		return dimen.DU(float64(l.Amount) * pxToPT * float64(dimen.PT))
	}
	panic(fmt.Sprintf("cssom: unknown unit %d", int(l.Unit)))
}

// Color is an RGBA color value. Colors parsed from "#rrggbb" are opaque.
type Color struct {
	R, G, B, A uint8
}

func (Color) isValue() {}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

var _ Value = Keyword("")
var _ Value = Length{}
var _ Value = Color{}
