/*
Package css parses style sheets.

The parser is a small recursive-descent parser for a subset of CSS:

   rules        := (ws rule)* ws EOF
   rule         := selectors declarations
   selectors    := selector (ws ',' ws selector)* ws          // until '{'
   selector     := ( '#' ident | '.' ident | '*' ws | ident )+
   declarations := '{' (ws ident ws ':' ws value ws ';')* ws '}'
   value        := length | color | ident
   length       := digits ('.' digits)? unit                 // unit: px
   color        := '#' hex hex hex hex hex hex
   ident        := [A-Za-z0-9-]+

Parsing is all-or-nothing: the first violation of the grammar aborts the
parse with a *scan.Error and no style sheet is returned.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mindom.css'.
func tracer() tracing.Trace {
	return tracing.Select("mindom.css")
}
