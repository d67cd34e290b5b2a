/*
Package cssom provides the object model for parsed style sheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. A StyleSheet
is an ordered list of rules. Each Rule consists of a non-empty list of
selectors and a (possibly empty) list of declarations:

   StyleSheet  := Rule*
   Rule        := Selector+ Declaration*
   Selector    := SimpleSelector                    // tag, id and classes
   Declaration := name ':' Value
   Value       := Keyword | Length | Color

Selectors and values are sum types, implemented as sealed interfaces. Code
switching over them is expected to handle every variant; unknown variants
are programming errors and result in a panic.

Every type renders itself in CSS notation through String(). Rules render as

   h1, .note {
     color: rgba(255, 0, 0, 255);margin: 10px;
   }

i.e., all declarations of a rule are concatenated on a single line.

There is no support for the cascade or for selector specificity. Clients
needing these should consider https://godoc.org/github.com/andybalholm/cascadia
for matching.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
