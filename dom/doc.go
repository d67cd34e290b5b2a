/*
Package dom parses markup documents into a document object model.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A document is parsed into a tree of nodes. Nodes are one of

   Element   tag name, attributes and child nodes
   Text      a run of character data
   Comment   the content of <!-- … -->
   Document  the root element together with all style sheets found
             in <style> elements of the markup

Node is a sealed interface; clients switching over node types should
handle every variant.

Parsing is driven by a Document, which serves as the parse context:

   doc := dom.NewDocument()
   if err := doc.LoadDocument(`<html><style>p { margin: 4px; }</style><p>Hi</p></html>`); err != nil {
       …
   }
   root, _ := doc.Root()
   dom.Fprint(os.Stdout, root)

While parsing markup, the content of every <style> element is handed to
the style parser (package dom/style/css) and the resulting style sheet is
appended to the document.

Parsing is strict. There is no error recovery, entity decoding or
implicit closing of elements as HTML5 would require. The first error
aborts the parse and is reported as a *scan.Error; no partial tree is
ever returned.

Trees are owned top-down: every node owns its children and there are no
parent links. Once parsing has finished, trees are meant to be read only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'mindom.dom'
func tracer() tracing.Trace {
	return tracing.Select("mindom.dom")
}
