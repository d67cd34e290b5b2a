package dom

import "fmt"

// NodeType is the discriminator of the Node sum type.
type NodeType int

// Node types.
const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
	DocumentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is a node of a document tree. It is implemented by *Element, *Text,
// *Comment and *Document only.
type Node interface {
	NodeType() NodeType
	isNode()
}

// Element is a markup element together with its attributes and children.
type Element struct {
	TagName    string
	Attributes AttrMap
	Children   []Node // in document order
}

// NewElement creates an element node. attrs may be nil.
func NewElement(tagName string, attrs AttrMap, children []Node) *Element {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Element{TagName: tagName, Attributes: attrs, Children: children}
}

func (*Element) NodeType() NodeType { return ElementNode }
func (*Element) isNode()            {}

// HasChildNodes checks for existence of sub-nodes.
func (e *Element) HasChildNodes() bool {
	return len(e.Children) > 0
}

// FirstChild returns the first child node or nil.
func (e *Element) FirstChild() Node {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// String renders the element and its subtree with the pretty-printer.
func (e *Element) String() string {
	return Sprint(e)
}

// Text is a run of character data.
type Text struct {
	Data string
}

// NewText creates a text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

func (*Text) NodeType() NodeType { return TextNode }
func (*Text) isNode()            {}

func (t *Text) String() string {
	return t.Data
}

// Comment holds the content of a comment, without the delimiters.
type Comment struct {
	Data string
}

// NewComment creates a comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

func (*Comment) NodeType() NodeType { return CommentNode }
func (*Comment) isNode()            {}

func (c *Comment) String() string {
	return "<!-- " + c.Data + " -->"
}

var _ Node = &Element{}
var _ Node = &Text{}
var _ Node = &Comment{}
var _ Node = &Document{}
