// Package ast defines the tagged-node tree produced by the template CSS grammar.
//
// A tree is pure value data: every Node carries the production that built it and
// its children in source order. A child is a nested *Node, a Leaf holding literal
// source text, or a *Ref pointing at an embedded value supplied by the caller.
package ast

import "fmt"

// Tag names the grammar production that produced a Node.
type Tag int

// Productions of the grammar. The set is closed; printers switch over all of them.
const (
	TagSet Tag = iota
	TagRule
	TagAtRule
	TagAtExpr
	TagAtTerm
	TagAtDeclaration
	TagSelector
	TagSelectorTerm
	TagCombinator
	TagAttrib
	TagPseudo
	TagPseudoArgs
	TagDeclaration
	TagExpr
	TagTerm
	TagOperator
	TagFunc
	TagID
	TagHex
	TagValue
	TagImportant
	TagRecover
	TagExtCSS
	TagExtProperty
	TagExtValue
	TagExtSelector
	TagExtAt

	numTags
)

var tagNames = [numTags]string{
	TagSet:           "set",
	TagRule:          "rule",
	TagAtRule:        "at_rule",
	TagAtExpr:        "at_expr",
	TagAtTerm:        "at_term",
	TagAtDeclaration: "at_declaration",
	TagSelector:      "selector",
	TagSelectorTerm:  "selector_term",
	TagCombinator:    "combinator",
	TagAttrib:        "attrib",
	TagPseudo:        "pseudo",
	TagPseudoArgs:    "pseudo_args",
	TagDeclaration:   "declaration",
	TagExpr:          "expr",
	TagTerm:          "term",
	TagOperator:      "operator",
	TagFunc:          "func",
	TagID:            "id",
	TagHex:           "hex",
	TagValue:         "value",
	TagImportant:     "important",
	TagRecover:       "recover",
	TagExtCSS:        "ext_css",
	TagExtProperty:   "ext_property",
	TagExtValue:      "ext_value",
	TagExtSelector:   "ext_selector",
	TagExtAt:         "ext_at",
}

// String returns the production name, e.g. "selector_term".
func (t Tag) String() string {
	if t < 0 || t >= numTags {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// MarshalText encodes the tag as its production name.
func (t Tag) MarshalText() ([]byte, error) {
	if t < 0 || t >= numTags {
		return nil, fmt.Errorf("unknown tag %d", int(t))
	}
	return []byte(tagNames[t]), nil
}

// IsExtension reports whether t is one of the five splice productions.
func (t Tag) IsExtension() bool {
	switch t {
	case TagExtCSS, TagExtProperty, TagExtValue, TagExtSelector, TagExtAt:
		return true
	}
	return false
}

// Child is an element of a Node's children: *Node, Leaf or *Ref.
type Child interface {
	child()
}

func (*Node) child() {}
func (Leaf) child()  {}
func (*Ref) child()  {}

// Leaf is literal source text matched by a lexical rule.
type Leaf string

// Node is a tagged node of the syntax tree.
type Node struct {
	Tag      Tag     `json:"tag" yaml:"tag"`
	Offset   int     `json:"offset" yaml:"offset"` // byte offset of the first matched text
	Children []Child `json:"children,omitempty" yaml:"children,omitempty"`
}

// New returns a node with the given tag and children.
func New(tag Tag, children ...Child) *Node {
	return &Node{Tag: tag, Children: children}
}

// Nodes returns the direct children of n that are nodes tagged tag.
func (n *Node) Nodes(tag Tag) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok && cn.Tag == tag {
			out = append(out, cn)
		}
	}
	return out
}

// First returns the first direct child of n tagged tag, or nil.
func (n *Node) First(tag Tag) *Node {
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok && cn.Tag == tag {
			return cn
		}
	}
	return nil
}

// Leaf returns the text of the i-th child when it is a Leaf.
func (n *Node) Leaf(i int) (string, bool) {
	if i < 0 || i >= len(n.Children) {
		return "", false
	}
	l, ok := n.Children[i].(Leaf)
	return string(l), ok
}
