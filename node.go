package vex

import "fmt"

// Node is a rendered virtual-DOM node: an element, a text node, or the
// null node. Nodes are plain values; the runtime never mutates a tree
// after it has been rendered.
type Node interface {
	node() // marker method to ensure type safety
}

// TextNode is a literal text node.
type TextNode string

func (TextNode) node() {}

// NullNode is the absence of a node. Diffing a NullNode against a real
// node produces an insertion, and the reverse produces a removal.
type NullNode struct{}

func (NullNode) node() {}

// ElementNode is a named element with attributes, event handlers, and
// ordered children.
type ElementNode struct {
	Name       string
	Attributes []Attribute
	Handlers   []Handler
	Children   []Node
}

func (*ElementNode) node() {}

// Key returns the element's reconciliation key: the value of its "key"
// attribute when that value is a string. Keyed children survive reordering
// during diffing.
func (e *ElementNode) Key() (string, bool) {
	for _, attr := range e.Attributes {
		if attr.Key == "key" {
			if s, ok := attr.Value.(StringValue); ok {
				return string(s), true
			}
			return "", false
		}
	}
	return "", false
}

// nodeKey returns the reconciliation key of a node, if it has one.
// Only elements can be keyed.
func nodeKey(n Node) (string, bool) {
	if e, ok := n.(*ElementNode); ok {
		return e.Key()
	}
	return "", false
}

// Attribute is a key/value pair on an element.
type Attribute struct {
	Key   string
	Value AttributeValue
}

// AttributeValue is the value of an attribute: a string or a boolean.
type AttributeValue interface {
	attributeValue()
	// Equal reports whether two attribute values are the same variant
	// with the same contents.
	Equal(AttributeValue) bool
}

// StringValue is a string attribute value.
type StringValue string

func (StringValue) attributeValue() {}

// Equal implements AttributeValue.
func (v StringValue) Equal(other AttributeValue) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}

// BoolValue is a boolean attribute value.
type BoolValue bool

func (BoolValue) attributeValue() {}

// Equal implements AttributeValue.
func (v BoolValue) Equal(other AttributeValue) bool {
	o, ok := other.(BoolValue)
	return ok && v == o
}

// String creates a string attribute value.
func String(s string) AttributeValue { return StringValue(s) }

// Bool creates a boolean attribute value.
func Bool(b bool) AttributeValue { return BoolValue(b) }

// AttrValue converts a Go value to an AttributeValue. Generated code uses
// it to splice embedded expressions into attribute position.
func AttrValue(v any) AttributeValue {
	switch val := v.(type) {
	case AttributeValue:
		return val
	case string:
		return StringValue(val)
	case bool:
		return BoolValue(val)
	default:
		return StringValue(fmt.Sprint(v))
	}
}

// Handler associates an event kind ("click", "input", ...) with the ID of
// a registered handler function.
type Handler struct {
	Kind string
	ID   string
}
