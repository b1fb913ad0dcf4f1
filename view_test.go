package vex

import (
	"testing"
)

func TestNewView_BuildsElement(t *testing.T) {
	v := NewView("div",
		[]Attribute{{Key: "class", Value: String("row")}},
		nil,
		Text("hi"),
		Null(),
	)

	node, ok := v.Node().(*ElementNode)
	if !ok {
		t.Fatalf("expected *ElementNode, got %#v", v.Node())
	}
	if node.Name != "div" {
		t.Errorf("Name = %q, want %q", node.Name, "div")
	}
	if len(node.Attributes) != 1 || node.Attributes[0].Key != "class" {
		t.Errorf("Attributes = %#v", node.Attributes)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %#v", node.Children)
	}
	if node.Children[0] != TextNode("hi") {
		t.Errorf("Children[0] = %#v", node.Children[0])
	}
	if _, ok := node.Children[1].(NullNode); !ok {
		t.Errorf("Children[1] = %#v, want NullNode", node.Children[1])
	}
}

func TestNewView_RegistersHandlers(t *testing.T) {
	v := NewView("button", nil, []ViewHandler{
		On("click", func(HandlerArg) (any, bool) { return nil, false }),
	})

	node := v.Node().(*ElementNode)
	if len(node.Handlers) != 1 {
		t.Fatalf("expected 1 handler, got %#v", node.Handlers)
	}
	h := node.Handlers[0]
	if h.Kind != "click" {
		t.Errorf("Kind = %q, want %q", h.Kind, "click")
	}
	if h.ID == "" {
		t.Error("handler ID is empty")
	}
	if _, ok := v.handlers[h.ID]; !ok {
		t.Errorf("handler %q not in view's handler map", h.ID)
	}
}

func TestNewView_HandlerIDsAreUnique(t *testing.T) {
	fn := func(HandlerArg) (any, bool) { return nil, false }
	v := NewView("input", nil, []ViewHandler{On("focus", fn), On("blur", fn)})

	node := v.Node().(*ElementNode)
	if node.Handlers[0].ID == node.Handlers[1].ID {
		t.Errorf("handlers share ID %q", node.Handlers[0].ID)
	}
}

func TestNewView_MergesChildHandlers(t *testing.T) {
	fn := func(HandlerArg) (any, bool) { return nil, false }
	child := NewView("button", nil, []ViewHandler{On("click", fn)})
	childID := child.Node().(*ElementNode).Handlers[0].ID

	parent := NewView("div", nil, []ViewHandler{On("scroll", fn)}, child)

	if len(parent.handlers) != 2 {
		t.Fatalf("expected 2 handlers in merged map, got %d", len(parent.handlers))
	}
	if _, ok := parent.handlers[childID]; !ok {
		t.Errorf("child handler %q not merged into parent", childID)
	}
}

func TestViewList_ContributesSiblings(t *testing.T) {
	list := ViewList{Text("a"), Text("b")}
	parent := NewView("ul", nil, nil, list, Text("c"))

	node := parent.Node().(*ElementNode)
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %#v", node.Children)
	}
	if node.Children[0] != TextNode("a") || node.Children[2] != TextNode("c") {
		t.Errorf("Children = %#v", node.Children)
	}
}

func TestDynamic(t *testing.T) {
	type tc struct {
		in   any
		want Node
	}

	tests := map[string]tc{
		"nil":    {in: nil, want: NullNode{}},
		"string": {in: "hi", want: TextNode("hi")},
		"int":    {in: 42, want: TextNode("42")},
		"view":   {in: Text("v"), want: TextNode("v")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			views := Dynamic(tt.in).views()
			if len(views) != 1 {
				t.Fatalf("expected 1 view, got %d", len(views))
			}
			if views[0].Node() != tt.want {
				t.Errorf("got %#v, want %#v", views[0].Node(), tt.want)
			}
		})
	}
}

func TestDynamic_ViewSlice(t *testing.T) {
	vs := []View{Text("a"), Text("b")}
	views := Dynamic(vs).views()
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[1].Node() != TextNode("b") {
		t.Errorf("views[1] = %#v", views[1].Node())
	}
}

func TestElementNode_Key(t *testing.T) {
	withKey := el("li", []Attribute{{Key: "key", Value: String("a")}})
	if k, ok := withKey.Key(); !ok || k != "a" {
		t.Errorf("Key() = %q, %v; want %q, true", k, ok, "a")
	}

	boolKey := el("li", []Attribute{{Key: "key", Value: Bool(true)}})
	if _, ok := boolKey.Key(); ok {
		t.Error("non-string key reported as present")
	}

	if _, ok := el("li", nil).Key(); ok {
		t.Error("missing key reported as present")
	}
}

func TestAttrValue(t *testing.T) {
	if v := AttrValue("s"); !v.Equal(String("s")) {
		t.Errorf("AttrValue(string) = %#v", v)
	}
	if v := AttrValue(true); !v.Equal(Bool(true)) {
		t.Errorf("AttrValue(bool) = %#v", v)
	}
	if v := AttrValue(7); !v.Equal(String("7")) {
		t.Errorf("AttrValue(int) = %#v", v)
	}
	if v := AttrValue(String("x")); !v.Equal(String("x")) {
		t.Errorf("AttrValue(AttributeValue) = %#v", v)
	}
}
