package vex

import (
	"reflect"
	"testing"
)

func el(name string, attrs []Attribute, children ...Node) *ElementNode {
	return &ElementNode{Name: name, Attributes: attrs, Children: children}
}

func keyed(name, key string, children ...Node) *ElementNode {
	return el(name, []Attribute{{Key: "key", Value: String(key)}}, children...)
}

func TestDiff_IdenticalTrees(t *testing.T) {
	old := el("div", []Attribute{{Key: "class", Value: String("x")}},
		TextNode("hello"),
		el("span", nil),
	)
	new := el("div", []Attribute{{Key: "class", Value: String("x")}},
		TextNode("hello"),
		el("span", nil),
	)

	if patch, changed := DiffNodes(old, new); changed {
		t.Errorf("expected no patch, got %#v", patch)
	}
}

func TestDiff_TextChange(t *testing.T) {
	old := el("p", nil, TextNode("before"))
	new := el("p", nil, TextNode("after"))

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		ReplaceChild{Index: 0, Node: TextNode("after")},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_NameMismatchReplaces(t *testing.T) {
	patch, changed := DiffNodes(el("div", nil), el("span", nil))
	if !changed {
		t.Fatal("expected a patch")
	}
	rc, ok := patch.(ReplaceChild)
	if !ok {
		t.Fatalf("expected ReplaceChild, got %#v", patch)
	}
	if n, ok := rc.Node.(*ElementNode); !ok || n.Name != "span" {
		t.Errorf("replacement node = %#v", rc.Node)
	}
}

func TestDiff_KeyMismatchReplaces(t *testing.T) {
	patch, changed := DiffNodes(keyed("li", "a"), keyed("li", "b"))
	if !changed {
		t.Fatal("expected a patch")
	}
	if _, ok := patch.(ReplaceChild); !ok {
		t.Errorf("expected ReplaceChild, got %#v", patch)
	}
}

func TestDiff_Attributes(t *testing.T) {
	old := el("div", []Attribute{
		{Key: "class", Value: String("a")},
		{Key: "hidden", Value: Bool(true)},
		{Key: "id", Value: String("main")},
	})
	new := el("div", []Attribute{
		{Key: "class", Value: String("b")},
		{Key: "id", Value: String("main")},
		{Key: "title", Value: String("t")},
	})

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		SetAttribute{Key: "class", Value: String("b")},
		SetAttribute{Key: "title", Value: String("t")},
		RemoveAttribute{Key: "hidden"},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_NullToNode(t *testing.T) {
	patch, changed := DiffNodes(NullNode{}, TextNode("x"))
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(AddChild{Index: 0, Node: TextNode("x")})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_NodeToNull(t *testing.T) {
	patch, changed := DiffNodes(TextNode("x"), NullNode{})
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(RemoveChild{Index: 0})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_AppendChild(t *testing.T) {
	old := el("ul", nil, el("li", nil))
	new := el("ul", nil, el("li", nil), el("li", nil, TextNode("two")))

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	pc, ok := patch.(PatchChild)
	if !ok {
		t.Fatalf("expected PatchChild, got %#v", patch)
	}
	if len(pc.Patches) != 1 {
		t.Fatalf("expected 1 child patch, got %#v", pc.Patches)
	}
	add, ok := pc.Patches[0].(AddChild)
	if !ok {
		t.Fatalf("expected AddChild, got %#v", pc.Patches[0])
	}
	if add.Index != 1 {
		t.Errorf("AddChild.Index = %d, want 1", add.Index)
	}
}

func TestDiff_RemoveTrailingChild(t *testing.T) {
	old := el("ul", nil, TextNode("one"), TextNode("two"))
	new := el("ul", nil, TextNode("one"))

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		RemoveChild{Index: 1},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_KeyedChildRemoval(t *testing.T) {
	// Removing a keyed child up front lets its siblings pair positionally
	// instead of cascading replacements.
	old := el("ul", nil,
		keyed("li", "a", TextNode("a")),
		keyed("li", "b", TextNode("b")),
		keyed("li", "c", TextNode("c")),
	)
	new := el("ul", nil,
		keyed("li", "a", TextNode("a")),
		keyed("li", "c", TextNode("c")),
	)

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		RemoveChild{Index: 1},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_Handlers(t *testing.T) {
	old := el("button", nil)
	old.Handlers = []Handler{{Kind: "click", ID: "id-1"}}
	new := el("button", nil)
	new.Handlers = []Handler{{Kind: "click", ID: "id-2"}}

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		SetHandler{Kind: "click", ID: "id-2"},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestDiff_HandlerRemoved(t *testing.T) {
	old := el("button", nil)
	old.Handlers = []Handler{{Kind: "click", ID: "id-1"}}
	new := el("button", nil)

	patch, changed := DiffNodes(old, new)
	if !changed {
		t.Fatal("expected a patch")
	}
	want := Patch(PatchChild{Index: 0, Patches: []Patch{
		RemoveHandler{Kind: "click", ID: "id-1"},
	}})
	if !reflect.DeepEqual(patch, want) {
		t.Errorf("got %#v, want %#v", patch, want)
	}
}

func TestAttributeValueEqual(t *testing.T) {
	if !String("a").Equal(String("a")) {
		t.Error("equal strings reported unequal")
	}
	if String("a").Equal(String("b")) {
		t.Error("different strings reported equal")
	}
	if String("true").Equal(Bool(true)) {
		t.Error("string and bool reported equal")
	}
	if !Bool(false).Equal(Bool(false)) {
		t.Error("equal bools reported unequal")
	}
}
