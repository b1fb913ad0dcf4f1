package vex

// Patch is a single mutation a backend applies to its rendered output.
// Child indices refer to positions in the backend's current child list as
// patches are applied in order.
type Patch interface {
	patch() // marker method to ensure type safety
}

// SetAttribute sets or replaces an attribute on the current element.
type SetAttribute struct {
	Key   string
	Value AttributeValue
}

// RemoveAttribute removes an attribute from the current element.
type RemoveAttribute struct {
	Key string
}

// AddChild inserts a node at the given child index.
type AddChild struct {
	Index int
	Node  Node
}

// ReplaceChild replaces the node at the given child index.
type ReplaceChild struct {
	Index int
	Node  Node
}

// RemoveChild removes the node at the given child index.
type RemoveChild struct {
	Index int
}

// PatchChild applies nested patches to the element at the given child index.
type PatchChild struct {
	Index   int
	Patches []Patch
}

// SetHandler registers the handler with the given ID for an event kind.
type SetHandler struct {
	Kind string
	ID   string
}

// RemoveHandler unregisters the handler with the given ID for an event kind.
type RemoveHandler struct {
	Kind string
	ID   string
}

func (SetAttribute) patch()    {}
func (RemoveAttribute) patch() {}
func (AddChild) patch()        {}
func (ReplaceChild) patch()    {}
func (RemoveChild) patch()     {}
func (PatchChild) patch()      {}
func (SetHandler) patch()      {}
func (RemoveHandler) patch()   {}

// DiffNodes computes the patch that transforms old into new. Returns
// false when the trees are identical and nothing needs to be applied.
func DiffNodes(old, new Node) (Patch, bool) {
	i := 0
	return diffNode(old, new, &i)
}

// diffNode diffs two nodes at child index *i of their parent.
func diffNode(old, new Node, i *int) (Patch, bool) {
	switch o := old.(type) {
	case *ElementNode:
		if n, ok := new.(*ElementNode); ok {
			return diffElements(o, n, *i)
		}
	case TextNode:
		if n, ok := new.(TextNode); ok {
			if o == n {
				return nil, false
			}
			return ReplaceChild{Index: *i, Node: new}, true
		}
	case NullNode:
		if _, ok := new.(NullNode); ok {
			return nil, false
		}
		return AddChild{Index: *i, Node: new}, true
	}
	if _, ok := new.(NullNode); ok {
		return RemoveChild{Index: *i}, true
	}
	return ReplaceChild{Index: *i, Node: new}, true
}

// diffElements diffs two elements at child index i. Elements with
// different names or different keys are replaced wholesale; otherwise
// their attributes, handlers, and children are patched in place.
func diffElements(old, new *ElementNode, i int) (Patch, bool) {
	if oldKey, ok := old.Key(); ok {
		if newKey, ok := new.Key(); ok && oldKey != newKey {
			return ReplaceChild{Index: i, Node: new}, true
		}
	}

	if old.Name != new.Name {
		return ReplaceChild{Index: i, Node: new}, true
	}

	var patches []Patch
	patches = append(patches, diffAttributes(old.Attributes, new.Attributes)...)
	patches = append(patches, diffHandlers(old.Handlers, new.Handlers)...)
	childIndex := 0
	patches = append(patches, diffChildren(old.Children, new.Children, &childIndex)...)

	if len(patches) == 0 {
		return nil, false
	}
	return PatchChild{Index: i, Patches: patches}, true
}

// diffAttributes emits SetAttribute for new or changed attributes and
// RemoveAttribute for attributes that disappeared. Removals are emitted in
// the old attribute order.
func diffAttributes(old, new []Attribute) []Patch {
	var patches []Patch

	oldValues := make(map[string]AttributeValue, len(old))
	for _, attr := range old {
		oldValues[attr.Key] = attr.Value
	}

	for _, attr := range new {
		if oldVal, ok := oldValues[attr.Key]; ok {
			if !oldVal.Equal(attr.Value) {
				patches = append(patches, SetAttribute{Key: attr.Key, Value: attr.Value})
			}
			delete(oldValues, attr.Key)
			continue
		}
		patches = append(patches, SetAttribute{Key: attr.Key, Value: attr.Value})
	}

	for _, attr := range old {
		if _, ok := oldValues[attr.Key]; ok {
			patches = append(patches, RemoveAttribute{Key: attr.Key})
		}
	}

	return patches
}

// diffHandlers re-registers every handler in the new tree (handler IDs are
// fresh per render) and removes handlers that no longer exist.
func diffHandlers(old, new []Handler) []Patch {
	var patches []Patch

	oldIDs := make(map[string]string, len(old))
	for _, h := range old {
		oldIDs[h.Kind] = h.ID
	}

	for _, h := range new {
		delete(oldIDs, h.Kind)
		patches = append(patches, SetHandler{Kind: h.Kind, ID: h.ID})
	}

	for _, h := range old {
		if id, ok := oldIDs[h.Kind]; ok && id == h.ID {
			patches = append(patches, RemoveHandler{Kind: h.Kind, ID: h.ID})
		}
	}

	return patches
}

// diffChildren reconciles two child lists. Keyed old children whose key is
// absent from the new list are removed up front so that the positional
// pairing below lines surviving children up with their successors.
func diffChildren(old, new []Node, i *int) []Patch {
	var patches []Patch

	newKeys := make(map[string]bool)
	for _, c := range new {
		if k, ok := nodeKey(c); ok {
			newKeys[k] = true
		}
	}

	survivors := make([]Node, 0, len(old))
	for _, c := range old {
		if k, ok := nodeKey(c); ok && !newKeys[k] {
			patches = append(patches, RemoveChild{Index: *i})
			continue
		}
		*i++
		survivors = append(survivors, c)
	}

	// Pair surviving old children with new children positionally.
	idx := 0
	next := 0
	for _, newChild := range new {
		if next >= len(survivors) {
			patches = append(patches, AddChild{Index: idx, Node: newChild})
			idx++
		} else {
			oldChild := survivors[next]
			next++
			if p, changed := diffNode(oldChild, newChild, &idx); changed {
				patches = append(patches, p)
				if _, isRemove := p.(RemoveChild); isRemove {
					continue
				}
			}
		}
		idx++
	}

	// Old children with no new counterpart are removed from the tail.
	for ; next < len(survivors); next++ {
		patches = append(patches, RemoveChild{Index: idx})
	}

	return patches
}
