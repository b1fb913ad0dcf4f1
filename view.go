package vex

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// HandlerArg is the raw event payload passed to a handler. Backends encode
// whatever event data they have as JSON.
type HandlerArg = json.RawMessage

// HandlerFunc turns an event payload into an action. Returning ok=false
// means the event produces no action.
type HandlerFunc func(arg HandlerArg) (action any, ok bool)

// ViewHandler is an event handler declared on a view before registration.
// NewView assigns it a fresh ID and adds it to the view's handler map.
type ViewHandler struct {
	Kind string
	Fn   HandlerFunc
}

// On declares an event handler for the given event kind.
func On(kind string, fn HandlerFunc) ViewHandler {
	return ViewHandler{Kind: kind, Fn: fn}
}

// View is a rendered node plus the handler functions registered anywhere
// in its subtree, keyed by handler ID.
type View struct {
	node     Node
	handlers map[string]HandlerFunc
}

// Node returns the view's rendered node.
func (v View) Node() Node { return v.node }

// Child is anything that contributes views to a parent element: a single
// View or a ViewList.
type Child interface {
	views() []View
}

func (v View) views() []View { return []View{v} }

// ViewList is an ordered sequence of views contributed as siblings.
type ViewList []View

func (l ViewList) views() []View { return l }

// NewView builds an element view. Handler functions are registered under
// fresh IDs, and the handler maps of all children are merged into the
// result so the root view carries every handler in the tree.
func NewView(name string, attrs []Attribute, handlers []ViewHandler, children ...Child) View {
	handlerMap := make(map[string]HandlerFunc)

	elementHandlers := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		id := uuid.NewString()
		handlerMap[id] = h.Fn
		elementHandlers = append(elementHandlers, Handler{Kind: h.Kind, ID: id})
	}

	var childNodes []Node
	for _, child := range children {
		for _, v := range child.views() {
			for id, fn := range v.handlers {
				handlerMap[id] = fn
			}
			childNodes = append(childNodes, v.node)
		}
	}

	return View{
		node: &ElementNode{
			Name:       name,
			Attributes: attrs,
			Handlers:   elementHandlers,
			Children:   childNodes,
		},
		handlers: handlerMap,
	}
}

// Text creates a text view.
func Text(s string) View {
	return View{node: TextNode(s)}
}

// Null creates the empty view. It renders nothing but holds a position in
// its parent's child list, so toggling between Null and a real view diffs
// to an insertion or removal at a stable index.
func Null() View {
	return View{node: NullNode{}}
}

// Dynamic converts the result of an embedded expression into a Child.
// Generated code wraps expression splices in child position with it.
// nil becomes the empty view, strings become text, and views and view
// slices pass through; anything else is rendered with fmt.
func Dynamic(v any) Child {
	switch val := v.(type) {
	case nil:
		return Null()
	case View:
		return val
	case ViewList:
		return val
	case []View:
		return ViewList(val)
	case string:
		return Text(val)
	default:
		return Text(fmt.Sprint(val))
	}
}
