package vex

import "sync"

// App is the application contract: a pure reducer over state and a view
// of that state. S must be comparable so the runtime can skip renders
// when an action leaves the state unchanged.
type App[S comparable, A any] interface {
	Reducer(state S, action A) S
	View(state S) View
}

// Backend renders patches. Apply receives the patch for one render cycle;
// ScheduleRender arranges for the callback to run at the backend's next
// render opportunity (next frame, event loop turn, or immediately).
type Backend interface {
	Apply(Patch)
	ScheduleRender(func())
}

// Runtime drives the render loop: view the state, diff against the last
// rendered tree, hand the patch to the backend, and reduce dispatched
// actions into new state. Renders triggered by multiple dispatches before
// the backend runs are collapsed into one.
type Runtime[S comparable, A any] struct {
	app     App[S, A]
	backend Backend

	mu        sync.Mutex
	state     S
	node      Node
	handlers  map[string]HandlerFunc
	scheduled bool
}

// NewRuntime creates a runtime with the given initial state. Nothing is
// rendered until the first Run call.
func NewRuntime[S comparable, A any](app App[S, A], initial S, backend Backend) *Runtime[S, A] {
	return &Runtime[S, A]{
		app:     app,
		backend: backend,
		state:   initial,
		node:    NullNode{},
	}
}

// Run renders the current state and applies the resulting patch, if any.
func (r *Runtime[S, A]) Run() {
	r.mu.Lock()
	r.scheduled = false
	view := r.app.View(r.state)
	r.handlers = view.handlers
	patch, changed := DiffNodes(r.node, view.node)
	if changed {
		r.node = view.node
	}
	r.mu.Unlock()

	if changed {
		r.backend.Apply(patch)
	}
}

// Dispatch routes an event to the handler registered under id. If the
// handler produces an action and reducing it changes the state, a render
// is scheduled. Unknown IDs are ignored: they belong to a tree that has
// already been replaced.
func (r *Runtime[S, A]) Dispatch(id string, arg HandlerArg) {
	r.mu.Lock()
	fn, ok := r.handlers[id]
	r.mu.Unlock()
	if !ok {
		return
	}

	action, ok := fn(arg)
	if !ok {
		return
	}
	act, ok := action.(A)
	if !ok {
		return
	}

	r.mu.Lock()
	newState := r.app.Reducer(r.state, act)
	if newState == r.state {
		r.mu.Unlock()
		return
	}
	r.state = newState
	if r.scheduled {
		r.mu.Unlock()
		return
	}
	r.scheduled = true
	r.mu.Unlock()

	r.backend.ScheduleRender(r.Run)
}

// State returns the current state.
func (r *Runtime[S, A]) State() S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
