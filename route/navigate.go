package route

import "fmt"

// State is the phase of a single navigation.
type State int

const (
	Idle State = iota
	Resolving
	Rendered
	Redirecting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Rendered:
		return "rendered"
	case Redirecting:
		return "redirecting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool { return s == Rendered || s == Redirecting }

var transitions = map[State][]State{
	Idle:      {Resolving},
	Resolving: {Rendered, Redirecting},
}

func canMove(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Resolver looks up an entity by slug. A miss is reported through the
// boolean, never as an error.
type Resolver[T any] interface {
	FindBySlug(slug string) (T, bool)
}

// ResolverFunc adapts a lookup function to Resolver.
type ResolverFunc[T any] func(string) (T, bool)

// FindBySlug calls f.
func (f ResolverFunc[T]) FindBySlug(slug string) (T, bool) { return f(slug) }

// Navigation is the outcome of resolving one detail path.
type Navigation[T any] struct {
	Path     string
	Slug     string
	State    State
	Entity   T
	Redirect string
	Trace    []State
}

// Navigate resolves slug with r. A hit ends in Rendered with Entity set; a
// miss ends in Redirecting with Redirect set to fallback and Entity left at
// its zero value, so a detail view is never built for it.
func Navigate[T any](path, slug string, r Resolver[T], fallback string) *Navigation[T] {
	n := &Navigation[T]{Path: path, Slug: slug, State: Idle, Trace: []State{Idle}}
	n.move(Resolving)
	entity, ok := r.FindBySlug(slug)
	if !ok {
		n.Redirect = fallback
		n.move(Redirecting)
		return n
	}
	n.Entity = entity
	n.move(Rendered)
	return n
}

// Found reports whether the navigation rendered an entity.
func (n *Navigation[T]) Found() bool { return n.State == Rendered }

func (n *Navigation[T]) move(to State) {
	if !canMove(n.State, to) {
		panic(fmt.Sprintf("route: illegal transition %s -> %s", n.State, to))
	}
	n.State = to
	n.Trace = append(n.Trace, to)
}
