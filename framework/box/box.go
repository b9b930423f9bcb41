package box

import (
	"fmt"
	"sync"
	"weak"
)

// ── Box ───────────────────────────────────────────────────────────────────────

// Box is a hierarchical IoC container. It maps derived keys to storage
// strategies, owns named child boxes, and holds a non-owning reference to the
// box that spawned it.
//
// Resolution walks upward: a box first consults its own registrations, then
// delegates to its live parent, recursively. A child therefore sees two
// things: a snapshot of the parent's registrations taken when the child was
// spawned, and — through the fallback path — anything registered on the
// parent afterwards.
type Box struct {
	mu sync.RWMutex

	// derived key → storage strategy
	services map[string]storage

	// owned child boxes
	children map[string]*Box

	// parent is the box that spawned this one; zero for roots. A child must
	// never keep its parent alive, so the reference is weak: once the parent
	// has been collected, fallback resolution simply stops here.
	parent weak.Pointer[Box]

	// warning sink; nil is inert
	warn Warner
}

// New creates an empty root box.
func New() *Box {
	return &Box{
		services: make(map[string]storage),
		children: make(map[string]*Box),
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register stores a factory under key with the given lifetime. Registering the
// same key twice replaces the earlier entry and reports a warning.
//
//	b.Register(box.TypeKey(&Mailer{}), box.Permanent, func(b *box.Box) any {
//	    return NewMailer(box.Resolve[*config.Config](b, ""))
//	})
func (b *Box) Register(key string, lt Lifetime, f Factory) {
	b.register(key, lt, f)
}

func (b *Box) register(key string, lt Lifetime, f Factory) storage {
	st := newStorage(lt, f)

	b.mu.Lock()
	_, dup := b.services[key]
	b.services[key] = st
	b.mu.Unlock()

	if dup {
		b.warnf("box: overwriting existing registration for [%s]", key)
	}
	return st
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve produces the service stored under key. On a local hit the storage
// strategy runs with this box as the resolver, so factories that resolve their
// own dependencies do it through the box the hit landed on, not the original
// caller's. On a local miss the lookup delegates to the live parent. When the
// chain is exhausted Resolve returns an *UnresolvedError.
func (b *Box) Resolve(key string) (any, error) {
	b.mu.RLock()
	st, ok := b.services[key]
	b.mu.RUnlock()

	if ok {
		return st.produce(b), nil
	}
	if parent := b.parent.Value(); parent != nil {
		return parent.Resolve(key)
	}
	return nil, &UnresolvedError{Key: key}
}

// MustResolve is the fail-fast form of Resolve: a missing registration means
// the application's wiring is incomplete, so it panics with a diagnostic
// naming the key instead of returning an error.
func (b *Box) MustResolve(key string) any {
	v, err := b.Resolve(key)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// ── Child boxes ───────────────────────────────────────────────────────────────

// AddChildBox spawns a child box under key and returns it. The child starts
// with a snapshot of this box's current registrations: storage entries are
// shared by reference, so a Permanent service already produced here is the
// very same instance in the child. Keys registered here after the spawn are
// not copied, but remain reachable through Resolve's parent fallback.
//
// An existing child under the same key is replaced, with a warning.
func (b *Box) AddChildBox(key string) *Box {
	child := New()
	child.parent = weak.Make(b)

	b.mu.Lock()
	child.warn = b.warn
	for k, st := range b.services {
		child.services[k] = st
	}
	_, dup := b.children[key]
	b.children[key] = child
	b.mu.Unlock()

	if dup {
		b.warnf("box: overwriting existing child box for [%s]", key)
	}
	return child
}

// ChildBox looks up a previously added child box. A missing key reports a
// warning and returns (nil, false).
func (b *Box) ChildBox(key string) (*Box, bool) {
	b.mu.RLock()
	child, ok := b.children[key]
	b.mu.RUnlock()

	if !ok {
		b.warnf("box: no child box registered for [%s]", key)
		return nil, false
	}
	return child, true
}

// Clear empties this box's registrations and, recursively, every child's.
// The child boxes themselves and their parent links survive.
func (b *Box) Clear() {
	b.mu.Lock()
	b.services = make(map[string]storage)
	children := make([]*Box, 0, len(b.children))
	for _, child := range b.children {
		children = append(children, child)
	}
	b.mu.Unlock()

	for _, child := range children {
		child.Clear()
	}
}

// ── Introspection ─────────────────────────────────────────────────────────────

// ServiceCount reports the number of registrations held directly by this box,
// not counting parents or children.
func (b *Box) ServiceCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.services)
}

// Keys returns the derived keys registered directly on this box (for
// debugging; order is unspecified).
func (b *Box) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.services))
	for k := range b.services {
		out = append(out, k)
	}
	return out
}

// Parent returns the box that spawned this one, or nil for roots and for
// children whose parent has been collected.
func (b *Box) Parent() *Box {
	return b.parent.Value()
}

// ── Generic type-indexed surface ──────────────────────────────────────────────

// Register binds a zero-argument factory for T under an optional qualifier.
// With Permanent the factory is lazy: it does not run until the first resolve.
//
//	box.Register(b, "", box.Permanent, func() *Clock { return NewClock() })
func Register[T any](b *Box, qualifier string, lt Lifetime, factory func() T) {
	b.Register(KeyFor[T](qualifier), lt, func(*Box) any { return factory() })
}

// RegisterWith binds a resolver-accepting factory for T, so the factory can
// resolve its own dependencies. With Permanent the factory runs once,
// immediately at registration time, with the registering box as the resolver;
// the product is memoized. With Transient it runs on every resolve, receiving
// the box the lookup landed on.
//
//	box.RegisterWith(b, "", box.Permanent, func(r *box.Box) *Mailer {
//	    return NewMailer(box.Resolve[*config.Config](r, ""))
//	})
func RegisterWith[T any](b *Box, qualifier string, lt Lifetime, factory func(*Box) T) {
	st := b.register(KeyFor[T](qualifier), lt, func(r *Box) any { return factory(r) })
	if lt == Permanent {
		st.produce(b)
	}
}

// Resolve retrieves a T from b or its parent chain, panicking if nothing is
// registered under the derived key or the stored payload is not a T. Use
// TryResolve for the error-returning form.
//
//	cfg := box.Resolve[*config.Config](b, "")
func Resolve[T any](b *Box, qualifier string) T {
	v, err := TryResolve[T](b, qualifier)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// TryResolve is Resolve with a tagged failure instead of a panic: it returns
// an *UnresolvedError when the parent chain holds no registration for the
// derived key, and a *ServiceTypeError when the stored payload does not match
// the requested type.
func TryResolve[T any](b *Box, qualifier string) (T, error) {
	key := KeyFor[T](qualifier)
	v, err := b.Resolve(key)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, &ServiceTypeError{
			Key:  key,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}
