package box

import "sync"

// ── Lifetimes ─────────────────────────────────────────────────────────────────

// Lifetime controls how a registered factory's product is stored.
type Lifetime int

const (
	// Transient produces a fresh instance on every resolve.
	Transient Lifetime = iota

	// Permanent produces once and memoizes the result; every later resolve
	// returns the same instance.
	Permanent
)

// String returns "transient" or "permanent".
func (l Lifetime) String() string {
	if l == Permanent {
		return "permanent"
	}
	return "transient"
}

// ── Factories ─────────────────────────────────────────────────────────────────

// Factory builds a service. It receives the box the lookup landed on, so a
// factory can resolve its own dependencies through b.
type Factory func(b *Box) any

// ── Storage strategies ────────────────────────────────────────────────────────

// storage produces or returns a service instance given a resolver.
// A box shares storage entries with its children by reference: when a child is
// spawned it snapshots the parent's key→storage associations, not the products.
type storage interface {
	produce(resolver *Box) any
}

// cachedStorage memoizes the factory's first product. The resolver argument is
// ignored on replay. The produced flag (rather than a nil check) lets factories
// legally return nil.
type cachedStorage struct {
	mu       sync.Mutex
	factory  Factory
	instance any
	produced bool
}

func (s *cachedStorage) produce(resolver *Box) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.produced {
		s.instance = s.factory(resolver)
		s.produced = true
	}
	return s.instance
}

// perCallStorage runs the factory on every produce and stores nothing.
type perCallStorage struct {
	factory Factory
}

func (s *perCallStorage) produce(resolver *Box) any {
	return s.factory(resolver)
}

// newStorage picks the storage strategy for a lifetime.
func newStorage(lt Lifetime, f Factory) storage {
	if lt == Permanent {
		return &cachedStorage{factory: f}
	}
	return &perCallStorage{factory: f}
}
