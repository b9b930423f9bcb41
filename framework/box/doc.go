// Package box provides a hierarchical, type-indexed IoC container and a
// Service Provider system for Go.
//
// # Overview
//
// A Box maps derived keys — a type identity plus an optional string
// qualifier — to factory functions, each wrapped in one of two lifetimes:
// Transient (a fresh instance per resolve) or Permanent (produced once,
// memoized). Boxes chain: a child box spawned with AddChildBox starts from a
// snapshot of its parent's registrations and falls back to the live parent
// for anything registered after the snapshot.
//
// # Registering
//
//	b := box.New()
//
//	// Zero-argument factory; Permanent is lazy (runs on first resolve)
//	box.Register(b, "", box.Permanent, func() *Clock { return NewClock() })
//
//	// Resolver-accepting factory, so it can resolve its own dependencies.
//	// Permanent + resolver form is EAGER: it runs at registration time.
//	box.RegisterWith(b, "", box.Permanent, func(r *box.Box) *Mailer {
//	    return NewMailer(box.Resolve[*config.Config](r, ""))
//	})
//
//	// Qualifiers distinguish services of the same type
//	box.Register(b, "primary", box.Permanent, newPrimaryDB)
//	box.Register(b, "replica", box.Permanent, newReplicaDB)
//
// Registering a key twice replaces the earlier entry; the replacement is
// reported through the warning sink (see below) and otherwise silent.
//
// # Resolving
//
//	// Fail-fast: panics if nothing is registered for the derived key.
//	// Missing wiring is treated as a programming error, not a runtime
//	// condition — register everything before the first resolve.
//	clock := box.Resolve[*Clock](b, "")
//
//	// Error-returning form, for callers that want the tagged failure
//	mailer, err := box.TryResolve[*Mailer](b, "")
//
//	// Raw string-keyed surface
//	v, err := b.Resolve(box.TypeKey(&Clock{}))
//
// # Child boxes
//
//	api := b.AddChildBox("api")        // snapshot of b's registrations
//	box.Register(api, "", box.Permanent, func() *Greeter {
//	    return &Greeter{Greeting: "api"}    // local override
//	})
//
//	box.Register(b, "", box.Transient, newStamp) // after the spawn…
//	box.Resolve[*Stamp](api, "")                 // …still found via fallback
//
// Storage entries are shared by reference between parent and child, so a
// Permanent service already produced by the parent is the same instance when
// resolved through the child. The child's back-reference to its parent is
// weak: a child never keeps its parent alive, and once the parent is
// collected the fallback path simply ends at the child.
//
// Clear() empties registrations on a box and all of its children while
// leaving the child structure and parent links intact.
//
// # Warnings
//
// Recoverable anomalies — overwriting a registration, overwriting a child
// key, looking up a missing child — are reported through an injectable
// warning sink. The default sink is nil and inert; development builds wire a
// logger:
//
//	b.SetWarner(logging.BoxWarner(logger))
//
// # Service providers
//
//	type AppServiceProvider struct{ box.BaseProvider }
//
//	func (p *AppServiceProvider) Register(b *box.Box) {
//	    box.RegisterWith(b, "", box.Transient, func(r *box.Box) *Mailer {
//	        return NewMailer(box.Resolve[*config.Config](r, ""))
//	    })
//	}
//
//	registry := box.NewProviderRegistry(b)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers declare the keys they provide and are only registered
// when one of those keys is first resolved.
//
// # Thread safety
//
// The registration and child maps are guarded by a mutex and Permanent
// memoization is check-and-set, so a Box may be shared across goroutines.
// Factories themselves run outside the box lock.
package box
