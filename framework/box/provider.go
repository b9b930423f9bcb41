package box

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations so an application can wire a
// whole subsystem at once.
//
// Every provider must implement at minimum Register().
// Boot() is called after ALL providers have been registered, making it safe
// to resolve other registrations inside Boot().
//
//	type MailServiceProvider struct{ box.BaseProvider }
//
//	func (p *MailServiceProvider) Register(b *box.Box) {
//	    box.RegisterWith(b, "", box.Transient, func(r *box.Box) *Mailer {
//	        return NewMailer(box.Resolve[*config.Config](r, ""))
//	    })
//	}
//
//	func (p *MailServiceProvider) Boot(b *box.Box) {
//	    box.Resolve[*logrus.Logger](b, "").Info("mailer ready")
//	}
type ServiceProvider interface {
	// Register binds services into the box.
	// Do NOT resolve other registrations here — use Boot() for that.
	Register(b *Box)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any registration here.
	Boot(b *Box)

	// Provides returns the derived keys this provider registers. Used for
	// deferred (lazy) provider loading. Return nil if the provider is
	// always eager.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() keys is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations of
// Boot(), Provides(), and IsDeferred(). Embed it in your provider and only
// override what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Box)        {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders
// against a single box, including deferred (lazy) providers.
type ProviderRegistry struct {
	box        *Box
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // derived key → provider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to b.
func NewProviderRegistry(b *Box) *ProviderRegistry {
	return &ProviderRegistry{
		box:        b,
		deferred:   make(map[string]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless deferred).
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, key := range provider.Provides() {
			r.deferred[key] = provider
		}
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.box)
	r.eager = append(r.eager, provider)

	// If already booted, boot this provider immediately
	if r.booted {
		provider.Boot(r.box)
	}
}

// interceptDeferred registers a placeholder factory for each deferred key.
// The first resolve triggers the provider's real registration (which replaces
// the placeholder) and, if the registry is already booted, its Boot().
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, key := range provider.Provides() {
		k := key
		r.box.Register(k, Transient, func(b *Box) any {
			if _, pending := r.deferred[k]; pending {
				provider.Register(b)
				for _, provided := range provider.Provides() {
					delete(r.deferred, provided)
				}
				if r.booted {
					provider.Boot(b)
				}
			}
			return b.MustResolve(k)
		})
	}
}

// Boot calls Boot() on all eager providers.
// Must be called after ALL providers have been registered.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.box)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
