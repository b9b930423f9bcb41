package providers

import (
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-box/framework/box"
	"github.com/km-arc/go-box/framework/config"
	"github.com/km-arc/go-box/framework/logging"
	"github.com/km-arc/go-box/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// registers it permanently. The zero-argument factory keeps the load lazy:
// nothing touches the filesystem until the first resolve.
//
// Registered services:
//   - *config.Config (no qualifier)
type ConfigServiceProvider struct {
	box.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(b *box.Box) {
	envFiles := p.EnvFiles
	box.Register(b, "", box.Permanent, func() *config.Config {
		return config.Load(envFiles...)
	})
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider registers the application logger.
//
// It uses the resolver-accepting permanent path, which produces EAGERLY at
// registration time — so this provider must be registered after
// ConfigServiceProvider.
//
// Registered services:
//   - *logrus.Logger (no qualifier)
type LoggingServiceProvider struct {
	box.BaseProvider
}

func (p *LoggingServiceProvider) Register(b *box.Box) {
	box.RegisterWith(b, "", box.Permanent, func(r *box.Box) *logrus.Logger {
		return logging.New(box.Resolve[*config.Config](r, ""))
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Registered services:
//   - *routing.Router (no qualifier)
type RoutingServiceProvider struct {
	box.BaseProvider
}

func (p *RoutingServiceProvider) Register(b *box.Box) {
	box.Register(b, "", box.Permanent, func() *routing.Router {
		return routing.New()
	})
}
