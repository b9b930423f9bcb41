package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-box/framework/box"
	"github.com/km-arc/go-box/framework/config"
	"github.com/km-arc/go-box/framework/logging"
	"github.com/km-arc/go-box/framework/providers"
	"github.com/km-arc/go-box/routing"
)

// Application is the top-level application kernel. It embeds the root Box so
// user code can register and resolve on it directly:
//
//	application := app.New()
//	box.Register(application.Box, "", box.Permanent, newMailer)
//	application.Run()
type Application struct {
	*box.Box
	Providers *box.ProviderRegistry
}

// New creates and bootstraps the application: a root box, the framework core
// providers (config, logging, routing — in that order, since the logging
// provider resolves config eagerly), and, in debug mode, a logger-backed
// warning sink on the root box.
func New(envFiles ...string) *Application {
	root := box.New()
	registry := box.NewProviderRegistry(root)

	a := &Application{
		Box:       root,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	if a.Config().App.Debug {
		root.SetWarner(logging.BoxWarner(a.Logger()))
	}

	return a
}

// RegisterProvider adds a ServiceProvider to the application.
func (a *Application) RegisterProvider(provider box.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the root box.
func (a *Application) Config() *config.Config {
	return box.Resolve[*config.Config](a.Box, "")
}

// Logger resolves the application *logrus.Logger from the root box.
func (a *Application) Logger() *logrus.Logger {
	return box.Resolve[*logrus.Logger](a.Box, "")
}

// Router resolves *routing.Router from the root box.
func (a *Application) Router() *routing.Router {
	return box.Resolve[*routing.Router](a.Box, "")
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	logger := a.Logger()

	addr := ":" + cfg.App.Port
	logger.Infof("%s listening on %s [%s]", cfg.App.Name, addr, cfg.App.Env)
	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
