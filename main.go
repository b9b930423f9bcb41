package main

import (
	"net/http"
	"time"

	"github.com/km-arc/go-box/framework/app"
	"github.com/km-arc/go-box/framework/box"
	gohttp "github.com/km-arc/go-box/http"
	"github.com/km-arc/go-box/routing"
)

// Greeter says hello. The root box carries the default; the api child box
// overrides it locally.
type Greeter struct {
	Greeting string
}

// Stamp is transient: every resolve produces a fresh one.
type Stamp struct {
	At time.Time
}

func main() {
	application := app.New() // loads .env automatically

	// ── Root registrations ────────────────────────────────────────────────

	box.Register(application.Box, "", box.Permanent, func() *Greeter {
		return &Greeter{Greeting: "Hello from the root box"}
	})
	box.Register(application.Box, "", box.Transient, func() *Stamp {
		return &Stamp{At: time.Now()}
	})

	// ── API child box: snapshot of the root, with one local override ──────

	api := application.AddChildBox("api")
	box.Register(api, "", box.Permanent, func() *Greeter {
		return &Greeter{Greeting: "Hello from the api box"}
	})

	// Registered on the root AFTER the spawn: the api box still reaches it
	// through parent fallback.
	box.Register(application.Box, "uptime", box.Permanent, func() *Stamp {
		return &Stamp{At: time.Now()}
	})

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		g := box.Resolve[*Greeter](application.Box, "")
		stamp := box.Resolve[*Stamp](application.Box, "")
		res.Success(map[string]any{"message": g.Greeting, "at": stamp.At})
	})

	r.Prefix("/api", func(apiRoutes *routing.Router) {
		apiRoutes.Get("/greet", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			g := box.Resolve[*Greeter](api, "")
			res.Success(map[string]any{"message": g.Greeting})
		})

		apiRoutes.Get("/uptime", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			started := box.Resolve[*Stamp](api, "uptime") // parent fallback
			res.Success(map[string]any{"since": started.At})
		})
	})

	r.Get("/services", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success(map[string]any{
			"root": application.Keys(),
			"api":  api.Keys(),
		})
	})

	application.Run()
}
