// Package http provides thin JSON response helpers for handlers built on the
// go-box routing layer.
//
//	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
//	    res := gohttp.NewResponse(w)
//	    res.Success(map[string]any{"id": routing.Param(req, "id")})
//	})
package http
