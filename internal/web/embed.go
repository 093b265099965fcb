// Package web serves the embedded GraphiQL page next to the GraphQL endpoint.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed graphiql.html
var graphiqlHTML []byte

// GraphiQL returns an http.Handler serving the embedded GraphiQL page.
func GraphiQL() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(graphiqlHTML)
	})
}
