package routes

import "net/http"

// Route binds an HTTP method and path pattern to its handler func.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
