package routes

import "net/http"

// Group nests routes under a shared prefix; children inherit the full
// prefix chain above them.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register wires every route in the given groups onto the mux,
// method-qualified.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
