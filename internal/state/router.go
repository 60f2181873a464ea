package state

import "github.com/bethropolis/jdiff/internal/logger"

// Known routes.
const (
	RouteWelcome = "/"
	RouteCounter = "/counter"
	RouteEditor  = "/editor"
)

// Router tracks the current screen. Only registered paths can be navigated to.
type Router struct {
	routes  []string
	current string
}

// NewRouter registers paths and starts at RouteWelcome.
func NewRouter(paths ...string) *Router {
	r := &Router{current: RouteWelcome}
	r.Register(RouteWelcome)
	for _, p := range paths {
		r.Register(p)
	}
	return r
}

// Register adds a path. Duplicates are ignored.
func (r *Router) Register(path string) {
	if r.Has(path) {
		return
	}
	r.routes = append(r.routes, path)
}

// Has reports whether path is registered.
func (r *Router) Has(path string) bool {
	for _, p := range r.routes {
		if p == path {
			return true
		}
	}
	return false
}

// Navigate switches to path when it is registered and reports whether the route changed.
func (r *Router) Navigate(path string) bool {
	if !r.Has(path) {
		logger.Debugf("Router: ignoring unknown route %q, known routes: %v", path, r.Routes())
		return false
	}
	changed := r.current != path
	r.current = path
	return changed
}

// Current returns the active path.
func (r *Router) Current() string {
	return r.current
}

// Routes returns the registered paths in registration order.
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}
