package views

import (
	"fmt"
	"strings"
)

// Route names a screen.
type Route int

const (
	RouteHome Route = iota
	RouteSignup
	RouteLogin
	RouteFeed
	RouteProfile
	RouteSettings
	RouteUpload
	RouteMap
	RouteClubs
)

type routeInfo struct {
	path      string
	title     string
	protected bool
}

var routes = [...]routeInfo{
	RouteHome:     {"/", "Home", false},
	RouteSignup:   {"/signup", "Sign Up", false},
	RouteLogin:    {"/login", "Login", false},
	RouteFeed:     {"/feed", "Feed", true},
	RouteProfile:  {"/profile", "Profile", true},
	RouteSettings: {"/settings", "Settings", true},
	RouteUpload:   {"/upload", "Upload", true},
	RouteMap:      {"/map", "Map", true},
	RouteClubs:    {"/clubs", "Clubs", true},
}

// Routes lists every route in table order.
func Routes() []Route {
	out := make([]Route, len(routes))
	for i := range routes {
		out[i] = Route(i)
	}
	return out
}

func (r Route) valid() bool { return r >= 0 && int(r) < len(routes) }

func (r Route) Path() string {
	if !r.valid() {
		return routes[RouteHome].path
	}
	return routes[r].path
}

func (r Route) String() string {
	if !r.valid() {
		return fmt.Sprintf("Route(%d)", int(r))
	}
	return routes[r].title
}

// Protected reports whether the route needs an authenticated session.
func (r Route) Protected() bool {
	return r.valid() && routes[r].protected
}

// Resolve maps a path to its route. Matching ignores case and a trailing
// slash; unknown paths resolve to RouteHome.
func Resolve(path string) Route {
	p := strings.ToLower(strings.TrimSpace(path))
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for i, info := range routes {
		if info.path == p {
			return Route(i)
		}
	}
	return RouteHome
}

// Router tracks the current route and gates protected ones.
type Router struct {
	auth    Auth
	current Route
}

func NewRouter(a Auth) *Router {
	return &Router{auth: a, current: RouteHome}
}

func (r *Router) Current() Route { return r.current }

// Navigate moves to the route for path. A protected route without a
// session lands on RouteLogin and returns ErrRedirectLogin.
func (r *Router) Navigate(path string) (Route, error) {
	return r.Go(Resolve(path))
}

func (r *Router) Go(route Route) (Route, error) {
	if !route.valid() {
		route = RouteHome
	}
	if route.Protected() {
		if err := guard(r.auth); err != nil {
			r.current = RouteLogin
			return RouteLogin, err
		}
	}
	r.current = route
	return route, nil
}
