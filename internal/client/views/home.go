package views

// HomeView is the landing screen.
type HomeView struct {
	auth Auth
}

func NewHomeView(a Auth) *HomeView { return &HomeView{auth: a} }

func (h *HomeView) Title() string { return "Welcome to Menta" }

// Next suggests where to go from the landing screen.
func (h *HomeView) Next() []Route {
	if h.auth.IsAuthenticated() {
		return []Route{RouteFeed, RouteProfile}
	}
	return []Route{RouteSignup, RouteLogin}
}
