package views

// Link is a navigation entry.
type Link struct {
	Label string
	Route Route
	// Action is set for entries that are commands rather than routes.
	Action string
}

// ActionLogout is the Action of the logout entry.
const ActionLogout = "logout"

// FooterColumn is one titled group of footer entries.
type FooterColumn struct {
	Title   string
	Entries []string
}

// ChromeView is the navigation bar and footer shown around every screen.
type ChromeView struct {
	auth Auth
}

func NewChromeView(a Auth) *ChromeView { return &ChromeView{auth: a} }

func (c *ChromeView) Brand() string { return "Menta" }

// Nav lists the links for the current session state.
func (c *ChromeView) Nav() []Link {
	if !c.auth.IsAuthenticated() {
		return []Link{
			{Label: "Home", Route: RouteHome},
			{Label: "Sign Up", Route: RouteSignup},
			{Label: "Login", Route: RouteLogin},
		}
	}
	return []Link{
		{Label: "Feed", Route: RouteFeed},
		{Label: "Profile", Route: RouteProfile},
		{Label: "Upload", Route: RouteUpload},
		{Label: "Map", Route: RouteMap},
		{Label: "Clubs", Route: RouteClubs},
		{Label: "Settings", Route: RouteSettings},
		{Label: "Logout", Action: ActionLogout},
	}
}

// Greeting names the signed-in user, if known.
func (c *ChromeView) Greeting() string {
	if u := c.auth.User(); u != nil && u.FullName() != "" {
		return "Hi, " + u.FullName()
	}
	if c.auth.IsAuthenticated() {
		return "Signed in"
	}
	return "Not signed in"
}

func (c *ChromeView) Footer() []FooterColumn {
	return []FooterColumn{
		{Title: "About", Entries: []string{"Features", "Mobile"}},
		{Title: "Explore", Entries: []string{"Clubs"}},
		{Title: "Follow", Entries: []string{"Facebook", "Twitter", "Instagram", "YouTube"}},
		{Title: "Help", Entries: []string{"Menta Support"}},
	}
}

func (c *ChromeView) Copyright() string { return "© 2024 Menta" }
