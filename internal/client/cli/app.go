package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/config"
	"github.com/dmitrijs2005/menta/internal/client/services"
	"github.com/dmitrijs2005/menta/internal/client/session"
	"github.com/dmitrijs2005/menta/internal/client/views"
	"github.com/dmitrijs2005/menta/internal/logging"
)

// App is the interactive client. It owns the session and the views that
// outlive a single command.
type App struct {
	session  *session.Session
	auth     services.AuthService
	feed     services.FeedService
	profiles services.ProfileService
	progress services.ProgressService
	spots    services.SpotService
	prefs    views.PrefsStore

	router *views.Router
	chrome *views.ChromeView
	clubs  *views.ClubsView

	// Views kept mounted between commands so ids can be referenced later.
	lastFeed    *views.FeedView
	lastProfile *views.ProfileView

	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	closers []func() error
}

// Deps are the collaborators of an App.
type Deps struct {
	Client  client.Client
	Session *session.Session
	Prefs   views.PrefsStore
	Logger  logging.Logger
	In      io.Reader
	Out     io.Writer
}

func New(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	return &App{
		session:  d.Session,
		auth:     services.NewAuthService(d.Client, d.Session),
		feed:     services.NewFeedService(d.Client),
		profiles: services.NewProfileService(d.Client),
		progress: services.NewProgressService(d.Client),
		spots:    services.NewSpotService(d.Client),
		prefs:    d.Prefs,
		router:   views.NewRouter(d.Session),
		chrome:   views.NewChromeView(d.Session),
		clubs:    views.NewClubsView(d.Session),
		logger:   d.Logger,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		now:      time.Now,
	}
}

// NewApp builds an App from configuration: it opens the local database,
// the API client and the session.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	var sess *session.Session
	api, err := client.NewHTTPClient(cfg.APIBaseURL, func() string { return sess.Token() },
		cfg.RequestTimeout, cfg.RateLimit, logger)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	sess = session.New(api, session.NewDurableStore(repos.Metadata), session.NewMemoryStore(), logger,
		session.Options{LogoutOnUnauthorized: cfg.LogoutOnUnauthorized})

	a := New(Deps{
		Client:  api,
		Session: sess,
		Prefs:   repos.Metadata,
		Logger:  logger,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	a.closers = append(a.closers, sess.Close, repos.Close)
	return a, nil
}

// Run restores a remembered session and runs the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Open(ctx); err != nil {
		a.logger.Error(ctx, "failed to restore session", "error", err)
	}

	a.println("Welcome to Menta (type 'help' for commands)")
	_ = a.Home(ctx, nil)

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close unmounts views and releases the session and database.
func (a *App) Close() error {
	a.setFeed(nil)
	a.setProfile(nil)

	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	switch {
	case snap.User != nil && snap.User.FullName() != "":
		return fmt.Sprintf("(%s)", snap.User.FullName())
	case snap.Status == session.Anonymous:
		return ""
	default:
		return fmt.Sprintf("(%s)", snap.Status)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) setFeed(v *views.FeedView) {
	if a.lastFeed != nil {
		a.lastFeed.Close()
	}
	a.lastFeed = v
}

func (a *App) setProfile(v *views.ProfileView) {
	if a.lastProfile != nil {
		a.lastProfile.Close()
	}
	a.lastProfile = v
}

// enter moves the router to route, reporting a redirect to login.
func (a *App) enter(ctx context.Context, route views.Route) error {
	if _, err := a.router.Go(route); err != nil {
		return a.fail(ctx, route.String(), err)
	}
	return nil
}

// fail prints a user-facing message for err and logs it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, views.ErrRedirectLogin):
		_, _ = a.router.Go(views.RouteLogin)
		a.println("Please log in first: type 'login'.")
	case errors.Is(err, client.ErrUnavailable):
		a.println(a.message(err))
	case errors.Is(err, context.Canceled), errors.Is(err, views.ErrDiscarded):
		return err
	default:
		a.println("Error:", a.message(err))
	}
	a.logger.Debug(ctx, "command failed", "op", op, "error", err)
	return err
}

// message is the user-facing text for err.
func (a *App) message(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "Server unavailable, please try again later."
	}
	if msg := client.Detail(err); msg != "" {
		return msg
	}
	return err.Error()
}

var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getYesNo      = GetYesNo
	readFile      = os.ReadFile
)

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}
