package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/logging"
)

var (
	ErrEmptyToken       = errors.New("empty token")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrClosed           = errors.New("session closed")
)

// ProfileFetcher loads the profile of the token's owner.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.UserProfile, error)
}

// Status is the observable state of a session.
type Status int

const (
	// Anonymous: no token.
	Anonymous Status = iota
	// Loading: token set, profile fetch in flight.
	Loading
	// Ready: token set, profile known.
	Ready
	// ProfileMissing: token set, but the last profile fetch failed.
	ProfileMissing
)

func (s Status) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case ProfileMissing:
		return "profile missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options tunes how a session reacts to a token the server no longer
// accepts.
type Options struct {
	// LogoutOnUnauthorized logs the session out when a call is rejected as
	// unauthorized or the token's exp claim has passed. Off by default: a
	// rejected token then leaves the session authenticated without a user.
	LogoutOnUnauthorized bool

	// Now is the clock used for exp checks. Defaults to time.Now.
	Now func() time.Time
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	Token  string
	User   *models.UserProfile
	Status Status
}

type Session struct {
	fetcher ProfileFetcher
	durable TokenStore
	memory  TokenStore
	logger  logging.Logger
	opts    Options

	mu      sync.RWMutex
	token   string
	user    *models.UserProfile
	loading bool
	closed  bool
	// gen is bumped by every login and logout so that a profile fetch
	// started under an older token cannot write its result.
	gen uint64
}

func New(fetcher ProfileFetcher, durable, memory TokenStore, logger logging.Logger, opts Options) *Session {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		fetcher: fetcher,
		durable: durable,
		memory:  memory,
		logger:  logger.With("component", "session"),
		opts:    opts,
	}
}

// Open restores a previously stored token, the durable store taking
// precedence, and fetches its profile the same way Login does.
func (s *Session) Open(ctx context.Context) error {
	token, err := s.durable.Load(ctx)
	if err != nil {
		return fmt.Errorf("load durable token: %w", err)
	}
	if token == "" {
		if token, err = s.memory.Load(ctx); err != nil {
			return fmt.Errorf("load session token: %w", err)
		}
	}
	if token == "" {
		s.logger.Debug(ctx, "no stored token")
		return nil
	}

	gen, err := s.setToken(token)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "session restored")
	_ = s.fetchProfile(ctx, gen)
	return nil
}

// Login stores token in the store chosen by p, clears the other one and
// marks the session authenticated before fetching the profile. A failed
// fetch is logged and leaves the session authenticated with no user.
func (s *Session) Login(ctx context.Context, token string, p Persistence) error {
	if token == "" {
		return ErrEmptyToken
	}
	if s.isClosed() {
		return ErrClosed
	}

	keep, drop := s.memory, s.durable
	if p == PersistDurable {
		keep, drop = s.durable, s.memory
	}
	if err := keep.Save(ctx, token); err != nil {
		return fmt.Errorf("save %s token: %w", p, err)
	}
	if err := drop.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear stale token", "store", p, "error", err)
	}

	gen, err := s.setToken(token)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "logged in", "persistence", p.String())

	_ = s.fetchProfile(ctx, gen)
	return nil
}

// Logout clears both stores and the in-memory state. A profile fetch still
// in flight is discarded.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	s.token = ""
	s.user = nil
	s.loading = false
	s.mu.Unlock()

	err := errors.Join(s.durable.Clear(ctx), s.memory.Clear(ctx))
	if err != nil {
		s.logger.Error(ctx, "failed to clear stored token", "error", err)
		return err
	}
	s.logger.Info(ctx, "logged out")
	return nil
}

// Refresh re-fetches the profile of the current token.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.token == "" {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	gen := s.gen
	s.mu.Unlock()

	return s.fetchProfile(ctx, gen)
}

// HandleError applies the unauthorized policy to an error returned by any
// API call. It reports whether the session was logged out.
func (s *Session) HandleError(ctx context.Context, err error) bool {
	if !s.opts.LogoutOnUnauthorized || !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	if !s.IsAuthenticated() {
		return false
	}
	s.logger.Warn(ctx, "token rejected, logging out", "error", err)
	_ = s.Logout(ctx)
	return true
}

// Close discards any in-flight fetch and rejects further logins. Stored
// tokens are left in place for the next Open.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	s.loading = false
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Token: s.token, User: s.user, Status: s.statusLocked()}
}

// Subject is the sub claim of the current token, or "" for opaque tokens.
func (s *Session) Subject() string {
	return subject(s.Token())
}

// RememberedSince reports when the current token was written to the
// durable store. ok is false for session-only logins and for stores that
// do not record the time.
func (s *Session) RememberedSince(ctx context.Context) (at time.Time, ok bool) {
	st, isTimed := s.durable.(interface {
		SavedAt(ctx context.Context) (time.Time, error)
	})
	if !isTimed || s.Token() == "" {
		return time.Time{}, false
	}
	at, err := st.SavedAt(ctx)
	if err != nil {
		if !errors.Is(err, errNotSaved) {
			s.logger.Warn(ctx, "failed to read token timestamp", "error", err)
		}
		return time.Time{}, false
	}
	return at, true
}

func (s *Session) statusLocked() Status {
	switch {
	case s.token == "":
		return Anonymous
	case s.loading:
		return Loading
	case s.user != nil:
		return Ready
	default:
		return ProfileMissing
	}
}

func (s *Session) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Session) setToken(token string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	s.gen++
	s.token = token
	s.user = nil
	s.loading = true
	return s.gen, nil
}

// fetchProfile loads the profile for the token of generation gen. Results
// for an older generation are dropped.
func (s *Session) fetchProfile(ctx context.Context, gen uint64) error {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return nil
	}
	token := s.token
	s.loading = true
	s.mu.Unlock()

	if s.opts.LogoutOnUnauthorized && expired(token, s.opts.Now()) {
		s.logger.Warn(ctx, "stored token expired, logging out")
		_ = s.Logout(ctx)
		return fmt.Errorf("%w: token expired", client.ErrUnauthorized)
	}

	user, err := s.fetcher.Me(ctx)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.logger.Debug(ctx, "discarding stale profile")
		return nil
	}
	s.loading = false
	if err == nil {
		s.user = user
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn(ctx, "failed to fetch profile", "error", err)
		s.HandleError(ctx, err)
		return err
	}
	s.logger.Debug(ctx, "profile fetched", "user_id", user.ID)
	return nil
}
