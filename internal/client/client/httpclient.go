package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/common"
	"github.com/dmitrijs2005/menta/internal/logging"
	"github.com/dmitrijs2005/menta/internal/netx"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const maxErrorBody = 64 << 10

// TokenFunc returns the bearer token to send, or "" when there is none.
type TokenFunc func() string

// sessionTokenSource reads the current token on every request so a login or
// logout takes effect without rebuilding the client.
type sessionTokenSource struct {
	token TokenFunc
}

func (s sessionTokenSource) Token() (*oauth2.Token, error) {
	t := s.token()
	if t == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: t, TokenType: "Bearer"}, nil
}

type HTTPClient struct {
	baseURL *url.URL
	public  *http.Client
	authed  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  logging.Logger
}

// NewHTTPClient builds a REST client for the API at baseURL. A rateLimit of
// zero disables client-side throttling; a zero timeout leaves requests bound
// only by their context.
func NewHTTPClient(baseURL string, token TokenFunc, timeout time.Duration, rateLimit float64, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	limit := rate.Inf
	burst := 1
	if rateLimit > 0 {
		limit = rate.Limit(rateLimit)
		burst = max(1, int(rateLimit))
	}

	if logger == nil {
		logger = logging.Nop()
	}

	return &HTTPClient{
		baseURL: u,
		public:  &http.Client{},
		authed: &http.Client{Transport: &oauth2.Transport{
			Source: sessionTokenSource{token: token},
			Base:   http.DefaultTransport,
		}},
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
		logger:  logger.With("component", "api"),
	}, nil
}

type request struct {
	auth        bool
	method      string
	path        string
	body        io.Reader
	contentType string
}

func jsonRequest(auth bool, method, path string, in any) (request, error) {
	r := request{auth: auth, method: method, path: path}
	if in == nil {
		return r, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return r, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	r.body = bytes.NewReader(b)
	r.contentType = "application/json"
	return r, nil
}

func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL.String()+r.path, r.body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("User-Agent", common.UserAgent)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	hc := c.public
	if r.auth {
		hc = c.authed
	}

	resp, err := hc.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, r, requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := mapError(resp)
		c.logger.Debug(ctx, "api call rejected",
			"method", r.method, "path", r.path, "request_id", requestID,
			"status", apiErr.Status, "detail", apiErr.Detail)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// mapTransportError classifies failures where no response was received.
// Caller cancellation is passed through untouched so views can drop it.
func (c *HTTPClient) mapTransportError(ctx context.Context, r request, requestID string, err error) error {
	switch {
	case errors.Is(err, ErrNoToken):
		return fmt.Errorf("%w: %w", ErrUnauthorized, ErrNoToken)
	case errors.Is(err, context.Canceled):
		return err
	}

	c.logger.Warn(ctx, "api unreachable",
		"method", r.method, "path", r.path, "request_id", requestID, "error", err)
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// mapError turns a non-2xx response into an *APIError.
func mapError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := parseDetail(body)

	e := &APIError{Status: resp.StatusCode, Detail: detail}
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		e.Err = ErrUnauthorized
	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		e.Err = ErrUnavailable
	case resp.StatusCode >= 500 && detail == "":
		e.Err = ErrUnavailable
	case detail == EmailTakenDetail:
		e.Err = ErrEmailTaken
	default:
		e.Err = ErrRejected
	}
	return e
}

// parseDetail extracts the "detail" member of an error body. It is either a
// string or a list of validation errors carrying "msg".
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterRequest) (*models.UserProfile, error) {
	r, err := jsonRequest(false, http.MethodPost, "/register", in)
	if err != nil {
		return nil, err
	}
	var out models.UserProfile
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CheckEmail(ctx context.Context, email string) error {
	r, err := jsonRequest(false, http.MethodPost, "/check-email", map[string]string{"email": email})
	if err != nil {
		return err
	}
	return c.do(ctx, r, nil)
}

// Token exchanges credentials for a bearer token. The API expects an OAuth2
// password-grant form where the email is sent as username.
func (c *HTTPClient) Token(ctx context.Context, email string, password []byte) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", string(password))

	r := request{
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}

	var out models.Token
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, request{auth: true, method: http.MethodGet, path: "/users/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	var out models.UserProfile
	r := request{auth: true, method: http.MethodGet, path: "/users/" + url.PathEscape(id)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	var out []models.UserProfile
	if err := c.do(ctx, request{auth: true, method: http.MethodGet, path: "/users"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, fields map[string]string) error {
	body, contentType, err := netx.Multipart(fields, nil)
	if err != nil {
		return err
	}
	r := request{
		auth:        true,
		method:      http.MethodPut,
		path:        "/users/" + url.PathEscape(id),
		body:        body,
		contentType: contentType,
	}
	return c.do(ctx, r, nil)
}

// UploadImages uploads files and returns their reference paths in order.
func (c *HTTPClient) UploadImages(ctx context.Context, files []models.Upload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	parts := make([]netx.FilePart, 0, len(files))
	for _, f := range files {
		parts = append(parts, netx.FilePart{Field: "files", Name: f.Name, Data: f.Data})
	}

	body, contentType, err := netx.Multipart(nil, parts)
	if err != nil {
		return nil, err
	}
	r := request{auth: true, method: http.MethodPost, path: "/upload-images", body: body, contentType: contentType}

	var out []string
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var out []models.Activity
	if err := c.do(ctx, request{auth: true, method: http.MethodGet, path: "/activities"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListUserActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	var out []models.Activity
	r := request{auth: true, method: http.MethodGet, path: "/activities/user/" + url.PathEscape(userID)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateActivity(ctx context.Context, a models.NewActivity) (*models.Activity, error) {
	r, err := jsonRequest(true, http.MethodPost, "/activities", a)
	if err != nil {
		return nil, err
	}
	var out models.Activity
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, activityID string, text string) (*models.Comment, error) {
	r, err := jsonRequest(true, http.MethodPost, "/activities/"+url.PathEscape(activityID)+"/comments", models.NewComment{Text: text})
	if err != nil {
		return nil, err
	}
	var out models.Comment
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) LikeActivity(ctx context.Context, activityID string) error {
	r := request{auth: true, method: http.MethodPost, path: "/activities/" + url.PathEscape(activityID) + "/like"}
	return c.do(ctx, r, nil)
}

func (c *HTTPClient) Progress(ctx context.Context, userID string) ([]models.ProgressEntry, error) {
	var out []models.ProgressEntry
	r := request{auth: true, method: http.MethodGet, path: "/progress/" + url.PathEscape(userID)}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type followRequest struct {
	TargetUserID string `json:"target_user_id"`
}

func (c *HTTPClient) Follow(ctx context.Context, targetUserID string) error {
	r, err := jsonRequest(true, http.MethodPost, "/follow", followRequest{TargetUserID: targetUserID})
	if err != nil {
		return err
	}
	return c.do(ctx, r, nil)
}

func (c *HTTPClient) Unfollow(ctx context.Context, targetUserID string) error {
	r, err := jsonRequest(true, http.MethodPost, "/unfollow", followRequest{TargetUserID: targetUserID})
	if err != nil {
		return err
	}
	return c.do(ctx, r, nil)
}

func (c *HTTPClient) StudySpots(ctx context.Context, q models.SpotQuery) ([]models.StudySpot, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	r, err := jsonRequest(false, http.MethodPost, "/api/study_spots", q)
	if err != nil {
		return nil, err
	}
	var out models.StudySpotsResponse
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out.Elements, nil
}
