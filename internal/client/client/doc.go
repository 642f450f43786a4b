// Package client is the API gateway of the menta CLI.
//
// Client describes one method per REST endpoint. HTTPClient implements it
// over net/http: every request carries an X-Request-ID, authenticated calls
// get their bearer header from an oauth2 transport that reads the session's
// current token, and a client-side limiter spaces calls out.
//
// Non-2xx responses become *APIError values whose Err is one of the
// sentinels ErrUnauthorized, ErrEmailTaken, ErrRejected or ErrUnavailable,
// so callers match them with errors.Is. Failures without a response wrap
// ErrUnavailable, except cancellation by the caller, which is returned as is.
//
// InitDatabase bootstraps the local SQLite database that backs the
// remembered session.
package client
