// Package views holds the headless view models the CLI renders: one per
// screen of the menta client.
//
// Every server read goes through a Loader, which moves Idle, Loading and
// then Loaded or Failed, ties the request to the view's lifetime and drops
// responses that arrive after the view was closed or a newer load started.
// Protected views check the session before issuing any request and return
// ErrRedirectLogin when there is no token.
package views
