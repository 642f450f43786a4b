// Package cli is the interactive menta command-line client.
//
// NewApp wires configuration, the local database, the API client, the
// session and the application services. Run restores a remembered session
// and starts a read-eval-print loop whose commands map onto the screens of
// the views package: feed, profile, settings, map, clubs and so on.
//
// Command handlers print their own user-facing messages and return the
// error for logging; a failed command never ends the loop.
package cli
