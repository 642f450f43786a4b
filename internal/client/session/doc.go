// Package session holds the authentication state of the CLI: the current
// bearer token and the profile of the signed-in user.
//
// A Session is constructed explicitly with its collaborators and has an
// explicit lifecycle: Open restores a stored token at startup, Close
// disposes it. Login and Logout are the only writers of the token. The
// token is readable immediately after Login returns, whether or not the
// profile fetch that follows succeeded.
//
// Tokens are kept either in a DurableStore (the local database, surviving
// restarts) or in a MemoryStore (the process lifetime), picked per login.
package session
