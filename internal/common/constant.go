// Package common contains constants and small helpers shared across the
// menta client packages.
package common

// RequestIDHeaderName carries a per-call identifier on outbound API requests.
const RequestIDHeaderName = "X-Request-ID"

// TokenMetadataKey is the local metadata key under which a remembered
// bearer token is stored.
const TokenMetadataKey = "token"

// UserAgent identifies the CLI to the API.
const UserAgent = "menta-cli"
