// Package client is the REST client of the SMRC API.
//
// # Overview
//
// Client is the transport-agnostic contract used by services; HTTPClient
// implements it over net/http with JSON bodies. Authenticated calls carry
// the session token as a bearer credential, read from a TokenSource on every
// request so logins and logouts take effect immediately.
//
// # Error Handling
//
// HTTP failures map to sentinels from internal/common, matched with
// errors.Is: 401/403 → ErrUnauthorized, 404 → ErrNotFound, transport
// failures → ErrUnavailable. Other non-2xx responses return an error that
// carries the status code.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call takes a context and is
// additionally bounded by the timeout given to NewHTTPClient.
package client
