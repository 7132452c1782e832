// Package cli provides the interactive SMRC command-line client.
//
// It wires configuration, the local session store, the REST client, the
// application services and the navigation guard behind a small REPL. The
// persisted session is restored at start, so a user who logged in before
// stays logged in until "logout".
//
// Pages of the web application are reached with "open <path>". Every
// transition goes through the navigation guard: protected pages send
// anonymous users to /login (and back afterwards), and incident forms are
// closed to authority profiles, who land on /dashboard instead.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
