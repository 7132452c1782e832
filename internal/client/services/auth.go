// Package services contains application services for the SMRC client.
// This file defines the authentication gateway: login, logout, registration
// and the authenticated-state queries the navigation guard relies on.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/session"
	"github.com/smrc/smrc-cli/internal/common"
	"github.com/smrc/smrc-cli/internal/logging"
)

// ErrMissingToken is returned when the API accepts the credentials but its
// response carries no token.
var ErrMissingToken = errors.New("login response without token")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and commit the session.
//   - Logout: drop the local session; the API is not contacted.
//   - IsAuthenticated: whether a durable session record exists.
//   - CurrentUser: the profile of the active session.
//   - Register: create a new account on the server.
//   - Restore: load a persisted session at start-up.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (session.Profile, bool)
	Register(ctx context.Context, req client.CreateAccountRequest) (*client.Account, error)
	Restore(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API and the
// session store.
type authService struct {
	client client.Client
	store  *session.Store
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(c client.Client, store *session.Store, logger logging.Logger) AuthService {
	return &authService{client: c, store: store, logger: logger.With("component", "auth")}
}

// Login sends the credentials once. On a 2xx response with a decodable token
// the session is committed and nil returned. Any failure is logged and
// returned; in that case nothing is written to durable storage.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.logger.Error(ctx, "login request failed", "email", email, "error", err)
		return fmt.Errorf("login error: %w", err)
	}
	if resp.Token == "" {
		a.logger.Error(ctx, "login response without token", "email", email)
		return fmt.Errorf("login error: %w", ErrMissingToken)
	}

	if err := a.store.SetFromLogin(ctx, resp.Token, email); err != nil {
		a.logger.Error(ctx, "session commit failed", "email", email, "error", err)
		return fmt.Errorf("session error: %w", err)
	}

	a.logger.Debug(ctx, "login response user", "user", string(resp.User))
	a.logger.Info(ctx, "logged in", "email", email, "role", a.store.Role())
	return nil
}

// Logout clears the local session. It never contacts the server.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a session record is stored. The token's
// validity and expiry are not checked; a storage error counts as
// unauthenticated.
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	ok, err := a.store.Exists(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session lookup failed", "error", err)
		return false
	}
	return ok
}

// CurrentUser returns the active profile from the session store.
func (a *authService) CurrentUser(ctx context.Context) (session.Profile, bool) {
	return a.store.Profile()
}

// Register creates a new account on the server. It does not log in.
func (a *authService) Register(ctx context.Context, req client.CreateAccountRequest) (*client.Account, error) {
	acc, err := a.client.CreateAccount(ctx, req)
	if err != nil {
		a.logger.Error(ctx, "account creation failed", "email", req.Email, "error", err)
		return nil, err
	}
	return acc, nil
}

// Restore loads a persisted session. A corrupt record is discarded so the
// user can log in again.
func (a *authService) Restore(ctx context.Context) error {
	err := a.store.Restore(ctx)
	if errors.Is(err, common.ErrCorruptSession) {
		a.logger.Warn(ctx, "discarding corrupt session", "error", err)
		return a.store.Clear(ctx)
	}
	return err
}
