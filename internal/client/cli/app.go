package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/config"
	"github.com/smrc/smrc-cli/internal/client/router"
	"github.com/smrc/smrc-cli/internal/client/services"
	"github.com/smrc/smrc-cli/internal/client/session"
	"github.com/smrc/smrc-cli/internal/client/storage"
	"github.com/smrc/smrc-cli/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *session.Store
	auth        services.AuthService
	accounts    services.AccountService
	ocorrencias services.OcorrenciaService
	guard       *router.Guard
	closer      io.Closer
	reader      *bufio.Reader
	out         io.Writer

	// location is the path of the page currently shown.
	location string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	repo, closer, err := storage.Open(ctx, c)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "error", err)
		return nil, err
	}

	roles, err := session.NewRoleResolver(c.AuthorityGroupIDs)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	store := session.NewStore(repo, roles, logger)
	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store.Token)

	a, err := newApp(c, logger, store, api, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	a.closer = closer
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, store *session.Store, api client.Client, r *bufio.Reader, w io.Writer) (*App, error) {
	auth := services.NewAuthService(api, store, logger)
	guard, err := router.NewGuard(router.DefaultRoutes, auth, store, logger)
	if err != nil {
		return nil, err
	}
	return &App{
		config:      c,
		logger:      logger,
		store:       store,
		auth:        auth,
		accounts:    services.NewAccountService(api, store),
		ocorrencias: services.NewOcorrenciaService(api, store),
		guard:       guard,
		reader:      r,
		out:         w,
		location:    "/",
	}, nil
}

// Run restores the persisted session and serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	if a.closer != nil {
		defer a.closer.Close()
	}

	if err := a.auth.Restore(ctx); err != nil {
		a.logger.Error(ctx, "session restore failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Welcome to SMRC CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}

// status renders the prompt prefix: current page and, when logged in, the
// user's email and role.
func (a *App) status() string {
	p, ok := a.store.Profile()
	if !ok {
		return a.location
	}
	return fmt.Sprintf("%s (%s %s)", a.location, p.Email, a.store.Role())
}
