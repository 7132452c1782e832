package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/router"
)

// maxRedirects bounds the redirect chain of one navigation.
const maxRedirects = 5

// ErrPageNotFound is returned for paths outside the route table.
var ErrPageNotFound = errors.New("page not found")

// Open navigates to target, following guard redirects, and renders the page
// it lands on.
func (a *App) Open(ctx context.Context, target string) error {
	for hop := 0; hop <= maxRedirects; hop++ {
		d := a.guard.Check(ctx, target)
		switch d.Outcome {
		case router.NotFound:
			return fmt.Errorf("%w: %s", ErrPageNotFound, target)

		case router.Redirect:
			a.logger.Debug(ctx, "navigation redirected", "from", target, "to", d.Location)
			target = d.Location

		case router.Allow:
			u, _ := url.Parse(target)
			a.location = u.Path
			return a.render(ctx, d, u.Query())
		}
	}
	return fmt.Errorf("too many redirects opening %s", target)
}

func (a *App) render(ctx context.Context, d router.Decision, q url.Values) error {
	switch d.Route {
	case router.Home:
		return a.homePage()
	case router.Login:
		return a.loginPage(ctx, q.Get(router.RedirectQueryName))
	case router.Cadastro:
		return a.Register(ctx)
	case router.Dashboard:
		return a.dashboardPage(ctx, q)
	case router.Perfil:
		if err := a.WhoAmI(ctx); err != nil {
			return err
		}
		return a.Details(ctx)
	case router.Map:
		fmt.Fprintln(a.out, "The map is not rendered in the terminal. Use 'open /dashboard' to list ocorrências.")
		return nil
	case router.CriarOcorrencia:
		fmt.Fprintln(a.out, "New ocorrência form. Reports are filed through the web application.")
		return nil
	case router.EditarOcorrencia:
		fmt.Fprintf(a.out, "Editing ocorrência %s. Reports are edited through the web application.\n", d.Vars["id"])
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrPageNotFound, d.Route)
	}
}

func (a *App) homePage() error {
	fmt.Fprintln(a.out, "SMRC - Sistema de Controle de Recursos Costeiros")
	fmt.Fprintln(a.out, "Pages:")
	for _, r := range a.guard.Routes() {
		note := ""
		if r.RequiresAuth {
			note = " (login required)"
		}
		fmt.Fprintf(a.out, "  %s%s\n", r.Template, note)
	}
	return nil
}

// loginPage logs in and then continues to redirect, if one was carried.
func (a *App) loginPage(ctx context.Context, redirect string) error {
	if !a.isLoggedIn(ctx) {
		if err := a.Login(ctx); err != nil {
			return err
		}
	}
	if redirect == "" || redirect == router.LoginPath {
		return nil
	}
	return a.Open(ctx, redirect)
}

// dashboardPage lists one page of ocorrências. The query may carry
// "page" and "limit".
func (a *App) dashboardPage(ctx context.Context, q url.Values) error {
	page := atoiOr(q.Get("page"), 1)
	limit := atoiOr(q.Get("limit"), client.DefaultPageSize)

	res, err := a.ocorrencias.List(ctx, page, limit)
	if err != nil {
		return err
	}

	scope := "Your ocorrências"
	if a.store.IsAuthority() {
		scope = "All ocorrências"
	}
	fmt.Fprintf(a.out, "%s (page %d)\n", scope, page)
	if len(res.Items) == 0 {
		fmt.Fprintln(a.out, "  none")
		return nil
	}
	for _, o := range res.Items {
		fmt.Fprintf(a.out, "  %s  %-12s %s\n", o.ID, o.Status, o.Title)
	}
	if res.Total > 0 {
		fmt.Fprintf(a.out, "%d of %d\n", len(res.Items), res.Total)
	}
	return nil
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
