package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/services"
	"github.com/smrc/smrc-cli/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// ErrLoginFailed is returned by Login after the reason was shown to the user.
var ErrLoginFailed = errors.New("login failed")

// Register prompts for the account fields, lets the user pick an account
// group and creates the account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	var req client.CreateAccountRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.CPF, err = getSimpleText(a.reader, "Enter CPF", a.out); err != nil {
		return err
	}
	if req.Birthday, err = getSimpleText(a.reader, "Enter birthday (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if req.AccountGroupID, err = a.chooseGroup(ctx); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	acc, err := a.auth.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. You can log in now.\n", acc.ID)
	return nil
}

// chooseGroup lists the account groups and accepts either a list number or a
// group UUID.
func (a *App) chooseGroup(ctx context.Context) (string, error) {
	groups, err := a.accounts.Groups(ctx)
	if err != nil {
		return "", err
	}
	for i, g := range groups {
		fmt.Fprintf(a.out, "%d) %s  %s\n", i+1, g.Name, g.Description)
	}

	answer, err := getSimpleText(a.reader, "Choose account group (number or id)", a.out)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(groups) {
			return "", fmt.Errorf("no account group %d", n)
		}
		return groups[n-1].ID, nil
	}
	id, err := uuid.Parse(answer)
	if err != nil {
		return "", fmt.Errorf("invalid account group %q: %w", answer, err)
	}
	return id.String(), nil
}

// Login prompts for credentials and authenticates. The last email used is
// offered as the default. On failure the reason is printed and
// ErrLoginFailed returned.
func (a *App) Login(ctx context.Context) error {
	last, err := a.store.LastEmail(ctx)
	if err != nil {
		a.logger.Warn(ctx, "last email lookup failed", "error", err)
	}

	email, err := getTextWithDefault(a.reader, "Enter email", last, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, loginFailureMessage(err))
		return ErrLoginFailed
	}

	p, _ := a.store.Profile()
	fmt.Fprintf(a.out, "Login successful. Welcome, %s!\n", p.Name)
	return nil
}

func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, services.ErrMissingToken):
		return "The server answered with an unusable token."
	default:
		return "Login unsuccessful."
	}
}

// Logout drops the local session and returns to the home page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.location = "/"
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the profile of the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	p, ok := a.auth.CurrentUser(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "ID:         %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:       %s\n", p.Name)
	fmt.Fprintf(a.out, "Email:      %s\n", p.Email)
	fmt.Fprintf(a.out, "Account ID: %s\n", p.AccountID)
	if p.AccountGroup != nil {
		fmt.Fprintf(a.out, "Group:      %s\n", p.AccountGroup.Name)
	}
	fmt.Fprintf(a.out, "Role:       %s\n", a.store.Role())
	if rec, ok := a.store.Record(); ok {
		fmt.Fprintf(a.out, "Since:      %s\n", rec.EstablishedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
