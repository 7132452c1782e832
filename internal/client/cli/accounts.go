package cli

import (
	"context"
	"fmt"

	"github.com/smrc/smrc-cli/internal/client/client"
)

// Groups lists the account groups offered at registration.
func (a *App) Groups(ctx context.Context) error {
	groups, err := a.accounts.Groups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No account groups.")
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "%s  %-20s %s\n", g.ID, g.Name, g.Description)
	}
	return nil
}

// Details prints the logged-in account's address and phone.
func (a *App) Details(ctx context.Context) error {
	d, err := a.accounts.Details(ctx)
	if err != nil {
		return err
	}
	printDetails(a, d)
	return nil
}

// EditDetails prompts for every field, keeping the current value on an empty
// answer, and saves the result.
func (a *App) EditDetails(ctx context.Context) error {
	cur, err := a.accounts.Details(ctx)
	if err != nil {
		return err
	}

	next := *cur
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Street", &next.Street},
		{"City", &next.City},
		{"CEP", &next.CEP},
		{"Phone", &next.Phone},
	}
	for _, f := range fields {
		v, err := getTextWithDefault(a.reader, f.prompt, *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	saved, err := a.accounts.UpdateDetails(ctx, next)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Details saved.")
	printDetails(a, saved)
	return nil
}

// Accounts lists every account. Only authority profiles may call it.
func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return err
	}
	for _, acc := range accounts {
		group := acc.AccountGroupID
		if acc.AccountGroup != nil {
			group = acc.AccountGroup.Name
		}
		fmt.Fprintf(a.out, "%s  %-25s %-30s %s\n", acc.ID, acc.Name, acc.Email, group)
	}
	fmt.Fprintf(a.out, "%d account(s)\n", len(accounts))
	return nil
}

func printDetails(a *App, d *client.AccountDetails) {
	fmt.Fprintf(a.out, "Street: %s\n", d.Street)
	fmt.Fprintf(a.out, "City:   %s\n", d.City)
	fmt.Fprintf(a.out, "CEP:    %s\n", d.CEP)
	fmt.Fprintf(a.out, "Phone:  %s\n", d.Phone)
}
