package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	opened []string
	err    error
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Open(_ context.Context, target string) error {
	f.calls = append(f.calls, "open")
	f.opened = append(f.opened, target)
	return f.err
}
func (f *fakeExec) Groups(context.Context) error  { f.calls = append(f.calls, "groups"); return nil }
func (f *fakeExec) Details(context.Context) error { f.calls = append(f.calls, "details"); return nil }
func (f *fakeExec) EditDetails(context.Context) error {
	f.calls = append(f.calls, "edit-details")
	return nil
}
func (f *fakeExec) Accounts(context.Context) error { f.calls = append(f.calls, "accounts"); return nil }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = toString(v)
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return ""
	}
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"whoami",
		"open /dashboard",
		"o /perfil",
		"groups",
		"details",
		"edit-details",
		"accounts",
		"logout",
		"exit",
		"register",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "/" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login", "whoami", "open", "open", "groups", "details", "edit-details", "accounts", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"/dashboard", "/perfil"}, exec.opened)
}

func TestRunREPL_UsageUnknownAndErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("page not found: /x")}
	input := strings.NewReader("open\nfoobar\nopen /x\n\nquit\n")
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"open"}, exec.calls)
	assert.Contains(t, *out, "Usage: open <path>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Error: page not found: /x")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\nlogin\nhelp\n")))

	var helps []string
	for _, l := range *out {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.Contains(t, helps[0], "register")
		assert.Contains(t, helps[1], "logout")
	}
}
