package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, target string) error
	Groups(ctx context.Context) error
	Details(ctx context.Context) error
	EditDetails(ctx context.Context) error
	Accounts(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the SMRC CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - open <path>      navigate to a page
//	  - groups           list account groups
//	  - exit | quit      leave the program
//
//	Logged in, additionally:
//	  - whoami           show the session profile
//	  - details          show address and phone
//	  - edit-details     change address and phone
//	  - accounts         list accounts (authority only)
//	  - logout           log out
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("smrc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: open <path>, whoami, details, edit-details, accounts, groups, logout, exit")
			} else {
				printlnFn("Available commands: register, login, open <path>, groups, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "open", "o":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "groups":
			err = a.Groups(ctx)

		case "details":
			err = a.Details(ctx)

		case "edit-details":
			err = a.EditDetails(ctx)

		case "accounts":
			err = a.Accounts(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
