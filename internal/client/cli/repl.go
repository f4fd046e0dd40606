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
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Filter(ctx context.Context) error
	Map(ctx context.Context) error
	Scan(ctx context.Context, path string) error
	Cancel(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the menumap CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - list           — fetch and show the restaurant directory
//	  - search         — fetch, then filter by text and category
//	  - filter         — narrow the held list by category, no refetch
//	  - map            — fetch and show restaurants ordered by distance
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - signup         — create an account
//	  - login          — authenticate
//
//	Logged in:
//	  - scan <image>   — decode a menu QR code and register the restaurant
//	  - cancel         — abandon a capture in progress
//	  - whoami         — show the current identity
//	  - logout         — log out
//
// Browsing never requires a session; scan is listed for logged-in users
// because registration needs a token, but the handler itself reports the
// authorization error if invoked without one.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("menumap %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, filter, map, scan <image>, cancel, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search, filter, map, signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "map":
			_ = a.Map(ctx)

		case "scan":
			if len(args) == 0 {
				printlnFn("Usage: scan <image file>")
				continue
			}
			_ = a.Scan(ctx, args[0])

		case "cancel":
			_ = a.Cancel(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
