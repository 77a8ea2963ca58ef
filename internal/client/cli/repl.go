package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Issue(ctx context.Context) error
	Verify(ctx context.Context) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context) error
	Export(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the certvera CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Anonymous:
//	  - help           show available commands
//	  - signup         create an account and store its token
//	  - login          check the stored session token
//	  - verify         verify a certificate hash (no auth required)
//	  - export         export the certificate preview as a PNG
//	  - exit | quit    leave the program
//
//	Signed in, additionally:
//	  - issue          fill in and submit a certificate
//	  - dashboard      show certificate/user statistics
//	  - list           list all issued certificates
//	  - logout         discard the stored token
//
// Any errors returned by command handlers are ignored here; handlers emit
// their own notifications. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to certvera (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("certvera %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: issue, verify, dashboard, list, export, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, verify, export, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "issue":
			_ = a.Issue(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "export":
			_ = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
