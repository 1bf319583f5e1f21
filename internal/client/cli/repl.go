package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Properties(ctx context.Context) error
	Property(ctx context.Context, args []string) error
	AddProperty(ctx context.Context) error
	Listings(ctx context.Context) error
	Payments(ctx context.Context) error
	AddPayment(ctx context.Context) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the ProAim CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every protected command passes through the route guard inside its
// handler, so the command set shown by "help" is a convenience, not the
// access control.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printFn(fmt.Sprintf("proaim %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, profile, dashboard, properties, property <id>, addproperty, listings, payments, addpayment, users, deluser <id>, register, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "properties":
			_ = a.Properties(ctx)

		case "property":
			_ = a.Property(ctx, args)

		case "addproperty":
			_ = a.AddProperty(ctx)

		case "listings":
			_ = a.Listings(ctx)

		case "payments":
			_ = a.Payments(ctx)

		case "addpayment":
			_ = a.AddPayment(ctx)

		case "users":
			_ = a.Users(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
