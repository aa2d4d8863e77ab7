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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context) error
	Products(ctx context.Context) error
	Filter(ctx context.Context, category string) error
	Remote(ctx context.Context) error
	Categories(ctx context.Context) error
	Sync(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, id string) error
	RemoveFromCart(ctx context.Context, id string) error
	SetQuantity(ctx context.Context, id, qty string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the LevelUp CLI.
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
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - products | p     — list the catalog
//	  - filter <cat>     — list one category
//	  - remote           — list the remote catalog
//	  - categories       — list the remote category names
//	  - exit | quit      — leave the program
//
//	Logged in, additionally:
//	  - sync             — pull the remote catalog into the local store
//	  - cart             — show the cart
//	  - add <id>         — add a product to the cart
//	  - remove <id>      — remove a cart line
//	  - qty <id> <n>     — set a line's quantity
//	  - clear            — empty the cart
//	  - checkout         — purchase the cart contents
//	  - profile          — edit name, email, country, password
//	  - avatar           — set the profile image path
//	  - logout           — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lvl> %s > ", statusFn()))
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
				printlnFn("Available commands: (p)roducts, filter, remote, categories, sync, cart, add, remove, qty, clear, checkout, profile, avatar, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (p)roducts, filter, remote, categories, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <category>")
				continue
			}
			_ = a.Filter(ctx, strings.Join(args, " "))

		case "remote":
			_ = a.Remote(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product id>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <product id>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <product id> <quantity>")
				continue
			}
			_ = a.SetQuantity(ctx, args[0], args[1])

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
