package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Greeting() string
	Categories() error
	SelectCategory(args []string) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, args []string) error
	Increment(ctx context.Context, args []string) error
	Decrement(ctx context.Context, args []string) error
	RemoveProduct(ctx context.Context, args []string) error
	SetLimit(args []string) error
	ShowList() error
	ShowAll() error
	Mark(args []string) error
	Clear(ctx context.Context) error
	SaveList(ctx context.Context) error
	Lists(ctx context.Context) error
	ShowSaved(ctx context.Context, args []string) error
	DeleteSaved(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on a. Unknown commands are reported back. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own problems. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "ListaFácil (type 'help' for commands)")

	for {
		fmt.Fprintf(w, "%s > ", a.Greeting())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Commands: cat, add, edit, inc, dec, del, list, all, limit,")
			fmt.Fprintln(w, "          mark, clear, save, lists, show, delsaved, logout, exit")

		case "cat":
			_ = a.SelectCategory(args)

		case "add":
			_ = a.AddProduct(ctx)

		case "edit":
			_ = a.EditProduct(ctx, args)

		case "inc", "+":
			_ = a.Increment(ctx, args)

		case "dec", "-":
			_ = a.Decrement(ctx, args)

		case "del":
			_ = a.RemoveProduct(ctx, args)

		case "limit":
			_ = a.SetLimit(args)

		case "l", "list":
			_ = a.ShowList()

		case "all":
			_ = a.ShowAll()

		case "mark":
			_ = a.Mark(args)

		case "clear":
			_ = a.Clear(ctx)

		case "save":
			_ = a.SaveList(ctx)

		case "lists":
			_ = a.Lists(ctx)

		case "show":
			_ = a.ShowSaved(ctx, args)

		case "delsaved":
			_ = a.DeleteSaved(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
