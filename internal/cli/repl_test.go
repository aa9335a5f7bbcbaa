package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	calls []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Greeting() string { return "test" }
func (s *stubExec) Categories() error {
	return s.record("categories")
}
func (s *stubExec) SelectCategory(args []string) error {
	return s.record("cat " + strings.Join(args, " "))
}
func (s *stubExec) AddProduct(context.Context) error { return s.record("add") }
func (s *stubExec) EditProduct(_ context.Context, args []string) error {
	return s.record("edit " + strings.Join(args, " "))
}
func (s *stubExec) Increment(_ context.Context, args []string) error {
	return s.record("inc " + strings.Join(args, " "))
}
func (s *stubExec) Decrement(_ context.Context, args []string) error {
	return s.record("dec " + strings.Join(args, " "))
}
func (s *stubExec) RemoveProduct(_ context.Context, args []string) error {
	return s.record("del " + strings.Join(args, " "))
}
func (s *stubExec) SetLimit(args []string) error {
	return s.record("limit " + strings.Join(args, " "))
}
func (s *stubExec) ShowList() error                 { return s.record("list") }
func (s *stubExec) ShowAll() error                  { return s.record("all") }
func (s *stubExec) Mark(args []string) error        { return s.record("mark " + strings.Join(args, " ")) }
func (s *stubExec) Clear(context.Context) error     { return s.record("clear") }
func (s *stubExec) SaveList(context.Context) error  { return s.record("save") }
func (s *stubExec) Lists(context.Context) error     { return s.record("lists") }
func (s *stubExec) ShowSaved(_ context.Context, args []string) error {
	return s.record("show " + strings.Join(args, " "))
}
func (s *stubExec) DeleteSaved(_ context.Context, args []string) error {
	return s.record("delsaved " + strings.Join(args, " "))
}
func (s *stubExec) Logout(context.Context) error { return s.record("logout") }

func runWithInput(t *testing.T, input string) (*stubExec, string) {
	t.Helper()
	stub := &stubExec{}
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), stub, scanner, &out)
	return stub, out.String()
}

func TestREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"cat 3",
		"add",
		"inc 1",
		"dec 1",
		"del 2",
		"limit 50.00",
		"list",
		"mark Adega",
		"clear",
		"save",
		"lists",
		"delsaved 1",
		"logout",
		"exit",
	}, "\n")

	stub, out := runWithInput(t, input)

	assert.Equal(t, []string{
		"cat 3", "add", "inc 1", "dec 1", "del 2", "limit 50.00",
		"list", "mark Adega", "clear", "save", "lists", "delsaved 1", "logout",
	}, stub.calls)
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub, out := runWithInput(t, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_IgnoresBlankLines(t *testing.T) {
	stub, _ := runWithInput(t, "\n\nlist\nexit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub, _ := runWithInput(t, "list\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}
