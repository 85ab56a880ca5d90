// Package todo holds the todo record and its plain-text rendering.
package todo

import (
	"fmt"
	"io"
	"strings"
)

// Header precedes every listing.
const Header = "- [ ] List of todos:"

// Todo is one row of the todos table.
type Todo struct {
	ID          int64
	Description string
	Done        bool
}

// Mark returns the checkbox mark for a completion flag.
func Mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}

// Line renders the todo as "- [<mark>] <id>: <description>".
func (t Todo) Line() string {
	return fmt.Sprintf("- [%s] %d: %s", Mark(t.Done), t.ID, t.Description)
}

// Format returns the header followed by one line per todo, in the order
// given, each newline-terminated.
func Format(todos []Todo) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, t := range todos {
		b.WriteString(t.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes Format(todos) to w in one call.
func Render(w io.Writer, todos []Todo) error {
	_, err := io.WriteString(w, Format(todos))
	return err
}
