package games

import (
	"context"
	"strings"

	"github.com/korjavin/drills/console"
)

// Greeter joins a name with a fixed suffix.
type Greeter struct {
	Suffix string
}

// NewGreeter creates a Greeter that appends suffix.
func NewGreeter(suffix string) Greeter {
	return Greeter{Suffix: suffix}
}

// Greet returns name followed by the suffix.
func (g Greeter) Greet(name string) string {
	return strings.Join([]string{name, g.Suffix}, " ")
}

// Greet asks for a name and echoes it with the greeter's suffix.
func Greet() Game {
	greeter := NewGreeter("something")
	return Game{
		Name:    "greet",
		Summary: "Echo a name with something after it",
		Play: func(ctx context.Context, c console.Console, env Env) error {
			name, ok, err := ask(c, "What is your name?: ")
			if err != nil || !ok {
				return err
			}
			c.Print(greeter.Greet(strings.TrimSpace(name)))
			return nil
		},
	}
}
