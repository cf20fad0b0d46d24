package games

import (
	"context"
	"fmt"
	"strings"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/session"
)

var colors = []string{"red", "green", "blue", "yellow", "orange", "purple"}

// Colors has the player guess the color the computer picked.
func Colors() Game {
	return Game{
		Name:    "colors",
		Summary: "Guess the color the computer picked",
		Play:    playColors,
	}
}

func playColors(ctx context.Context, c console.Console, env Env) error {
	ctrl := session.NewController("y")
	prompt := fmt.Sprintf("Pick a color [%s]: ", strings.Join(colors, ", "))

	for ctrl.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		picked := colors[env.Rand.Intn(len(colors))]

		selected, ok, err := ask(c, prompt)
		if err != nil {
			return err
		}
		if !ok {
			ctrl.Stop()
			break
		}

		c.Print(fmt.Sprintf("You chose %s. The computer chose %s.", selected, picked))
		matched := strings.EqualFold(strings.TrimSpace(selected), picked)
		ctrl.Tally.Record(matched)
		env.record("colors", picked, matched)

		answer, ok, err := ask(c, "Would you like to play again? [Y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			ctrl.Stop()
			break
		}
		ctrl.Continue(answer)
	}

	if ctrl.Tally.Total() > 0 {
		c.Print(fmt.Sprintf("You matched the computer %d of %d time(s).", ctrl.Tally.Correct, ctrl.Tally.Total()))
	}
	return nil
}
