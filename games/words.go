package games

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/session"
)

// Attempts is how many tries the words game allows.
const Attempts = 5

var words = strings.Fields("pennsylvania computer dinosaur trivial thymus")

// Words times the player typing a word several times.
func Words() Game {
	return Game{
		Name:    "words",
		Summary: fmt.Sprintf("Type a word %d times against the clock", Attempts),
		Play:    playWords,
	}
}

func playWords(ctx context.Context, c console.Console, env Env) error {
	word := words[env.Rand.Intn(len(words))]
	var tally session.Tally
	var durations []time.Duration

	c.Print(fmt.Sprintf("Your word is '%s'", word))
	for try := 1; try <= Attempts; try++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := env.Now()
		attempt, ok, err := ask(c, fmt.Sprintf("Try #%d: ", try))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		durations = append(durations, env.Now().Sub(start))

		correct := attempt == word
		tally.Record(correct)
		env.record("words", word, correct)
	}

	c.Print("Results:")
	c.Print(fmt.Sprintf("--Correct: %d", tally.Correct))
	c.Print(fmt.Sprintf("--Missed:  %d", tally.Incorrect))
	for i, d := range durations {
		c.Print(fmt.Sprintf("--Try #%d: %.2fs", i+1, d.Seconds()))
	}
	return nil
}
