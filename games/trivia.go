package games

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/format"
	"github.com/korjavin/drills/session"
)

const (
	retrievalFailed = "There was a problem retrieving the question."
	unreadableCard  = "The question could not be read."
)

// Trivia asks fresh questions from the trivia API until the player stops or
// a question cannot be retrieved.
func Trivia() Game {
	return Game{
		Name:    "trivia",
		Summary: "Answer trivia questions from the Open Trivia DB",
		Play:    playTrivia,
	}
}

func playTrivia(ctx context.Context, c console.Console, env Env) error {
	ctrl := session.NewController("yes")

	for ctrl.Running() {
		res, err := env.Trivia.Resolve(ctx, "")
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Printf("Error fetching trivia question: %v", err)
			if errs.KindOf(err) == errs.KindDecode {
				c.Print(unreadableCard)
			} else {
				c.Print(retrievalFailed)
			}
			ctrl.Fail(err)
			break
		}

		question := format.Line(res)
		guess, ok, err := ask(c, question+": ")
		if err != nil {
			return err
		}
		if !ok {
			ctrl.Stop()
			break
		}

		correct := strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(format.Answer(res)))
		ctrl.Tally.Record(correct)
		env.record("trivia", question, correct)

		verdict := "Incorrect."
		if correct {
			verdict = "You guessed right!"
		}
		again, ok, err := ask(c, verdict+" Would you like to play again? [Yes/No]: ")
		if err != nil {
			return err
		}
		if !ok {
			ctrl.Stop()
			break
		}
		ctrl.Continue(again)
	}

	if ctrl.Tally.Total() > 0 {
		c.Print(fmt.Sprintf("You answered %d of %d question(s) correctly.", ctrl.Tally.Correct, ctrl.Tally.Total()))
	}
	return nil
}
