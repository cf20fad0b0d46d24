package games

import (
	"context"
	"strconv"
	"strings"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/format"
	"github.com/korjavin/drills/models"
	"github.com/korjavin/drills/resolver"
	"github.com/korjavin/drills/session"
)

var (
	personRecord = models.NewQueryRecord("person", map[string]string{
		"name":    "Peter Parker",
		"gender":  "Male",
		"age":     "38",
		"address": "12 Barnard Street, West Chester, PA",
		"phone":   "(610) 387-5172",
	})

	monthRecord = models.NewQueryRecord("months", map[string]string{
		"1":  "January",
		"2":  "February",
		"3":  "March",
		"4":  "April",
		"5":  "May",
		"6":  "June",
		"7":  "July",
		"8":  "August",
		"9":  "September",
		"10": "October",
		"11": "November",
		"12": "December",
	})
)

// PersonRecord returns the record the person game answers from.
func PersonRecord() models.QueryRecord { return personRecord }

// Person answers questions about a fixed person record until the player stops.
func Person() Game {
	return Game{
		Name:    "person",
		Summary: "Ask about Peter Parker: " + strings.Join(personRecord.Keys(), ", "),
		Play:    playPerson,
	}
}

func playPerson(ctx context.Context, c console.Console, env Env) error {
	lookup := resolver.NewLocal(personRecord)
	ctrl := session.NewController("y", "yes")

	for ctrl.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		question, ok, err := ask(c, "What do you want to know?: ")
		if err != nil || !ok {
			return err
		}

		res, _ := lookup.Resolve(ctx, question)
		c.Print(format.Line(res))

		again, ok, err := ask(c, "Would you like to ask something else? [Y/N]: ")
		if err != nil || !ok {
			return err
		}
		ctrl.Continue(again)
	}
	return nil
}

// Birthday tells the player which month a DD-MM-YYYY date falls in.
func Birthday() Game {
	return Game{
		Name:    "birthday",
		Summary: "Name the month of a DD-MM-YYYY birth date",
		Play:    playBirthday,
	}
}

func playBirthday(ctx context.Context, c console.Console, env Env) error {
	date, ok, err := ask(c, "What is your birth date [DD-MM-YYYY]?: ")
	if err != nil || !ok {
		return err
	}
	month, err := BirthMonth(ctx, date)
	if err != nil {
		return err
	}
	c.Print("You were born in " + month)
	return nil
}

// BirthMonth returns the month name of a DD-MM-YYYY date.
func BirthMonth(ctx context.Context, date string) (string, error) {
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 {
		return "", &errs.InputError{Field: "birth date", Input: date, Reason: "expected DD-MM-YYYY"}
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", &errs.InputError{Field: "month", Input: parts[1], Err: err}
	}

	res, _ := resolver.NewLocal(monthRecord).Resolve(ctx, strconv.Itoa(n))
	if !res.Found {
		return "", &errs.InputError{Field: "month", Input: parts[1], Reason: "no such month"}
	}
	return res.Value, nil
}
