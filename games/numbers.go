package games

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/format"
)

// Things is how many things the share game hands out.
const Things = 20

// BMI computes a body mass index from weight and height.
func BMI() Game {
	return Game{
		Name:    "bmi",
		Summary: "Compute your body mass index",
		Play:    playBMI,
	}
}

func playBMI(ctx context.Context, c console.Console, env Env) error {
	weight, ok, err := askFloat(c, "How much do you weigh (kg)?: ", "weight")
	if err != nil || !ok {
		return err
	}
	height, ok, err := askFloat(c, "How tall are you (m)?: ", "height")
	if err != nil || !ok {
		return err
	}

	bmi, err := BodyMassIndex(weight, height)
	if err != nil {
		return err
	}
	c.Print(fmt.Sprintf("Your BMI is %s. You're classified as %s.",
		format.Number(format.Round(bmi, 2)), Assess(bmi)))
	return nil
}

// BodyMassIndex returns weight / height².
func BodyMassIndex(weight, height float64) (float64, error) {
	if weight <= 0 {
		return 0, &errs.InputError{Field: "weight", Input: format.Number(weight), Reason: "must be positive"}
	}
	if height <= 0 {
		return 0, &errs.InputError{Field: "height", Input: format.Number(height), Reason: "must be positive"}
	}
	return weight / (height * height), nil
}

// Assess classifies a BMI value.
func Assess(bmi float64) string {
	switch {
	case bmi <= 18.5:
		return "under weight"
	case bmi <= 24.9:
		return "normal weight"
	case bmi <= 29.9:
		return "overweight"
	default:
		return "obese"
	}
}

// Share divides Things among a number of people.
func Share() Game {
	return Game{
		Name:    "share",
		Summary: fmt.Sprintf("Split %d things between people", Things),
		Play:    playShare,
	}
}

func playShare(ctx context.Context, c console.Console, env Env) error {
	line, ok, err := ask(c, "How many people are getting things?: ")
	if err != nil || !ok {
		return err
	}
	each, err := ThingsPerPerson(line)
	if err != nil {
		return err
	}
	c.Print(fmt.Sprintf("Each person gets %s thing(s)", format.Number(each)))
	return nil
}

// ThingsPerPerson parses a head count and divides Things by it.
func ThingsPerPerson(input string) (float64, error) {
	people, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &errs.InputError{Field: "number of people", Input: input, Err: err}
	}
	switch {
	case people == 0:
		return 0, &errs.InputError{Field: "number of people", Input: input, Reason: "division by zero"}
	case people < 0:
		return 0, &errs.InputError{Field: "number of people", Input: input, Reason: "must be positive"}
	}
	return float64(Things) / float64(people), nil
}

func askFloat(c console.Console, prompt, field string) (float64, bool, error) {
	line, ok, err := ask(c, prompt)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, false, &errs.InputError{Field: field, Input: line, Err: err}
	}
	return v, true, nil
}
