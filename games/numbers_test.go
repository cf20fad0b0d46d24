package games

import (
	"testing"

	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/format"
)

func TestBodyMassIndex(t *testing.T) {
	bmi, err := BodyMassIndex(70, 1.75)
	if err != nil {
		t.Fatalf("BodyMassIndex: %v", err)
	}
	if got := format.Round(bmi, 2); got != 22.86 {
		t.Errorf("BodyMassIndex(70, 1.75) = %v, want 22.86", got)
	}
	if Assess(bmi) != "normal weight" {
		t.Errorf("Assess(%v) = %q", bmi, Assess(bmi))
	}

	for _, tc := range [][2]float64{{0, 1.8}, {70, 0}, {70, -1}} {
		if _, err := BodyMassIndex(tc[0], tc[1]); errs.KindOf(err) != errs.KindInput {
			t.Errorf("BodyMassIndex(%v, %v) err = %v", tc[0], tc[1], err)
		}
	}
}

func TestAssessBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15, "under weight"},
		{18.5, "under weight"},
		{18.51, "normal weight"},
		{24.9, "normal weight"},
		{24.95, "overweight"},
		{29.9, "overweight"},
		{29.91, "obese"},
		{40, "obese"},
	}
	for _, tt := range tests {
		if got := Assess(tt.bmi); got != tt.want {
			t.Errorf("Assess(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestBMIGame(t *testing.T) {
	c := play(t, BMI(), testEnv(&memRecorder{}, nil), "70", "1.75")
	assertOutput(t, c, "Your BMI is 22.86. You're classified as normal weight.")

	c = play(t, BMI(), testEnv(&memRecorder{}, nil), "heavy")
	if len(c.Prompts) != 1 {
		t.Errorf("prompted %d times after bad weight", len(c.Prompts))
	}
	if len(c.Output) != 1 || c.Output[0] == "" {
		t.Errorf("output = %q, want one error line", c.Output)
	}
}

func TestThingsPerPerson(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4", "5.0"},
		{"3", "6.666666666666667"},
		{" 20 ", "1.0"},
	}
	for _, tt := range tests {
		got, err := ThingsPerPerson(tt.input)
		if err != nil {
			t.Fatalf("ThingsPerPerson(%q): %v", tt.input, err)
		}
		if format.Number(got) != tt.want {
			t.Errorf("ThingsPerPerson(%q) = %s, want %s", tt.input, format.Number(got), tt.want)
		}
	}

	for _, bad := range []string{"0", "-2", "two", ""} {
		if _, err := ThingsPerPerson(bad); errs.KindOf(err) != errs.KindInput {
			t.Errorf("ThingsPerPerson(%q) err = %v, want input error", bad, err)
		}
	}
}

func TestShareGame(t *testing.T) {
	c := play(t, Share(), testEnv(&memRecorder{}, nil), "3")
	assertOutput(t, c, "Each person gets 6.666666666666667 thing(s)")

	c = play(t, Share(), testEnv(&memRecorder{}, nil), "0")
	assertOutput(t, c, `Something bad happened: invalid number of people "0": division by zero`)
}
