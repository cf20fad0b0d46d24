// Package format renders resolver results and numbers as output lines.
package format

import (
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/korjavin/drills/resolver"
)

// NotFound is printed when a lookup has no answer.
const NotFound = "I don't have that information."

// Line renders r as a single line of text.
func Line(r resolver.Result) string {
	switch {
	case r.Card != nil:
		return html.UnescapeString(r.Card.Question)
	case r.Found:
		return r.Value
	default:
		return NotFound
	}
}

// Answer returns the card's correct answer with HTML entities resolved.
func Answer(r resolver.Result) string {
	if r.Card == nil {
		return ""
	}
	return html.UnescapeString(r.Card.CorrectAnswer)
}

// Number renders f in its shortest exact form, keeping ".0" on whole numbers
// so 20/4 prints as 5.0 rather than 5.
func Number(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Round rounds f to places decimal places.
func Round(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}
