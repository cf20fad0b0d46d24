package session

// Tally counts correct and incorrect answers.
type Tally struct {
	Correct   int
	Incorrect int
}

// Record adds one answer.
func (t *Tally) Record(correct bool) {
	if correct {
		t.Correct++
	} else {
		t.Incorrect++
	}
}

// Total returns the number of recorded answers.
func (t Tally) Total() int {
	return t.Correct + t.Incorrect
}

// Accuracy returns the percentage of correct answers, or 0 with nothing recorded.
func (t Tally) Accuracy() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total()) * 100
}
