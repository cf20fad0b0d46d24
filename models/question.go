package models

// TriviaCard represents one question fetched from the trivia API.
// Question and CorrectAnswer are kept as delivered, HTML entities included.
type TriviaCard struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	Category      string `json:"category,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
}

// Attempt stores one tallied answer
type Attempt struct {
	Session   string
	Player    string
	Game      string
	Prompt    string
	Correct   bool
	Timestamp int64
}

// MissedPrompt is a prompt together with how often it was answered incorrectly
type MissedPrompt struct {
	Game   string
	Prompt string
	Misses int
}
