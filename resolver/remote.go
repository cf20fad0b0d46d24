package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/models"
)

const (
	DefaultTriviaURL = "https://opentdb.com/api.php?amount=1&category=14&difficulty=medium"
	defaultTimeout   = 30 * time.Second
)

// Remote fetches a fresh trivia card from a fixed endpoint on every call.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote creates a Remote for url. A non-positive timeout uses the default.
func NewRemote(url string, timeout time.Duration) *Remote {
	if url == "" {
		url = DefaultTriviaURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Remote{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve ignores key; the endpoint decides which question comes back.
func (r *Remote) Resolve(ctx context.Context, _ string) (Result, error) {
	card, err := r.Fetch(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Found: true, Value: card.Question, Card: card}, nil
}

// Fetch performs one GET and decodes the first result.
func (r *Remote) Fetch(ctx context.Context) (*models.TriviaCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	sent := time.Now()
	resp, err := r.client.Do(req)
	elapsed := time.Since(sent)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			log.Printf("Trivia request timed out after %v", elapsed)
		}
		return nil, fmt.Errorf("fetch trivia: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("Trivia API answered in %v with status code: %d", elapsed, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.HTTPStatusError{URL: r.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read trivia body: %w", err)
	}
	return DecodeCard(body)
}

// DecodeCard extracts the first question from an Open Trivia DB payload.
func DecodeCard(body []byte) (*models.TriviaCard, error) {
	if !gjson.ValidBytes(body) {
		return nil, &errs.DecodeError{Source: "trivia payload", Err: errors.New("invalid JSON")}
	}

	payload := gjson.ParseBytes(body)
	if code := payload.Get("response_code"); code.Exists() && code.Int() != 0 {
		return nil, &errs.DecodeError{
			Source: "trivia payload",
			Err:    fmt.Errorf("response_code %d", code.Int()),
		}
	}

	first := payload.Get("results.0")
	question := first.Get("question")
	answer := first.Get("correct_answer")
	if !question.Exists() || !answer.Exists() {
		return nil, &errs.DecodeError{Source: "trivia payload", Err: errors.New("no question in results")}
	}

	return &models.TriviaCard{
		Question:      question.String(),
		CorrectAnswer: answer.String(),
		Category:      first.Get("category").String(),
		Difficulty:    first.Get("difficulty").String(),
	}, nil
}
