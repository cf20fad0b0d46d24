package games

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/models"
	"github.com/korjavin/drills/resolver"
)

type memRecorder struct {
	mu       sync.Mutex
	attempts []models.Attempt
}

func (m *memRecorder) SaveAttempt(a models.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, a)
	return nil
}

// stubTrivia hands out queued results, one per Resolve call.
type stubTrivia struct {
	results []resolver.Result
	errs    []error
	calls   int
}

func (s *stubTrivia) Resolve(context.Context, string) (resolver.Result, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return resolver.Result{}, s.errs[i]
	}
	if i < len(s.results) {
		return s.results[i], nil
	}
	return resolver.Result{}, context.DeadlineExceeded
}

func card(question, answer string) resolver.Result {
	return resolver.Result{Found: true, Card: &models.TriviaCard{Question: question, CorrectAnswer: answer}}
}

func testEnv(rec *memRecorder, trivia resolver.Resolver) Env {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return Env{
		Trivia:   trivia,
		Recorder: rec,
		Player:   "peter",
		Session:  "session-1",
		Rand:     rand.New(rand.NewSource(7)),
		Now: func() time.Time {
			clock = clock.Add(1500 * time.Millisecond)
			return clock
		},
	}
}

func play(t *testing.T, g Game, env Env, inputs ...string) *console.Scripted {
	t.Helper()
	c := console.NewScripted(inputs...)
	if err := Run(context.Background(), g, c, env); err != nil {
		t.Fatalf("Run(%s): %v", g.Name, err)
	}
	return c
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func assertOutput(t *testing.T, c *console.Scripted, want ...string) {
	t.Helper()
	for _, w := range want {
		if !containsLine(c.Output, w) {
			t.Errorf("output missing %q\ngot:\n%s", w, strings.Join(c.Output, "\n"))
		}
	}
}
