// Package games implements the interactive exercises. Each one prompts through
// a console.Console, resolves the answer, prints the result and asks whether
// to go again.
package games

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/models"
	"github.com/korjavin/drills/resolver"
)

// PlayFunc runs one game against c until the player stops or input runs out.
type PlayFunc func(ctx context.Context, c console.Console, env Env) error

// Game is a named, playable exercise.
type Game struct {
	Name    string
	Summary string
	Play    PlayFunc
}

// Recorder stores tallied answers.
type Recorder interface {
	SaveAttempt(a models.Attempt) error
}

// NoopRecorder discards every attempt.
type NoopRecorder struct{}

func (NoopRecorder) SaveAttempt(models.Attempt) error { return nil }

// Env carries what a game needs besides its console.
type Env struct {
	Trivia   resolver.Resolver
	Recorder Recorder
	Player   string
	Session  string
	Rand     *rand.Rand
	Now      func() time.Time
}

func (e Env) withDefaults() Env {
	if e.Recorder == nil {
		e.Recorder = NoopRecorder{}
	}
	if e.Player == "" {
		e.Player = "anonymous"
	}
	if e.Session == "" {
		e.Session = uuid.NewString()
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Trivia == nil {
		e.Trivia = resolver.NewRemote("", 0)
	}
	return e
}

func (e Env) record(game, prompt string, correct bool) {
	err := e.Recorder.SaveAttempt(models.Attempt{
		Session:   e.Session,
		Player:    e.Player,
		Game:      game,
		Prompt:    prompt,
		Correct:   correct,
		Timestamp: e.Now().Unix(),
	})
	if err != nil {
		log.Printf("Error saving attempt for %s: %v", game, err)
	}
}

// Run plays g and reports typed failures to the player. Only errors outside
// the known kinds are returned.
func Run(ctx context.Context, g Game, c console.Console, env Env) error {
	env = env.withDefaults()
	log.Printf("Starting %s for %s (session %s)", g.Name, env.Player, env.Session)

	err := g.Play(ctx, c, env)
	switch {
	case err == nil,
		errors.Is(err, console.ErrInputExhausted),
		errors.Is(err, context.Canceled):
		log.Printf("Finished %s (session %s)", g.Name, env.Session)
		return nil
	case errs.KindOf(err) != errs.KindUnknown:
		log.Printf("%s ended with %s error: %v", g.Name, errs.KindOf(err), err)
		c.Print(Describe(err))
		return nil
	default:
		return fmt.Errorf("%s: %w", g.Name, err)
	}
}

// Describe turns a typed error into the message shown to the player.
func Describe(err error) string {
	var (
		argErr    *errs.ArgumentCountError
		fileErr   *errs.FileNotFoundError
		statusErr *errs.HTTPStatusError
		decodeErr *errs.DecodeError
		inputErr  *errs.InputError
	)
	switch {
	case errors.As(err, &argErr):
		return argErr.Error()
	case errors.As(err, &fileErr):
		return fmt.Sprintf("No such file: %s", fileErr.Path)
	case errors.As(err, &statusErr):
		return fmt.Sprintf("The server answered with status %d.", statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Could not read %s.", decodeErr.Source)
	case errors.As(err, &inputErr):
		return fmt.Sprintf("Something bad happened: %v", inputErr)
	default:
		return fmt.Sprintf("Something bad happened: %v", err)
	}
}

// Registry holds the playable games by name.
type Registry struct {
	games map[string]Game
}

// NewRegistry creates a registry from games. Later duplicates replace earlier ones.
func NewRegistry(games ...Game) *Registry {
	r := &Registry{games: make(map[string]Game, len(games))}
	for _, g := range games {
		r.games[g.Name] = g
	}
	return r
}

// Default returns a registry with every built-in game.
func Default() *Registry {
	return NewRegistry(
		Person(),
		Colors(),
		Trivia(),
		Birthday(),
		BMI(),
		Words(),
		Share(),
		Greet(),
	)
}

// Lookup returns the game called name.
func (r *Registry) Lookup(name string) (Game, bool) {
	g, ok := r.games[name]
	return g, ok
}

// All returns the games sorted by name.
func (r *Registry) All() []Game {
	all := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// ask prompts and reports whether the player is still there. Running out of
// input is not an error.
func ask(c console.Console, prompt string) (string, bool, error) {
	line, err := c.Prompt(prompt)
	if errors.Is(err, console.ErrInputExhausted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}
