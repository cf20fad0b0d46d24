// Package cli dispatches the drills subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/korjavin/drills/bot"
	"github.com/korjavin/drills/config"
	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/errs"
	"github.com/korjavin/drills/games"
	"github.com/korjavin/drills/models"
	"github.com/korjavin/drills/resolver"
	"github.com/korjavin/drills/session"
	"github.com/korjavin/drills/textfile"
)

// Store is the attempt history the CLI records to and reports from.
type Store interface {
	SaveAttempt(a models.Attempt) error
	Stats(player, game string) (correct int, incorrect int, err error)
	SessionStats(sessionID string) (correct int, incorrect int, err error)
	MostMissed(player string, limit int) ([]models.MissedPrompt, error)
	Games(player string) ([]string, error)
}

// App runs one subcommand against the given input and output.
type App struct {
	cfg      *config.Config
	registry *games.Registry
	store    Store
	in       io.Reader
	out      io.Writer
}

// New creates an App. store may be nil when persistence is disabled.
func New(cfg *config.Config, store Store, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:      cfg,
		registry: games.Default(),
		store:    store,
		in:       in,
		out:      out,
	}
}

// Run executes the command named by args[0]. Typed user errors are reported
// on the output and do not fail the command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "help", "list":
		a.usage()
	case "cat":
		err = a.cat(rest)
	case "sandbox":
		err = a.sandbox(rest)
	case "stats":
		err = a.stats()
	case "bot":
		return a.bot(ctx)
	default:
		g, ok := a.registry.Lookup(cmd)
		if !ok {
			a.usage()
			return fmt.Errorf("unknown command %q", cmd)
		}
		return games.Run(ctx, g, console.NewTerminal(a.in, a.out), a.env())
	}

	if err != nil && errs.KindOf(err) != errs.KindUnknown {
		fmt.Fprintln(a.out, games.Describe(err))
		return nil
	}
	return err
}

func (a *App) env() games.Env {
	env := games.Env{
		Trivia: resolver.NewRemote(a.cfg.TriviaURL, a.cfg.HTTPTimeout),
		Player: a.cfg.Player,
	}
	if a.store != nil {
		env.Recorder = a.store
	}
	return env
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: drills [-config drills.yaml] <command> [args]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Games:")
	for _, g := range a.registry.All() {
		fmt.Fprintf(a.out, "  %-10s %s\n", g.Name, g.Summary)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Other commands:")
	fmt.Fprintf(a.out, "  %-10s %s\n", "cat", "Print a text file: cat FILE")
	fmt.Fprintf(a.out, "  %-10s %s\n", "sandbox", "Write and read back a scratch file: sandbox [FILE]")
	fmt.Fprintf(a.out, "  %-10s %s\n", "stats", "Show your recorded results")
	fmt.Fprintf(a.out, "  %-10s %s\n", "bot", "Serve the games over Telegram (needs BOT_TOKEN)")
}

func (a *App) cat(args []string) error {
	if len(args) != 1 {
		return &errs.ArgumentCountError{Want: 1, Got: len(args), Usage: "Need to supply a file name."}
	}
	return textfile.Cat(a.out, args[0])
}

const sandboxHeader = "This is a line of output.\n"

var sandboxLines = []string{
	"i love my moolities\n",
	"i love my bean bean too\n",
	"i have a great family\n",
	"and, i have pretty good friends\n",
}

func (a *App) sandbox(args []string) error {
	if len(args) > 1 {
		return &errs.ArgumentCountError{Want: 1, Got: len(args), Usage: "Usage: drills sandbox [FILE]"}
	}
	path := "sandbox.txt"
	if len(args) == 1 {
		path = args[0]
	}

	fmt.Fprintf(a.out, "Default file encoding: %s\n", textfile.Encoding)

	if _, err := textfile.WriteLines(path, append([]string{sandboxHeader}, sandboxLines...)); err != nil {
		return err
	}

	first, err := textfile.ReadChars(path, utf8.RuneCountInString(sandboxHeader))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ex 1: %s\n", strings.TrimSuffix(first, "\n"))

	line, err := textfile.ReadLine(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ex 2: %s\n", strings.TrimSuffix(line, "\n"))

	lines, err := textfile.ReadLines(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ex 3: %q\n", lines)

	if _, err := textfile.Append(path, "Testing file write!\n"); err != nil {
		return err
	}
	lines, err = textfile.ReadLines(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ex 4: %d lines after appending\n", len(lines))
	return nil
}

func (a *App) stats() error {
	if a.store == nil {
		fmt.Fprintln(a.out, "Statistics are not being recorded.")
		return nil
	}
	player := a.cfg.Player

	played, err := a.store.Games(player)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(played) == 0 {
		fmt.Fprintf(a.out, "No results recorded for %s yet.\n", player)
		return nil
	}

	fmt.Fprintf(a.out, "Results for %s:\n", player)
	for _, game := range played {
		correct, incorrect, err := a.store.Stats(player, game)
		if err != nil {
			return fmt.Errorf("stats for %s: %w", game, err)
		}
		fmt.Fprintf(a.out, "  %-10s correct %d, incorrect %d\n", game, correct, incorrect)
	}

	var total session.Tally
	total.Correct, total.Incorrect, err = a.store.Stats(player, "")
	if err != nil {
		return fmt.Errorf("total stats: %w", err)
	}
	fmt.Fprintf(a.out, "  %-10s correct %d, incorrect %d (%.1f%%)\n", "total", total.Correct, total.Incorrect,
		total.Accuracy())

	missed, err := a.store.MostMissed(player, 3)
	if err != nil {
		return fmt.Errorf("most missed: %w", err)
	}
	if len(missed) > 0 {
		fmt.Fprintln(a.out, "Most missed:")
		for i, m := range missed {
			fmt.Fprintf(a.out, "  %d. [%s] %s (%d)\n", i+1, m.Game, m.Prompt, m.Misses)
		}
	}
	return nil
}

func (a *App) bot(ctx context.Context) error {
	var stats bot.StatsSource
	if a.store != nil {
		stats = a.store
	}
	b, err := bot.New(a.cfg, a.registry, a.env(), stats)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	b.Start(ctx)
	return nil
}
