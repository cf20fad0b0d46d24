package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/korjavin/drills/cli"
	"github.com/korjavin/drills/config"
	"github.com/korjavin/drills/database"
)

func main() {
	configPath := flag.String("config", "drills.yaml", "path to an optional drills.yaml config file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: drills [-config drills.yaml] <command> [args]")
		fmt.Fprintln(os.Stderr, "Run `drills list` to see every command.")
	}
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "drills: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	configureLogging(cfg, args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store cli.Store
	if cfg.PersistenceEnabled() {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		log.Printf("Recording results in %s", cfg.DatabasePath)
		store = db
	}

	return cli.New(cfg, store, os.Stdin, os.Stdout).Run(ctx, args)
}

// configureLogging keeps logs out of interactive sessions unless debugging.
// The bot always logs.
func configureLogging(cfg *config.Config, args []string) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	switch {
	case len(args) > 0 && args[0] == "bot":
		log.SetOutput(os.Stdout)
		log.Println("Starting drills bot...")
	case cfg.Debug:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
}
