package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"github.com/korjavin/drills/console"
	"github.com/korjavin/drills/games"
	"github.com/korjavin/drills/session"
)

type alreadyPlayingError struct {
	game string
}

func (e *alreadyPlayingError) Error() string {
	return "already playing " + e.game
}

// chatSession is one game running in one chat.
type chatSession struct {
	game   string
	inbox  chan string
	cancel context.CancelFunc
}

// chatConsole feeds chat messages to a game as input lines.
type chatConsole struct {
	ctx    context.Context
	chatID int64
	inbox  <-chan string
	send   func(chatID int64, text string)
}

func (c *chatConsole) Prompt(text string) (string, error) {
	c.send(c.chatID, text)
	select {
	case line := <-c.inbox:
		return line, nil
	case <-c.ctx.Done():
		return "", console.ErrInputExhausted
	}
}

func (c *chatConsole) Print(line string) {
	c.send(c.chatID, line)
}

func (b *Bot) startSession(ctx context.Context, chatID, userID int64, g games.Game) error {
	b.mu.Lock()
	if running, ok := b.sessions[chatID]; ok {
		b.mu.Unlock()
		return &alreadyPlayingError{game: running.game}
	}
	sctx, cancel := context.WithCancel(ctx)
	s := &chatSession{game: g.Name, inbox: make(chan string, inboxSize), cancel: cancel}
	b.sessions[chatID] = s
	b.mu.Unlock()

	env := b.env
	env.Player = strconv.FormatInt(userID, 10)
	// Each session gets its own id and random source.
	env.Session = uuid.NewString()
	env.Rand = nil

	con := &chatConsole{ctx: sctx, chatID: chatID, inbox: s.inbox, send: b.sendMessage}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Recovered from panic in %s session: %v", g.Name, r)
			}
		}()
		defer b.endSession(chatID, s)

		log.Printf("Starting %s in chat %d", g.Name, chatID)
		if err := games.Run(sctx, g, con, env); err != nil {
			log.Printf("Error running %s in chat %d: %v", g.Name, chatID, err)
			b.sendMessage(chatID, "Sorry, the game stopped unexpectedly.")
		}
		b.sendSessionSummary(chatID, env.Session)
		b.sendMessage(chatID, "Game over. Use /play <game> to start another one.")
	}()
	return nil
}

// sendSessionSummary reports the tally recorded under sessionID, if any.
func (b *Bot) sendSessionSummary(chatID int64, sessionID string) {
	if b.stats == nil {
		return
	}
	var tally session.Tally
	var err error
	tally.Correct, tally.Incorrect, err = b.stats.SessionStats(sessionID)
	if err != nil {
		log.Printf("Error getting session stats: %v", err)
		return
	}
	if tally.Total() == 0 {
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("This session: %d of %d correct (%.1f%%).",
		tally.Correct, tally.Total(), tally.Accuracy()))
}

func (b *Bot) endSession(chatID int64, s *chatSession) {
	s.cancel()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessions[chatID] == s {
		delete(b.sessions, chatID)
	}
}

// deliver hands text to the chat's running game. It reports false when no
// game is running.
func (b *Bot) deliver(chatID int64, text string) bool {
	b.mu.Lock()
	s, ok := b.sessions[chatID]
	b.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case s.inbox <- text:
	default:
		b.sendMessage(chatID, "Still working on your last answer, please wait.")
	}
	return true
}

func (b *Bot) active(chatID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[chatID]
	if !ok {
		return "", false
	}
	return s.game, true
}
