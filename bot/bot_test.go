package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/drills/games"
	"github.com/korjavin/drills/models"
)

type sent struct {
	chatID int64
	text   string
}

type fakeSender struct {
	out chan sent
}

func newFakeSender() *fakeSender {
	return &fakeSender{out: make(chan sent, 64)}
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	f.out <- sent{chatID: msg.ChatID, text: msg.Text}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) next(t *testing.T) sent {
	t.Helper()
	select {
	case m := <-f.out:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return sent{}
	}
}

func (f *fakeSender) expect(t *testing.T, want string) {
	t.Helper()
	if got := f.next(t); got.text != want {
		t.Fatalf("message = %q, want %q", got.text, want)
	}
}

type fakeStats struct {
	correct, incorrect int
	missed             []models.MissedPrompt
	player             string
	session            string
}

func (f *fakeStats) SessionStats(sessionID string) (int, int, error) {
	f.session = sessionID
	return f.correct, f.incorrect, nil
}

func (f *fakeStats) Stats(player, game string) (int, int, error) {
	f.player = player
	return f.correct, f.incorrect, nil
}

func (f *fakeStats) MostMissed(player string, limit int) ([]models.MissedPrompt, error) {
	return f.missed, nil
}

func message(chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: chatID, UserName: "peter"},
	}
}

func waitInactive(t *testing.T, b *Bot, chatID int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := b.active(chatID); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("session still active")
}

func TestPlayPersonOverChat(t *testing.T) {
	fs := newFakeSender()
	b := newBot(fs, games.Default(), games.Env{}, nil)
	ctx := context.Background()

	b.handleMessage(ctx, message(42, "/play person"))
	fs.expect(t, "What do you want to know?: ")
	if game, ok := b.active(42); !ok || game != "person" {
		t.Fatalf("active(42) = %q, %v", game, ok)
	}

	b.handleMessage(ctx, message(42, "phone"))
	fs.expect(t, "(610) 387-5172")
	fs.expect(t, "Would you like to ask something else? [Y/N]: ")

	b.handleMessage(ctx, message(42, "y"))
	fs.expect(t, "What do you want to know?: ")
	b.handleMessage(ctx, message(42, "might"))
	fs.expect(t, "I don't have that information.")
	fs.expect(t, "Would you like to ask something else? [Y/N]: ")

	b.handleMessage(ctx, message(42, "n"))
	fs.expect(t, "Game over. Use /play <game> to start another one.")
	waitInactive(t, b, 42)
	b.Shutdown()
}

func TestStopEndsSession(t *testing.T) {
	fs := newFakeSender()
	b := newBot(fs, games.Default(), games.Env{}, nil)
	ctx := context.Background()

	b.handleMessage(ctx, message(1, "/play birthday"))
	fs.expect(t, "What is your birth date [DD-MM-YYYY]?: ")

	b.handleMessage(ctx, message(1, "/play person"))
	fs.expect(t, "You are already playing birthday. Use /stop to end it.")

	b.handleMessage(ctx, message(1, "/stop"))
	fs.expect(t, "Game over. Use /play <game> to start another one.")
	waitInactive(t, b, 1)

	b.handleMessage(ctx, message(1, "/stop"))
	fs.expect(t, "Nothing to stop. Use /play <game> to start.")
}

func TestShutdownStopsAllSessions(t *testing.T) {
	fs := newFakeSender()
	b := newBot(fs, games.Default(), games.Env{}, nil)
	ctx := context.Background()

	b.handleMessage(ctx, message(1, "/play greet"))
	fs.expect(t, "What is your name?: ")
	b.handleMessage(ctx, message(2, "/play share"))
	fs.expect(t, "How many people are getting things?: ")

	b.Shutdown()
	if _, ok := b.active(1); ok {
		t.Error("chat 1 still active after Shutdown")
	}
	if _, ok := b.active(2); ok {
		t.Error("chat 2 still active after Shutdown")
	}
}

func TestCommands(t *testing.T) {
	fs := newFakeSender()
	b := newBot(fs, games.Default(), games.Env{}, nil)
	ctx := context.Background()

	b.handleMessage(ctx, message(5, "hello"))
	if m := fs.next(t); !strings.HasPrefix(m.text, "Unknown command.") || m.chatID != 5 {
		t.Errorf("reply = %+v", m)
	}

	b.handleMessage(ctx, message(5, "/play chess"))
	fs.expect(t, `No game called "chess". Use /games to see the list.`)

	b.handleMessage(ctx, message(5, "/play"))
	fs.expect(t, "Which game? Use /games to see the list.")

	b.handleMessage(ctx, message(5, "/games"))
	list := fs.next(t).text
	for _, g := range games.Default().All() {
		if !strings.Contains(list, g.Name+" - ") {
			t.Errorf("game list missing %s:\n%s", g.Name, list)
		}
	}

	b.handleMessage(ctx, message(5, "/stat"))
	fs.expect(t, "Statistics are not being recorded.")
}

func TestStatCommand(t *testing.T) {
	fs := newFakeSender()
	stats := &fakeStats{
		correct:   3,
		incorrect: 1,
		missed:    []models.MissedPrompt{{Game: "trivia", Prompt: "Who created Doctor Who?", Misses: 1}},
	}
	b := newBot(fs, games.Default(), games.Env{}, stats)

	b.handleMessage(context.Background(), message(77, "/stat"))
	text := fs.next(t).text
	for _, want := range []string{"Total Answers: 4", "Correct Answers: 3", "Accuracy: 75.0%", "1. [trivia] Who created Doctor Who? (1)"} {
		if !strings.Contains(text, want) {
			t.Errorf("stat message missing %q:\n%s", want, text)
		}
	}
	if stats.player != "77" {
		t.Errorf("stats queried for %q, want 77", stats.player)
	}
}

func TestStatTruncatesByRune(t *testing.T) {
	fs := newFakeSender()
	prompt := strings.Repeat("a", 46) + strings.Repeat("é", 10)
	stats := &fakeStats{
		incorrect: 1,
		missed:    []models.MissedPrompt{{Game: "trivia", Prompt: prompt, Misses: 1}},
	}
	b := newBot(fs, games.Default(), games.Env{}, stats)

	b.handleMessage(context.Background(), message(3, "/stat"))
	text := fs.next(t).text
	if !utf8.ValidString(text) {
		t.Fatalf("stat message is not valid UTF-8: %q", text)
	}
	want := strings.Repeat("a", 46) + "é..."
	if !strings.Contains(text, "1. [trivia] "+want+" (1)") {
		t.Errorf("stat message missing truncated prompt %q:\n%s", want, text)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"eleven char", 10, "eleven ..."},
		{"ééééééééééé", 10, "ééééééé..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestGameOverReportsSessionTally(t *testing.T) {
	fs := newFakeSender()
	stats := &fakeStats{correct: 1, incorrect: 1}
	b := newBot(fs, games.Default(), games.Env{}, stats)
	ctx := context.Background()

	b.handleMessage(ctx, message(9, "/play greet"))
	fs.expect(t, "What is your name?: ")
	b.handleMessage(ctx, message(9, "Peter"))
	fs.expect(t, "Peter something")
	fs.expect(t, "This session: 1 of 2 correct (50.0%).")
	fs.expect(t, "Game over. Use /play <game> to start another one.")
	waitInactive(t, b, 9)

	if stats.session == "" {
		t.Error("session stats queried without a session id")
	}
}

func TestIsCommand(t *testing.T) {
	tests := []struct {
		text, cmd string
		want      bool
	}{
		{"/stat", "stat", true},
		{"/start", "stat", false},
		{"/play trivia", "play", true},
		{"/play@drillsbot trivia", "play", true},
		{"/playground", "play", false},
		{"play", "play", false},
	}
	for _, tt := range tests {
		if got := isCommand(tt.text, tt.cmd); got != tt.want {
			t.Errorf("isCommand(%q, %q) = %v, want %v", tt.text, tt.cmd, got, tt.want)
		}
	}
	if got := commandArgs("/play  trivia "); got != "trivia" {
		t.Errorf("commandArgs() = %q", got)
	}
}
