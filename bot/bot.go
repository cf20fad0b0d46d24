package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/drills/config"
	"github.com/korjavin/drills/games"
	"github.com/korjavin/drills/models"
	"github.com/korjavin/drills/session"
)

const (
	cmdStart = "start"
	cmdGames = "games"
	cmdPlay  = "play"
	cmdStop  = "stop"
	cmdStat  = "stat"

	inboxSize = 4
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// StatsSource is the read side of the attempt history.
type StatsSource interface {
	Stats(player, game string) (correct int, incorrect int, err error)
	SessionStats(sessionID string) (correct int, incorrect int, err error)
	MostMissed(player string, limit int) ([]models.MissedPrompt, error)
}

// Bot represents the Telegram bot
type Bot struct {
	api      *tgbotapi.BotAPI
	sender   sender
	registry *games.Registry
	env      games.Env
	stats    StatsSource

	mu       sync.Mutex
	sessions map[int64]*chatSession // Maps chat IDs to the game running there
	wg       sync.WaitGroup
}

// New creates a new bot instance. stats may be nil when nothing is recorded.
func New(cfg *config.Config, registry *games.Registry, env games.Env, stats StatsSource) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = cfg.Debug
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	b := newBot(botAPI, registry, env, stats)
	b.api = botAPI
	return b, nil
}

func newBot(s sender, registry *games.Registry, env games.Env, stats StatsSource) *Bot {
	return &Bot{
		sender:   s,
		registry: registry,
		env:      env,
		stats:    stats,
		sessions: make(map[int64]*chatSession),
	}
}

// Start polls for updates until ctx is cancelled, then stops every running
// session and waits for them.
func (b *Bot) Start(ctx context.Context) {
	log.Println("Starting bot polling...")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.Shutdown()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

// Shutdown stops every session and waits for their goroutines to exit.
func (b *Bot) Shutdown() {
	b.mu.Lock()
	for _, s := range b.sessions {
		s.cancel()
	}
	b.mu.Unlock()
	b.wg.Wait()
}

// handleMessage processes incoming messages
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}
	chatID := message.Chat.ID
	userID := chatID // In private chats, the Chat ID equals the User ID
	userName := ""
	if message.From != nil {
		userID = message.From.ID
		userName = message.From.UserName
	}
	log.Printf("Received message from %s (ID: %d): %s", userName, userID, message.Text)

	text := strings.TrimSpace(message.Text)
	switch {
	case isCommand(text, cmdStart), isCommand(text, cmdGames):
		b.handleGamesCommand(chatID)
	case isCommand(text, cmdPlay):
		b.handlePlayCommand(ctx, chatID, userID, commandArgs(text))
	case isCommand(text, cmdStop):
		b.handleStopCommand(chatID)
	case isCommand(text, cmdStat):
		b.handleStatCommand(chatID, userID)
	default:
		if !b.deliver(chatID, message.Text) {
			b.sendMessage(chatID, "Unknown command. Use /games to see what you can play, or /play <game> to start.")
		}
	}
}

// handleGamesCommand lists every game
func (b *Bot) handleGamesCommand(chatID int64) {
	var sb strings.Builder
	sb.WriteString("Welcome to Drills!\n\nGames:\n")
	for _, g := range b.registry.All() {
		fmt.Fprintf(&sb, "%s - %s\n", g.Name, g.Summary)
	}
	sb.WriteString(`
Commands:
/play <game> - Start a game
/stop - End the current game
/stat - View your statistics`)
	b.sendMessage(chatID, sb.String())
}

// handlePlayCommand starts a game session for the chat
func (b *Bot) handlePlayCommand(ctx context.Context, chatID, userID int64, name string) {
	if name == "" {
		b.sendMessage(chatID, "Which game? Use /games to see the list.")
		return
	}
	g, ok := b.registry.Lookup(strings.ToLower(name))
	if !ok {
		b.sendMessage(chatID, fmt.Sprintf("No game called %q. Use /games to see the list.", name))
		return
	}
	var playing *alreadyPlayingError
	if err := b.startSession(ctx, chatID, userID, g); errors.As(err, &playing) {
		b.sendMessage(chatID, fmt.Sprintf("You are already playing %s. Use /stop to end it.", playing.game))
	}
}

// handleStopCommand ends the chat's running game
func (b *Bot) handleStopCommand(chatID int64) {
	b.mu.Lock()
	s, ok := b.sessions[chatID]
	b.mu.Unlock()
	if !ok {
		b.sendMessage(chatID, "Nothing to stop. Use /play <game> to start.")
		return
	}
	log.Printf("Stopping %s in chat %d", s.game, chatID)
	s.cancel()
}

// handleStatCommand handles the /stat command
func (b *Bot) handleStatCommand(chatID, userID int64) {
	if b.stats == nil {
		b.sendMessage(chatID, "Statistics are not being recorded.")
		return
	}

	player := strconv.FormatInt(userID, 10)
	var tally session.Tally
	var err error
	tally.Correct, tally.Incorrect, err = b.stats.Stats(player, "")
	if err != nil {
		log.Printf("Error getting user stats: %v", err)
		b.sendMessage(chatID, "Sorry, I couldn't retrieve your statistics. Please try again later.")
		return
	}
	total := tally.Total()

	statMessage := fmt.Sprintf(`📊 Your Statistics:

Total Answers: %d
Correct Answers: %d ✅
Incorrect Answers: %d ❌
Accuracy: %.1f%%`, total, tally.Correct, tally.Incorrect, tally.Accuracy())

	if total > 0 {
		missed, err := b.stats.MostMissed(player, 3)
		if err != nil {
			log.Printf("Error getting missed prompts: %v", err)
		}

		if len(missed) > 0 {
			statMessage += "\n\nMost Missed:\n"
			for i, m := range missed {
				statMessage += fmt.Sprintf("%d. [%s] %s (%d)\n", i+1, m.Game, truncate(m.Prompt, 50), m.Misses)
			}
		}
	}

	b.sendMessage(chatID, statMessage)
}

// sendMessage sends a plain text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// truncate shortens s to at most limit runes, ending it with "..." when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func isCommand(text, cmd string) bool {
	prefix := "/" + cmd
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	rest := text[len(prefix):]
	return rest == "" || rest[0] == ' ' || rest[0] == '@'
}

func commandArgs(text string) string {
	_, args, _ := strings.Cut(text, " ")
	return strings.TrimSpace(args)
}
