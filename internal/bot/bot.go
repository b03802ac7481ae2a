package bot

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/handranker/internal/config"
	"github.com/fadedpez/handranker/internal/discord"
	"github.com/fadedpez/handranker/internal/logging"
	"github.com/fadedpez/handranker/pkg/services/showdown"
)

const (
	// Interactions seen within this window are not handled twice
	interactionTTL = 10 * time.Minute
	// Pruning only starts once this many interactions are tracked
	interactionPruneSize = 100
)

// Bot represents the Discord bot and its dependencies
type Bot struct {
	config   *config.Config
	session  discord.SessionHandler
	logger   *logging.Logger
	showdown *showdown.Service
	commands []*discordgo.ApplicationCommand
	removers []func()

	interactionMu sync.Mutex
	processed     map[string]time.Time

	shutdownWg sync.WaitGroup
}

// New creates a new instance of Bot and registers its event handlers
func New(cfg *config.Config, session discord.SessionHandler, logger *logging.Logger) *Bot {
	if logger == nil {
		logger = logging.Default
	}

	bot := &Bot{
		config:    cfg,
		session:   session,
		logger:    logger,
		showdown:  showdown.NewService(nil, logger),
		commands:  make([]*discordgo.ApplicationCommand, 0, len(Commands)),
		processed: make(map[string]time.Time),
	}
	bot.registerHandlers()

	return bot
}

func (b *Bot) registerHandlers() {
	b.removers = append(b.removers,
		b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			b.handleInteraction(b.session, i)
		}),
		b.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
			b.handleMessage(b.session, m)
		}),
	)
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info("registered %d commands", len(b.commands))
	return nil
}

func (b *Bot) registerCommands() error {
	for _, cmd := range Commands {
		created, err := b.session.ApplicationCommandCreate(b.config.AppID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("command %s: %w", cmd.Name, err)
		}
		b.commands = append(b.commands, created)
	}
	return nil
}

// cleanupCommands removes every command registered for the application
func (b *Bot) cleanupCommands() error {
	existing, err := b.session.ApplicationCommands(b.config.AppID, b.config.GuildID)
	if err != nil {
		return fmt.Errorf("failed to list commands: %w", err)
	}

	for _, cmd := range existing {
		if err := b.session.ApplicationCommandDelete(b.config.AppID, b.config.GuildID, cmd.ID); err != nil {
			return fmt.Errorf("failed to delete command %s: %w", cmd.Name, err)
		}
	}
	b.commands = b.commands[:0]
	return nil
}

// Shutdown gracefully shuts down the bot
func (b *Bot) Shutdown() {
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil

	if b.config.IsDevelopment() {
		if err := b.cleanupCommands(); err != nil {
			b.logger.Warn("cleaning up commands: %v", err)
		}
	}

	if err := b.session.Close(); err != nil {
		b.logger.Error("closing Discord session: %v", err)
	}

	b.shutdownWg.Wait()
}

// markProcessed records an interaction and reports whether it was new
func (b *Bot) markProcessed(id string, now time.Time) bool {
	b.interactionMu.Lock()
	defer b.interactionMu.Unlock()

	if _, seen := b.processed[id]; seen {
		return false
	}
	b.processed[id] = now

	if len(b.processed) > interactionPruneSize {
		for seenID, at := range b.processed {
			if now.Sub(at) > interactionTTL {
				delete(b.processed, seenID)
			}
		}
	}
	return true
}
