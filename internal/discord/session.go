package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SessionHandler defines the Discord session operations the bot relies on
type SessionHandler interface {
	// Messaging
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	// Application commands
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID string, guildID string, cmdID string) error
	ApplicationCommands(appID string, guildID string) ([]*discordgo.ApplicationCommand, error)

	// Lifecycle
	Open() error
	Close() error
	AddHandler(handler interface{}) func()
	BotUserID() string
}

// DiscordSession implements SessionHandler using discordgo.Session
type DiscordSession struct {
	*discordgo.Session
}

// NewSession creates a new DiscordSession
func NewSession(token string) (*DiscordSession, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	return &DiscordSession{Session: s}, nil
}

var _ SessionHandler = (*DiscordSession)(nil)

// InteractionRespond implements SessionHandler
func (s *DiscordSession) InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error {
	return s.Session.InteractionRespond(i, r)
}

// ChannelMessageSendComplex implements SessionHandler
func (s *DiscordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return s.Session.ChannelMessageSendComplex(channelID, data)
}

// ApplicationCommandCreate implements SessionHandler
func (s *DiscordSession) ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error) {
	return s.Session.ApplicationCommandCreate(appID, guildID, cmd)
}

// ApplicationCommandDelete implements SessionHandler
func (s *DiscordSession) ApplicationCommandDelete(appID string, guildID string, cmdID string) error {
	return s.Session.ApplicationCommandDelete(appID, guildID, cmdID)
}

// ApplicationCommands implements SessionHandler
func (s *DiscordSession) ApplicationCommands(appID string, guildID string) ([]*discordgo.ApplicationCommand, error) {
	return s.Session.ApplicationCommands(appID, guildID)
}

// Open implements SessionHandler
func (s *DiscordSession) Open() error {
	return s.Session.Open()
}

// Close implements SessionHandler
func (s *DiscordSession) Close() error {
	return s.Session.Close()
}

// AddHandler implements SessionHandler
func (s *DiscordSession) AddHandler(handler interface{}) func() {
	return s.Session.AddHandler(handler)
}

// BotUserID returns the connected bot's user ID, or "" before the session is ready
func (s *DiscordSession) BotUserID() string {
	if s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}
