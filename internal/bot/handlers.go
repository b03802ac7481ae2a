package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/handranker/internal/discord"
	"github.com/fadedpez/handranker/internal/types"
	"github.com/fadedpez/handranker/pkg/display"
	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/poker"
	"github.com/fadedpez/handranker/pkg/services/showdown"
)

// handleInteraction dispatches Discord interaction events
func (b *Bot) handleInteraction(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	if !b.markProcessed(i.ID, time.Now()) {
		b.logger.Debug("skipping already processed interaction %s", i.ID)
		return
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		b.handleSlashCommand(s, i)
	}
}

// handleSlashCommand handles all slash commands
func (b *Bot) handleSlashCommand(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	data := i.ApplicationCommandData()

	var resp *discord.Response
	var err error
	switch data.Name {
	case CommandRank:
		resp, err = b.rank(optionValue(data.Options, OptionHand))
	case CommandCompare:
		resp, err = b.compare(optionValue(data.Options, OptionFirst), optionValue(data.Options, OptionSecond))
	default:
		err = types.NewGameError(types.ErrInvalidCommand, fmt.Sprintf("Unknown command: %s", data.Name))
	}

	if err != nil {
		b.logger.LogError(err)
		resp = discord.NewErrorResponse(err)
	}

	if err := discord.SendResponse(s, i, resp); err != nil {
		b.logger.Error("responding to /%s: %v", data.Name, err)
	}
}

// handleMessage handles text commands
func (b *Bot) handleMessage(s discord.SessionHandler, m *discordgo.MessageCreate) {
	if m.Author != nil && m.Author.ID == s.BotUserID() {
		return
	}

	content := strings.TrimSpace(m.Content)
	command, args, _ := strings.Cut(content, " ")

	var resp *discord.Response
	var err error
	switch strings.ToLower(command) {
	case MessageRank:
		resp, err = b.rank(args)
	case MessageCompare:
		first, second, found := strings.Cut(args, "|")
		if !found {
			err = types.NewGameError(types.ErrInvalidArgument, "Separate the two hands with |")
			break
		}
		resp, err = b.compare(first, second)
	case MessageHelp:
		resp = discord.NewResponse(helpText)
	default:
		return
	}

	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	if err != nil {
		b.logger.LogError(err)
		resp = discord.NewErrorResponse(err)
	}

	if err := discord.SendChannelResponse(s, m.ChannelID, resp); err != nil {
		b.logger.LogError(err)
	}
}

func (b *Bot) rank(notation string) (*discord.Response, error) {
	cards, err := parseHand(notation)
	if err != nil {
		return nil, err
	}

	hand, err := b.showdown.Rank(cards)
	if err != nil {
		return nil, err
	}

	return discord.NewResponse("", handEmbed(hand)), nil
}

func (b *Bot) compare(first, second string) (*discord.Response, error) {
	firstCards, err := parseHand(first)
	if err != nil {
		return nil, err
	}
	secondCards, err := parseHand(second)
	if err != nil {
		return nil, err
	}

	outcome, err := b.showdown.Compare("discord", firstCards, secondCards)
	if err != nil {
		return nil, err
	}

	return discord.NewResponse("", outcomeEmbed(outcome)), nil
}

func parseHand(notation string) ([]entities.Card, error) {
	cards, err := entities.ParseCards(notation)
	if err != nil {
		return nil, types.FromEngineError(err)
	}
	return cards, nil
}

func optionValue(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func handEmbed(hand *poker.ClassifiedHand) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       hand.Category().String(),
		Description: display.FormatCards(hand.Cards()),
		Color:       discord.ColorInfo,
	}
}

func outcomeEmbed(outcome *showdown.Outcome) *discordgo.MessageEmbed {
	color := discord.ColorWin
	if outcome.Result == poker.Tie {
		color = discord.ColorTie
	}

	return &discordgo.MessageEmbed{
		Title: outcome.Summary(),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "First", Value: display.FormatHand(outcome.First), Inline: true},
			{Name: "Second", Value: display.FormatHand(outcome.Second), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: outcome.ID},
	}
}
