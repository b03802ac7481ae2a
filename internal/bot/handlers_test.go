package bot

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/handranker/internal/config"
	"github.com/fadedpez/handranker/internal/discord"
	discordmock "github.com/fadedpez/handranker/internal/discord/mock"
	"github.com/fadedpez/handranker/internal/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	bot     *Bot
	session *discordmock.SessionHandler
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	s.session = &discordmock.SessionHandler{}
	s.session.Test(s.T())
	s.session.On("AddHandler", mock.Anything).Return(func() {})
	s.session.On("BotUserID").Return("bot-user").Maybe()

	s.bot = New(&config.Config{AppID: "test-app-id"}, s.session, logging.NewLogger(logging.ERROR))
}

func slashCommand(id, name string, options map[string]string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for key, value := range options {
		data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  key,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   id,
			Type: discordgo.InteractionApplicationCommand,
			Data: data,
		},
	}
}

func message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: "test_channel",
			Author:    &discordgo.User{ID: "player"},
		},
	}
}

func (s *HandlersTestSuite) expectInteractionEmbed(i *discordgo.InteractionCreate, match func(e *discordgo.MessageEmbed) bool) {
	s.session.On("InteractionRespond", i.Interaction, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Data.Flags == 0 && len(r.Data.Embeds) == 1 && match(r.Data.Embeds[0])
	})).Return(nil).Once()
}

func (s *HandlersTestSuite) expectInteractionError(i *discordgo.InteractionCreate, contains string) {
	s.session.On("InteractionRespond", i.Interaction, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Data.Flags == discordgo.MessageFlagsEphemeral && strings.Contains(r.Data.Content, contains)
	})).Return(nil).Once()
}

func (s *HandlersTestSuite) TestRankCommand() {
	// Setup
	i := slashCommand("i-1", CommandRank, map[string]string{OptionHand: "Ah Kh Qh Jh 10h"})
	s.expectInteractionEmbed(i, func(e *discordgo.MessageEmbed) bool {
		return e.Title == "Straight Flush" && e.Description == "A♥ K♥ Q♥ J♥ 10♥"
	})

	// Execute
	s.bot.handleInteraction(s.session, i)

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestRankCommandInvalidCard() {
	// Setup
	i := slashCommand("i-2", CommandRank, map[string]string{OptionHand: "Ah Kh Qh Jh 1h"})
	s.expectInteractionError(i, "Cards look like")

	// Execute
	s.bot.handleInteraction(s.session, i)

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestRankCommandWrongCardCount() {
	// Setup
	i := slashCommand("i-3", CommandRank, map[string]string{OptionHand: "Ah Kh Qh"})
	s.expectInteractionError(i, "exactly 5 cards")

	// Execute
	s.bot.handleInteraction(s.session, i)

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCompareCommand() {
	testCases := []struct {
		name   string
		first  string
		second string
		title  string
		color  int
	}{
		{
			name:   "first wins",
			first:  "Qs Qc Qd 5s 3c",
			second: "5c 5h 5s Qd 10c",
			title:  "Winner is the first hand",
			color:  discord.ColorWin,
		},
		{
			name:   "second wins over the wheel",
			first:  "Ac 5h 4d 3s 2c",
			second: "6d 5s 4d 3h 2c",
			title:  "Winner is the second hand",
			color:  discord.ColorWin,
		},
		{
			name:   "tie",
			first:  "Jc 10c 9c 8c 7c",
			second: "Jd 10d 9d 8d 7d",
			title:  "Result: Tie",
			color:  discord.ColorTie,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			i := slashCommand("compare-"+tc.name, CommandCompare, map[string]string{
				OptionFirst:  tc.first,
				OptionSecond: tc.second,
			})
			s.expectInteractionEmbed(i, func(e *discordgo.MessageEmbed) bool {
				return strings.HasPrefix(e.Title, tc.title) && e.Color == tc.color && len(e.Fields) == 2
			})

			// Execute
			s.bot.handleInteraction(s.session, i)

			// Assert
			s.session.AssertExpectations(s.T())
		})
	}
}

func (s *HandlersTestSuite) TestUnknownCommand() {
	// Setup
	i := slashCommand("i-4", "holdem", nil)
	s.expectInteractionError(i, "Unknown command: holdem")

	// Execute
	s.bot.handleInteraction(s.session, i)

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestDuplicateInteractionIsIgnored() {
	// Setup
	i := slashCommand("i-5", CommandRank, map[string]string{OptionHand: "2c 2d 5h 9s Kd"})
	s.expectInteractionEmbed(i, func(e *discordgo.MessageEmbed) bool {
		return e.Title == "Pair"
	})

	// Execute
	s.bot.handleInteraction(s.session, i)
	s.bot.handleInteraction(s.session, i)

	// Assert
	s.session.AssertNumberOfCalls(s.T(), "InteractionRespond", 1)
}

func (s *HandlersTestSuite) TestRankMessage() {
	// Setup
	s.session.On("ChannelMessageSendComplex", "test_channel", mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return len(m.Embeds) == 1 && m.Embeds[0].Title == "Full House"
	})).Return(&discordgo.Message{}, nil).Once()

	// Execute
	s.bot.handleMessage(s.session, message("!rank 10s 10h 10d 4s 4d"))

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCompareMessage() {
	// Setup
	s.session.On("ChannelMessageSendComplex", "test_channel", mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return len(m.Embeds) == 1 && strings.HasPrefix(m.Embeds[0].Title, "Winner is the first hand")
	})).Return(&discordgo.Message{}, nil).Once()

	// Execute
	s.bot.handleMessage(s.session, message("!compare Kh Kd 2c 2d Jh | Jd Js 10s 10c 9s"))

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCompareMessageWithoutSeparator() {
	// Setup
	s.session.On("ChannelMessageSendComplex", "test_channel", mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return strings.Contains(m.Content, "Separate the two hands with |")
	})).Return(&discordgo.Message{}, nil).Once()

	// Execute
	s.bot.handleMessage(s.session, message("!compare Kh Kd 2c 2d Jh Jd Js 10s 10c 9s"))

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestHelpMessage() {
	// Setup
	s.session.On("ChannelMessageSendComplex", "test_channel", mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return m.Content == helpText
	})).Return(&discordgo.Message{}, nil).Once()

	// Execute
	s.bot.handleMessage(s.session, message("!help"))

	// Assert
	s.session.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestUnknownMessage() {
	// Execute
	s.bot.handleMessage(s.session, message("hello there"))

	// Assert
	s.session.AssertNotCalled(s.T(), "ChannelMessageSendComplex", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestOwnMessagesAreIgnored() {
	// Setup
	m := message("!help")
	m.Author.ID = "bot-user"

	// Execute
	s.bot.handleMessage(s.session, m)

	// Assert
	s.session.AssertNotCalled(s.T(), "ChannelMessageSendComplex", mock.Anything, mock.Anything)
}
