package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/handranker/internal/types"
)

// ResponseEmoji maps error codes to appropriate emojis
var ResponseEmoji = map[types.ErrorCode]string{
	types.ErrInvalidCard:     "🃏",
	types.ErrInvalidHand:     "✋",
	types.ErrImpossibleHand:  "🤨",
	types.ErrInvalidArgument: "❗",
	types.ErrInvalidCommand:  "⛔",
	types.ErrInternalError:   "💥",
	types.ErrNetworkError:    "🌐",
}

// Embed colors
const (
	ColorWin  = 0x2ecc71
	ColorTie  = 0xf1c40f
	ColorInfo = 0x3498db
)

// Response represents a Discord reply
type Response struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Ephemeral bool
}

// NewResponse creates a new Response
func NewResponse(content string, embeds ...*discordgo.MessageEmbed) *Response {
	return &Response{
		Content: content,
		Embeds:  embeds,
	}
}

// NewEphemeralResponse creates a new ephemeral Response (only visible to the user)
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewErrorResponse creates a new error Response
func NewErrorResponse(err error) *Response {
	if err == nil {
		return NewEphemeralResponse("❌ An error occurred")
	}

	gameErr := types.FromEngineError(err)
	emoji := ResponseEmoji[gameErr.Code]
	if emoji == "" {
		emoji = "❌"
	}
	return NewEphemeralResponse(fmt.Sprintf("%s %s", emoji, gameErr.Message))
}

// SendResponse answers a Discord interaction
func SendResponse(s SessionHandler, i *discordgo.InteractionCreate, r *Response) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: r.Content,
			Embeds:  r.Embeds,
			Flags:   getFlags(r.Ephemeral),
		},
	})
}

// SendErrorResponse answers a Discord interaction with an error
func SendErrorResponse(s SessionHandler, i *discordgo.InteractionCreate, err error) error {
	return SendResponse(s, i, NewErrorResponse(err))
}

// SendChannelResponse posts a response to a channel. Ephemeral has no meaning
// outside interactions and is ignored.
func SendChannelResponse(s SessionHandler, channelID string, r *Response) error {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: r.Content,
		Embeds:  r.Embeds,
	})
	if err != nil {
		return types.WrapError(types.ErrNetworkError, "Failed to send message", err)
	}
	return nil
}

func getFlags(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}
