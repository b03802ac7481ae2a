package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command and option names
const (
	CommandRank    = "rank"
	CommandCompare = "compare"

	OptionHand   = "hand"
	OptionFirst  = "first"
	OptionSecond = "second"
)

// Message command prefixes
const (
	MessageRank    = "!rank"
	MessageCompare = "!compare"
	MessageHelp    = "!help"
)

// Commands defines all slash commands for the bot
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        CommandRank,
		Description: "Classify a five card poker hand",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionHand,
				Description: "Five cards, e.g. Ah Kh Qh Jh 10h",
				Required:    true,
			},
		},
	},
	{
		Name:        CommandCompare,
		Description: "Find out which of two poker hands wins",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionFirst,
				Description: "The first hand, e.g. Qs Qc Qd 5s 3c",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionSecond,
				Description: "The second hand, e.g. 5c 5h 5s Qd 10c",
				Required:    true,
			},
		},
	},
}

const helpText = "Available commands:\n" +
	"- `/rank hand:` or `!rank Ah Kh Qh Jh 10h`\n" +
	"- `/compare first: second:` or `!compare Ah Kh Qh Jh 10h | 2c 3c 4c 5c 6c`\n" +
	"- `!help`"
