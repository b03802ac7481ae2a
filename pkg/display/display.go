package display

import (
	"fmt"
	"strings"

	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/poker"
)

// FormatCard renders a card as rank and suit symbol, e.g. "10♣"
func FormatCard(card entities.Card) string {
	return card.String()
}

// FormatCards renders cards separated by spaces
func FormatCards(cards []entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, FormatCard(card))
	}
	return strings.Join(parts, " ")
}

// FormatHand renders a classified hand followed by its category
func FormatHand(hand *poker.ClassifiedHand) string {
	return fmt.Sprintf("%s (%s)", FormatCards(hand.Cards()), hand.Category())
}

// FormatResult describes the outcome of a comparison
func FormatResult(first, second *poker.ClassifiedHand, result poker.Result) string {
	switch result {
	case poker.FirstWins:
		return "Winner is the first hand: " + FormatHand(first)
	case poker.SecondWins:
		return "Winner is the second hand: " + FormatHand(second)
	case poker.Tie:
		return "Result: Tie"
	}
	return "Result: unknown"
}

// Legend lists the value used for each rank when comparing hands
func Legend() []string {
	lines := make([]string, 0, len(entities.Ranks))
	for _, rank := range entities.Ranks {
		lines = append(lines, fmt.Sprintf("%2d %s", int(rank), rank))
	}
	return lines
}
