package poker

import (
	"fmt"
	"sort"

	"github.com/fadedpez/handranker/pkg/entities"
)

// HandSize is the number of cards in every poker hand
const HandSize = 5

// Hand is an unclassified set of exactly five cards, kept sorted from the
// highest rank to the lowest.
type Hand struct {
	cards [HandSize]entities.Card
}

// NewHand creates a hand from exactly five valid cards
func NewHand(cards ...entities.Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardinality, len(cards))
	}

	h := &Hand{}
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("%w at position %d: %v", ErrInvalidCard, i, err)
		}
		h.cards[i] = card
	}

	sort.SliceStable(h.cards[:], func(i, j int) bool {
		return h.cards[i].Rank > h.cards[j].Rank
	})

	return h, nil
}

// ParseHand builds a hand from card notation such as "Ah Kh Qh Jh 10h"
func ParseHand(notation string) (*Hand, error) {
	cards, err := entities.ParseCards(notation)
	if err != nil {
		return nil, err
	}
	return NewHand(cards...)
}

// Cards returns a copy of the hand's cards
func (h *Hand) Cards() []entities.Card {
	cards := make([]entities.Card, HandSize)
	copy(cards, h.cards[:])
	return cards
}

// Card returns the card at index and true, or false when the index is
// outside 0..4.
func (h *Hand) Card(index int) (entities.Card, bool) {
	if index < 0 || index >= HandSize {
		return entities.Card{}, false
	}
	return h.cards[index], true
}

// ClassifiedHand is the immutable result of classifying a Hand
type ClassifiedHand struct {
	cards    [HandSize]entities.Card
	category Category
	groups   Groups
}

// Cards returns a copy of the cards in comparison order. An ace-low
// straight is ordered 5, 4, 3, 2, A.
func (c *ClassifiedHand) Cards() []entities.Card {
	cards := make([]entities.Card, HandSize)
	copy(cards, c.cards[:])
	return cards
}

// Card returns the card at index and true, or false when the index is
// outside 0..4.
func (c *ClassifiedHand) Card(index int) (entities.Card, bool) {
	if index < 0 || index >= HandSize {
		return entities.Card{}, false
	}
	return c.cards[index], true
}

// Category returns the hand's category
func (c *ClassifiedHand) Category() Category {
	return c.category
}

// Groups returns a copy of the hand's repetition groups
func (c *ClassifiedHand) Groups() Groups {
	return c.groups.clone()
}

// IsAceLow reports whether the hand is a straight or straight flush played
// with the ace as its lowest card.
func (c *ClassifiedHand) IsAceLow() bool {
	return (c.category == Straight || c.category == StraightFlush) &&
		c.cards[HandSize-1].Rank == entities.Ace
}

// String returns the cards followed by the category
func (c *ClassifiedHand) String() string {
	text := ""
	for _, card := range c.cards {
		text += card.String() + " "
	}
	return fmt.Sprintf("%s(%s)", text, c.category)
}
