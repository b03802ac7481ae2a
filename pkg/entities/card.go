package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRank     = errors.New("invalid rank")
	ErrInvalidSuit     = errors.New("invalid suit")
	ErrInvalidNotation = errors.New("invalid card notation")
)

// Suit represents a card suit. Suits carry no ordering.

type Suit int

const (
	InvalidSuit Suit = iota
	Club
	Spade
	Heart
	Diamond
)

// Suits lists every valid suit
var Suits = []Suit{Club, Spade, Heart, Diamond}

// Valid reports whether the suit is one of the four real suits
func (s Suit) Valid() bool {
	return s >= Club && s <= Diamond
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	}
	return "?"
}

// String returns the name of the suit
func (s Suit) String() string {
	switch s {
	case Club:
		return "Club"
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	}
	return "Invalid"
}

// Rank represents a card rank, weighted 2 through 14

type Rank int

const (
	InvalidRank Rank = 0
	Two         Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every valid rank, lowest first
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether the rank is within 2..14
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Short returns the one or two character notation for the rank
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// String returns the name of the rank
func (r Rank) String() string {
	names := map[Rank]string{
		Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
		Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
		Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
	}
	if name, ok := names[r]; ok {
		return name
	}
	return "Invalid"
}

// Card represents a playing card

type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card

func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// Valid reports whether both the rank and the suit are valid
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Validate returns an error describing the first invalid field of the card
func (c Card) Validate() error {
	if !c.Rank.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRank, int(c.Rank))
	}
	if !c.Suit.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSuit, int(c.Suit))
	}
	return nil
}

// Compare orders two cards by rank only. It returns 1 when c is higher,
// -1 when other is higher and 0 when the ranks match.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank > other.Rank:
		return 1
	case c.Rank < other.Rank:
		return -1
	}
	return 0
}

// String returns the string representation of the card

func (c Card) String() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

var suitNotation = map[string]Suit{
	"c": Club, "♣": Club,
	"s": Spade, "♠": Spade,
	"h": Heart, "♥": Heart,
	"d": Diamond, "♦": Diamond,
}

var rankNotation = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "t": Ten,
	"j": Jack, "q": Queen, "k": King, "a": Ace,
}

// ParseCard parses notation such as "Ah", "10c", "Td" or "Q♠"
func ParseCard(notation string) (Card, error) {
	text := strings.ToLower(strings.TrimSpace(notation))
	for symbol, suit := range suitNotation {
		if !strings.HasSuffix(text, symbol) {
			continue
		}
		rank, ok := rankNotation[strings.TrimSuffix(text, symbol)]
		if !ok {
			return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
		}
		return NewCard(rank, suit), nil
	}
	return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
}

// ParseCards parses a whitespace or comma separated list of cards
func ParseCards(notation string) ([]Card, error) {
	fields := strings.FieldsFunc(notation, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
