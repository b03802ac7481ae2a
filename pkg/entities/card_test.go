package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestRankWeights() {
	s.Equal(2, int(Two))
	s.Equal(10, int(Ten))
	s.Equal(11, int(Jack))
	s.Equal(12, int(Queen))
	s.Equal(13, int(King))
	s.Equal(14, int(Ace))
	s.Len(Ranks, 13)

	for i := 1; i < len(Ranks); i++ {
		s.Equal(Ranks[i-1]+1, Ranks[i], "Ranks should be consecutive")
	}
}

func (s *CardTestSuite) TestValidity() {
	s.False(InvalidRank.Valid())
	s.False(Rank(1).Valid())
	s.False(Rank(15).Valid())
	s.False(InvalidSuit.Valid())
	s.False(Suit(5).Valid())

	var zero Card
	s.False(zero.Valid(), "Zero value card should be invalid")
	s.ErrorIs(zero.Validate(), ErrInvalidRank)
	s.ErrorIs(NewCard(Ace, InvalidSuit).Validate(), ErrInvalidSuit)
	s.NoError(NewCard(Ace, Spade).Validate())
}

func (s *CardTestSuite) TestCompareIgnoresSuit() {
	testCases := []struct {
		name     string
		first    Card
		second   Card
		expected int
	}{
		{
			name:     "higher rank wins",
			first:    NewCard(King, Club),
			second:   NewCard(Queen, Diamond),
			expected: 1,
		},
		{
			name:     "lower rank loses",
			first:    NewCard(Two, Spade),
			second:   NewCard(Three, Spade),
			expected: -1,
		},
		{
			name:     "same rank different suit ties",
			first:    NewCard(Ace, Heart),
			second:   NewCard(Ace, Club),
			expected: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.first.Compare(tc.second))
		})
	}
}

func (s *CardTestSuite) TestCardString() {
	s.Equal("A♥", NewCard(Ace, Heart).String())
	s.Equal("10♦", NewCard(Ten, Diamond).String())
	s.Equal("K♣", NewCard(King, Club).String())
	s.Equal("2♠", NewCard(Two, Spade).String())
}

func (s *CardTestSuite) TestParseCard() {
	testCases := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "ace of hearts", input: "Ah", expected: NewCard(Ace, Heart)},
		{name: "ten numeric", input: "10c", expected: NewCard(Ten, Club)},
		{name: "ten letter", input: "Td", expected: NewCard(Ten, Diamond)},
		{name: "lower case", input: "qs", expected: NewCard(Queen, Spade)},
		{name: "suit symbol", input: "J♠", expected: NewCard(Jack, Spade)},
		{name: "padded", input: "  5h ", expected: NewCard(Five, Heart)},
		{name: "unknown suit", input: "Ax", wantErr: true},
		{name: "unknown rank", input: "1c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidNotation)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, card)
		})
	}
}

func (s *CardTestSuite) TestParseCards() {
	cards, err := ParseCards("Ah, Kh Qh\tJh 10h")
	s.Require().NoError(err)
	s.Equal([]Card{
		NewCard(Ace, Heart),
		NewCard(King, Heart),
		NewCard(Queen, Heart),
		NewCard(Jack, Heart),
		NewCard(Ten, Heart),
	}, cards)

	_, err = ParseCards("Ah Zz")
	s.ErrorIs(err, ErrInvalidNotation)
}

func (s *CardTestSuite) TestNewDeck() {
	deck := NewDeck()
	s.Len(deck.Cards, 52, "Deck should have 52 cards")

	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		s.True(card.Valid())
		s.False(seen[card], "Card %v should appear exactly once", card)
		seen[card] = true
	}
	s.True(deck.Contains(NewCard(Ace, Spade)))
	s.False(deck.Contains(Card{}))
}
