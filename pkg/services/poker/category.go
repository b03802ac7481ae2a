package poker

// Category is the strength class of a five card hand. Categories are
// totally ordered from HighCard up to StraightFlush.
type Category int

const (
	InvalidCategory Category = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every valid category, weakest first
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush,
}

var categoryNames = map[Category]string{
	HighCard:      "High Card",
	OnePair:       "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

// Valid reports whether the category is one of the nine real categories
func (c Category) Valid() bool {
	return c >= HighCard && c <= StraightFlush
}

// String returns the display name of the category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Invalid"
}

// Result is the outcome of comparing two hands
type Result int

const (
	InvalidResult Result = iota
	FirstWins
	SecondWins
	Tie
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case FirstWins:
		return "FIRST_WINS"
	case SecondWins:
		return "SECOND_WINS"
	case Tie:
		return "TIE"
	}
	return "INVALID"
}

// Valid reports whether the result is one of the three outcomes
func (r Result) Valid() bool {
	return r >= FirstWins && r <= Tie
}

// Reverse returns the result seen from the other hand's side
func (r Result) Reverse() Result {
	switch r {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	}
	return r
}
