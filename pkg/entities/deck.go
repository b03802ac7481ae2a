package entities

// Deck is an ordered set of the 52 distinct cards of a standard deck.
// Dealing and shuffling live with the callers that need them.
type Deck struct {
	Cards []Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))

	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return &Deck{Cards: cards}
}

// Contains reports whether the card is present in the deck
func (d *Deck) Contains(card Card) bool {
	for _, c := range d.Cards {
		if c == card {
			return true
		}
	}
	return false
}
