package poker

import (
	"fmt"

	"github.com/fadedpez/handranker/pkg/entities"
)

// Number of distinct ranks that narrows a hand down to its candidates
const (
	fiveOfAKind            = 1
	fullHouseOrFourOfAKind = 2
	twoPairOrThreeOfAKind  = 3
	onePair                = 4
	unpaired               = 5
)

// Classify determines the category and repetition groups of a hand. It is
// pure: classifying the same hand again yields an equal result.
func Classify(h *Hand) (*ClassifiedHand, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil hand", ErrInvalidCardinality)
	}

	groups, distinct, err := buildGroups(h.cards)
	if err != nil {
		return nil, err
	}

	classified := &ClassifiedHand{
		cards:  h.cards,
		groups: groups,
	}

	switch distinct {
	case fullHouseOrFourOfAKind:
		if len(groups.Quads) > 0 {
			classified.category = FourOfAKind
		} else {
			classified.category = FullHouse
		}
	case twoPairOrThreeOfAKind:
		if len(groups.Trips) > 0 {
			classified.category = ThreeOfAKind
		} else {
			classified.category = TwoPair
		}
	case onePair:
		classified.category = OnePair
	case unpaired:
		classified.category = classifyUnpaired(h.cards)
		if (classified.category == Straight || classified.category == StraightFlush) && isAceLowStraight(h.cards) {
			classified.playAceLow()
		}
	case fiveOfAKind:
		return nil, fmt.Errorf("%w: five of a kind", ErrImpossibleRepetition)
	default:
		return nil, fmt.Errorf("%w: %d distinct ranks", ErrImpossibleRepetition, distinct)
	}

	return classified, nil
}

// MustClassify is like Classify but panics on error. It is meant for fixed
// hands known to be valid.
func MustClassify(h *Hand) *ClassifiedHand {
	classified, err := Classify(h)
	if err != nil {
		panic(err)
	}
	return classified
}

// classifyUnpaired decides between the four categories open to a hand of
// five distinct ranks. Straight flush must be tested before its parts.
func classifyUnpaired(cards [HandSize]entities.Card) Category {
	flush := isFlush(cards)
	straight := isStraight(cards)

	switch {
	case flush && straight:
		return StraightFlush
	case flush:
		return Flush
	case straight:
		return Straight
	}
	return HighCard
}

func isFlush(cards [HandSize]entities.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight expects cards sorted from highest rank to lowest
func isStraight(cards [HandSize]entities.Card) bool {
	consecutive := true
	for i := 1; i < HandSize; i++ {
		if cards[i-1].Rank != cards[i].Rank+1 {
			consecutive = false
			break
		}
	}
	return consecutive || isAceLowStraight(cards)
}

// isAceLowStraight expects cards sorted from highest rank to lowest
func isAceLowStraight(cards [HandSize]entities.Card) bool {
	wheel := [HandSize]entities.Rank{entities.Ace, entities.Five, entities.Four, entities.Three, entities.Two}
	for i, card := range cards {
		if card.Rank != wheel[i] {
			return false
		}
	}
	return true
}

// playAceLow moves the ace behind the five so that positional comparison
// treats it as the lowest card. The singles group follows the same order.
func (c *ClassifiedHand) playAceLow() {
	ace := c.cards[0]
	copy(c.cards[:HandSize-1], c.cards[1:])
	c.cards[HandSize-1] = ace

	singles := make([]entities.Rank, 0, HandSize)
	for i := HandSize - 1; i >= 0; i-- {
		singles = append(singles, c.cards[i].Rank)
	}
	c.groups.Singles = singles
}
