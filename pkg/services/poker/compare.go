package poker

import (
	"fmt"

	"github.com/fadedpez/handranker/pkg/entities"
)

// tieBreaks lists, for each category, the repetition groups consulted in
// order when both hands share that category.
var tieBreaks = map[Category][]Repetition{
	StraightFlush: {Singles},
	FourOfAKind:   {Quads, Singles},
	FullHouse:     {Trips, Pairs},
	Flush:         {Singles},
	Straight:      {Singles},
	ThreeOfAKind:  {Trips, Singles},
	TwoPair:       {Pairs, Singles},
	OnePair:       {Pairs, Singles},
	HighCard:      {Singles},
}

// TieBreaks returns the repetition groups consulted for a category
func TieBreaks(category Category) ([]Repetition, error) {
	order, ok := tieBreaks[category]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(category))
	}
	return append([]Repetition(nil), order...), nil
}

// Compare ranks two classified hands. The stronger category wins outright;
// equal categories fall through to the category's tie-break groups.
func Compare(first, second *ClassifiedHand) (Result, error) {
	if first == nil || second == nil || !first.category.Valid() || !second.category.Valid() {
		return InvalidResult, ErrUnclassifiedHand
	}

	switch {
	case first.category > second.category:
		return FirstWins, nil
	case first.category < second.category:
		return SecondWins, nil
	}

	return compareSameCategory(first, second)
}

func compareSameCategory(first, second *ClassifiedHand) (Result, error) {
	order, err := TieBreaks(first.category)
	if err != nil {
		return InvalidResult, err
	}

	for _, rep := range order {
		firstGroup, _ := first.groups.Of(rep)
		secondGroup, _ := second.groups.Of(rep)

		result, err := CompareGroups(firstGroup, secondGroup)
		if err != nil {
			return InvalidResult, fmt.Errorf("%s %s: %w", first.category, rep, err)
		}
		if result != Tie {
			return result, nil
		}
	}

	return Tie, nil
}

// CompareGroups compares two ascending rank groups of equal length from the
// highest position down. The first differing rank decides.
func CompareGroups(first, second []entities.Rank) (Result, error) {
	if len(first) != len(second) {
		return InvalidResult, fmt.Errorf("%w: %d vs %d ranks", ErrGroupMismatch, len(first), len(second))
	}

	for i := len(first) - 1; i >= 0; i-- {
		if result := CompareRanks(first[i], second[i]); result != Tie {
			return result, nil
		}
	}
	return Tie, nil
}

// CompareRanks compares two ranks by value
func CompareRanks(first, second entities.Rank) Result {
	switch {
	case first > second:
		return FirstWins
	case first < second:
		return SecondWins
	}
	return Tie
}
