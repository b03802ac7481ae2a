package poker

import "fmt"

// RankHands classifies every hand, stopping at the first failure
func RankHands(hands []*Hand) ([]*ClassifiedHand, error) {
	ranked := make([]*ClassifiedHand, 0, len(hands))
	for i, h := range hands {
		classified, err := Classify(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		ranked = append(ranked, classified)
	}
	return ranked, nil
}

// CompareAll compares consecutive pairs of hands: 0 with 1, 2 with 3 and so
// on. It returns one result per pair.
func CompareAll(hands []*ClassifiedHand) ([]Result, error) {
	if len(hands)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d hands", ErrUnpairedHand, len(hands))
	}

	results := make([]Result, 0, len(hands)/2)
	for i := 0; i < len(hands); i += 2 {
		result, err := Compare(hands[i], hands[i+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i/2, err)
		}
		results = append(results, result)
	}
	return results, nil
}
