package poker

import (
	"fmt"
	"sort"

	"github.com/fadedpez/handranker/pkg/entities"
)

// Repetition is the number of times a rank occurs in a hand
type Repetition int

const (
	Singles Repetition = iota + 1
	Pairs
	Trips
	Quads
)

// String returns the name of the repetition group
func (r Repetition) String() string {
	switch r {
	case Singles:
		return "singles"
	case Pairs:
		return "pairs"
	case Trips:
		return "trips"
	case Quads:
		return "quads"
	}
	return "invalid"
}

// Groups holds the ranks of a hand partitioned by how often they occur.
// Each group is ordered lowest first.
type Groups struct {
	Singles []entities.Rank
	Pairs   []entities.Rank
	Trips   []entities.Rank
	Quads   []entities.Rank
}

// Of returns the group for a repetition
func (g Groups) Of(rep Repetition) ([]entities.Rank, bool) {
	switch rep {
	case Singles:
		return g.Singles, true
	case Pairs:
		return g.Pairs, true
	case Trips:
		return g.Trips, true
	case Quads:
		return g.Quads, true
	}
	return nil, false
}

// CardCount returns the number of cards the groups account for
func (g Groups) CardCount() int {
	return len(g.Singles) + 2*len(g.Pairs) + 3*len(g.Trips) + 4*len(g.Quads)
}

// Distinct returns the number of distinct ranks across all groups
func (g Groups) Distinct() int {
	return len(g.Singles) + len(g.Pairs) + len(g.Trips) + len(g.Quads)
}

func (g Groups) clone() Groups {
	return Groups{
		Singles: append([]entities.Rank(nil), g.Singles...),
		Pairs:   append([]entities.Rank(nil), g.Pairs...),
		Trips:   append([]entities.Rank(nil), g.Trips...),
		Quads:   append([]entities.Rank(nil), g.Quads...),
	}
}

// buildGroups counts each rank and routes it into its repetition group.
// It returns the groups and the number of distinct ranks.
func buildGroups(cards [HandSize]entities.Card) (Groups, int, error) {
	counts := make(map[entities.Rank]int, HandSize)
	for _, card := range cards {
		counts[card.Rank]++
	}

	var groups Groups
	for rank, count := range counts {
		switch Repetition(count) {
		case Singles:
			groups.Singles = append(groups.Singles, rank)
		case Pairs:
			groups.Pairs = append(groups.Pairs, rank)
		case Trips:
			groups.Trips = append(groups.Trips, rank)
		case Quads:
			groups.Quads = append(groups.Quads, rank)
		default:
			return Groups{}, 0, fmt.Errorf("%w: %s appears %d times", ErrImpossibleRepetition, rank, count)
		}
	}

	for _, group := range [][]entities.Rank{groups.Singles, groups.Pairs, groups.Trips, groups.Quads} {
		sortAscending(group)
	}

	return groups, len(counts), nil
}

func sortAscending(ranks []entities.Rank) {
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i] < ranks[j]
	})
}
