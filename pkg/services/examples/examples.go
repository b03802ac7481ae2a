package examples

import (
	"fmt"

	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/poker"
	"github.com/google/uuid"
)

// Matchup is a pair of demonstration hands and the result they should produce
type Matchup struct {
	ID       string
	Title    string
	First    []entities.Card
	Second   []entities.Card
	Expected poker.Result
}

type fixture struct {
	first    string
	second   string
	expected poker.Result
}

type section struct {
	title    string
	fixtures []fixture
}

// sections are listed strongest category first
var sections = []section{
	{
		title: "Straight Flush",
		fixtures: []fixture{
			{first: "7h 6h 5h 4h 3h", second: "5s 4s 3s 2s As", expected: poker.FirstWins},
			{first: "Jc 10c 9c 8c 7c", second: "Jd 10d 9d 8d 7d", expected: poker.Tie},
		},
	},
	{
		title: "Straight Flush And Four Of A Kind",
		fixtures: []fixture{
			{first: "Jd 10d 9d 8d 7d", second: "10c 10d 10h 10s 5d", expected: poker.FirstWins},
		},
	},
	{
		title: "Four Of A Kind",
		fixtures: []fixture{
			{first: "10c 10d 10h 10s 5d", second: "6d 6h 6s 6c 5s", expected: poker.FirstWins},
			{first: "10c 10d 10h 10s Qc", second: "10c 10d 10h 10s 5d", expected: poker.FirstWins},
		},
	},
	{
		title: "Full House",
		fixtures: []fixture{
			{first: "10s 10h 10d 4s 4d", second: "9h 9c 9s Ah Ac", expected: poker.FirstWins},
			{first: "As Ac Ah 4d 4c", second: "As Ah Ad 3s 3d", expected: poker.FirstWins},
		},
	},
	{
		title: "Flush",
		fixtures: []fixture{
			{first: "Ah Qh 10h 5h 3h", second: "Ks Qs Js 9s 6s", expected: poker.FirstWins},
			{first: "Ad Kd 7d 6d 2d", second: "Ah Qh 10h 5h 3h", expected: poker.FirstWins},
		},
	},
	{
		title: "Straight",
		fixtures: []fixture{
			{first: "8s 7s 6h 5h 4s", second: "6d 5s 4d 3h 2c", expected: poker.FirstWins},
			{first: "8s 7s 6h 5h 4s", second: "8h 7d 6c 5c 4h", expected: poker.Tie},
			{first: "Ac 5h 4d 3s 2c", second: "6d 5s 4d 3h 2c", expected: poker.SecondWins},
		},
	},
	{
		title: "Three Of A Kind",
		fixtures: []fixture{
			{first: "Qs Qc Qd 5s 3c", second: "5c 5h 5d Qd 10c", expected: poker.FirstWins},
			{first: "8c 8h 8d Ac 2d", second: "8s 8h 8d 5s 3c", expected: poker.FirstWins},
		},
	},
	{
		title: "Two Pair",
		fixtures: []fixture{
			{first: "Kh Kd 2c 2d Jh", second: "Jd Js 10s 10c 9s", expected: poker.FirstWins},
			{first: "9c 9d 7d 7s 6h", second: "9h 9s 5h 5d Kc", expected: poker.FirstWins},
			{first: "4s 4c 3s 3h Kd", second: "4h 4d 3d 3c 10s", expected: poker.FirstWins},
		},
	},
	{
		title: "One Pair",
		fixtures: []fixture{
			{first: "10c 10s 6s 4h 2h", second: "9h 9c Ah Qd 10d", expected: poker.FirstWins},
			{first: "2d 2h 8s 5c 4c", second: "2c 2s 8c 5h 3h", expected: poker.FirstWins},
		},
	},
	{
		title: "High Card",
		fixtures: []fixture{
			{first: "Ad 10d 9s 5c 4c", second: "Kc Qd Jc 8h 7h", expected: poker.FirstWins},
			{first: "Ac Qc 7d 5h 2c", second: "Ad 10d 9s 5c 4c", expected: poker.FirstWins},
		},
	},
}

// Generate builds the demonstration matchups. Every call assigns fresh IDs.
func Generate() ([]Matchup, error) {
	var matchups []Matchup
	for _, sec := range sections {
		for i, fx := range sec.fixtures {
			first, err := entities.ParseCards(fx.first)
			if err != nil {
				return nil, fmt.Errorf("%s #%d first hand: %w", sec.title, i+1, err)
			}
			second, err := entities.ParseCards(fx.second)
			if err != nil {
				return nil, fmt.Errorf("%s #%d second hand: %w", sec.title, i+1, err)
			}

			matchups = append(matchups, Matchup{
				ID:       uuid.New().String(),
				Title:    sec.title,
				First:    first,
				Second:   second,
				Expected: fx.expected,
			})
		}
	}
	return matchups, nil
}

// Titles returns the section titles in generation order
func Titles() []string {
	titles := make([]string, 0, len(sections))
	for _, sec := range sections {
		titles = append(titles, sec.title)
	}
	return titles
}
