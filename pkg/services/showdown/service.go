package showdown

import (
	"context"

	"github.com/fadedpez/handranker/internal/logging"
	"github.com/fadedpez/handranker/internal/types"
	"github.com/fadedpez/handranker/pkg/display"
	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/examples"
	"github.com/fadedpez/handranker/pkg/services/poker"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mock_reporter.go -package=showdown

// Reporter receives everything a showdown produces, in order
type Reporter interface {
	// Legend receives the rank value legend before any comparison
	Legend(lines []string)

	// Section is called when the matchup title changes
	Section(title string)

	// Outcome receives each finished comparison
	Outcome(outcome *Outcome)
}

// Outcome is a single compared pair of hands
type Outcome struct {
	ID     string
	Title  string
	First  *poker.ClassifiedHand
	Second *poker.ClassifiedHand
	Result poker.Result
}

// Summary describes the outcome in one line
func (o *Outcome) Summary() string {
	return display.FormatResult(o.First, o.Second, o.Result)
}

// Service classifies and compares hands and reports the results
type Service struct {
	reporter Reporter
	logger   *logging.Logger
}

// NewService creates a showdown service
func NewService(reporter Reporter, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		reporter: reporter,
		logger:   logger,
	}
}

// Rank classifies a single hand. Failures are returned as GameErrors.
func (s *Service) Rank(cards []entities.Card) (*poker.ClassifiedHand, error) {
	h, err := poker.NewHand(cards...)
	if err != nil {
		return nil, types.FromEngineError(err)
	}
	classified, err := poker.Classify(h)
	if err != nil {
		return nil, types.FromEngineError(err)
	}
	return classified, nil
}

// Compare ranks two hands against each other under a fresh outcome ID
func (s *Service) Compare(title string, first, second []entities.Card) (*Outcome, error) {
	return s.compare(uuid.New().String(), title, first, second)
}

func (s *Service) compare(id, title string, first, second []entities.Card) (*Outcome, error) {
	logger := s.logger.With("outcome", id)

	firstHand, err := s.Rank(first)
	if err != nil {
		return nil, err
	}
	secondHand, err := s.Rank(second)
	if err != nil {
		return nil, err
	}

	result, err := poker.Compare(firstHand, secondHand)
	if err != nil {
		return nil, types.FromEngineError(err)
	}

	logger.Debug("%s vs %s: %s", display.FormatHand(firstHand), display.FormatHand(secondHand), result)

	return &Outcome{
		ID:     id,
		Title:  title,
		First:  firstHand,
		Second: secondHand,
		Result: result,
	}, nil
}

// Run reports the legend and then every matchup in order. It stops at the
// first failure or when ctx is cancelled.
func (s *Service) Run(ctx context.Context, matchups []examples.Matchup) ([]*Outcome, error) {
	s.reporter.Legend(display.Legend())

	outcomes := make([]*Outcome, 0, len(matchups))
	title := ""
	for _, m := range matchups {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		if m.Title != title {
			title = m.Title
			s.reporter.Section(title)
		}

		outcome, err := s.compare(m.ID, m.Title, m.First, m.Second)
		if err != nil {
			s.logger.LogError(err)
			return outcomes, err
		}

		if m.Expected.Valid() && m.Expected != outcome.Result {
			s.logger.Warn("matchup %s (%s) expected %s but got %s", m.ID, m.Title, m.Expected, outcome.Result)
		}

		s.reporter.Outcome(outcome)
		outcomes = append(outcomes, outcome)
	}

	s.logger.Info("compared %d matchups", len(outcomes))
	return outcomes, nil
}
