package console

import (
	"bytes"
	"testing"

	"github.com/fadedpez/handranker/pkg/display"
	"github.com/fadedpez/handranker/pkg/services/poker"
	"github.com/fadedpez/handranker/pkg/services/showdown"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"
)

type ReporterTestSuite struct {
	suite.Suite
	out      *bytes.Buffer
	reporter *Reporter
}

func TestReporterSuite(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupSuite() {
	pterm.DisableStyling()
}

func (s *ReporterTestSuite) TearDownSuite() {
	pterm.EnableStyling()
}

func (s *ReporterTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.reporter = NewReporter(s.out)
}

func (s *ReporterTestSuite) classify(notation string) *poker.ClassifiedHand {
	h, err := poker.ParseHand(notation)
	s.Require().NoError(err)
	return poker.MustClassify(h)
}

func (s *ReporterTestSuite) TestLegend() {
	// Execute
	s.reporter.Legend(display.Legend())

	// Assert
	output := s.out.String()
	s.Contains(output, "Rank values")
	s.Contains(output, " 2 Two")
	s.Contains(output, "14 Ace")
}

func (s *ReporterTestSuite) TestSection() {
	// Execute
	s.reporter.Section("Full House")

	// Assert
	s.Contains(s.out.String(), "Full House")
}

func (s *ReporterTestSuite) TestOutcome() {
	// Setup
	outcome := &showdown.Outcome{
		ID:     "outcome-1",
		First:  s.classify("Ac 5h 4d 3s 2c"),
		Second: s.classify("6d 5s 4d 3h 2c"),
		Result: poker.SecondWins,
	}

	// Execute
	s.reporter.Outcome(outcome)

	// Assert
	output := s.out.String()
	s.Contains(output, "5♥ 4♦ 3♠ 2♣ A♣")
	s.Contains(output, "Straight")
	s.Contains(output, "Winner is the second hand: 6♦ 5♠ 4♦ 3♥ 2♣ (Straight)")
}

func (s *ReporterTestSuite) TestOutcomeTie() {
	// Setup
	outcome := &showdown.Outcome{
		First:  s.classify("Jc 10c 9c 8c 7c"),
		Second: s.classify("Jd 10d 9d 8d 7d"),
		Result: poker.Tie,
	}

	// Execute
	s.reporter.Outcome(outcome)

	// Assert
	s.Contains(s.out.String(), "Result: Tie")
}

func (s *ReporterTestSuite) TestHand() {
	// Execute
	s.reporter.Hand(s.classify("9h 9c 9s Ah Ac"))

	// Assert
	s.Equal("Full House: A♥ A♣ 9♥ 9♣ 9♠\n", s.out.String())
}
