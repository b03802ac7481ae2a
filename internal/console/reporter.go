package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/handranker/pkg/display"
	"github.com/fadedpez/handranker/pkg/services/poker"
	"github.com/fadedpez/handranker/pkg/services/showdown"
	"github.com/pterm/pterm"
)

// Reporter renders showdown results to a terminal
type Reporter struct {
	w io.Writer
}

var _ showdown.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Legend prints the rank values in a box
func (r *Reporter) Legend(lines []string) {
	box := pterm.DefaultBox.
		WithTitle(pterm.LightYellow("Rank values")).
		WithTitleTopCenter().
		WithHorizontalPadding(2)
	fmt.Fprintln(r.w, box.Sprint(strings.Join(lines, "\n")))
}

// Section prints a heading for a group of matchups
func (r *Reporter) Section(title string) {
	fmt.Fprint(r.w, pterm.DefaultSection.Sprint(title))
}

// Outcome prints both hands and the winner
func (r *Reporter) Outcome(outcome *showdown.Outcome) {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"", "Cards", "Category"},
		{"First", display.FormatCards(outcome.First.Cards()), outcome.First.Category().String()},
		{"Second", display.FormatCards(outcome.Second.Cards()), outcome.Second.Category().String()},
	}).Srender()
	if err != nil {
		table = display.FormatHand(outcome.First) + "\n" + display.FormatHand(outcome.Second)
	}

	fmt.Fprintln(r.w, table)
	fmt.Fprintln(r.w, resultStyle(outcome.Result).Sprint(outcome.Summary()))
	fmt.Fprintln(r.w)
}

// Hand prints a single classified hand
func (r *Reporter) Hand(hand *poker.ClassifiedHand) {
	fmt.Fprintln(r.w, pterm.LightCyan(hand.Category().String())+": "+display.FormatCards(hand.Cards()))
}

func resultStyle(result poker.Result) *pterm.Style {
	switch result {
	case poker.FirstWins, poker.SecondWins:
		return pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)
	case poker.Tie:
		return pterm.NewStyle(pterm.FgLightYellow)
	}
	return pterm.NewStyle(pterm.FgLightRed)
}
