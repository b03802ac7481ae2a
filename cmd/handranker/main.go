package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fadedpez/handranker/internal/config"
	"github.com/fadedpez/handranker/internal/console"
	"github.com/fadedpez/handranker/internal/logging"
	"github.com/fadedpez/handranker/internal/types"
	"github.com/fadedpez/handranker/pkg/entities"
	"github.com/fadedpez/handranker/pkg/services/examples"
	"github.com/fadedpez/handranker/pkg/services/showdown"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	firstHand  string
	secondHand string
)

var rootCmd = &cobra.Command{
	Use:   "handranker",
	Short: "Classify and compare five card poker hands",
	Long: `handranker compares two five card poker hands given with --first and --second.
Without them it runs the built in example matchups for every category.

Cards are written rank then suit: Ah, 10c, Td, Q♠.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if firstHand != "" {
			return app.compare(firstHand, secondHand)
		}
		return app.examples(cmd.Context())
	},
}

var rankCmd = &cobra.Command{
	Use:          "rank CARDS...",
	Short:        "Classify a single hand",
	Example:      "handranker rank Ah Kh Qh Jh 10h",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.rank(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.Flags().StringVar(&firstHand, "first", "", "first hand, e.g. \"Qs Qc Qd 5s 3c\"")
	rootCmd.Flags().StringVar(&secondHand, "second", "", "second hand, e.g. \"5c 5h 5s Qd 10c\"")
	rootCmd.MarkFlagsRequiredTogether("first", "second")
	rootCmd.AddCommand(rankCmd)
}

type app struct {
	logger   *logging.Logger
	reporter *console.Reporter
	service  *showdown.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}

	logger := logging.NewLoggerWithWriter(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	reporter := console.NewReporter(os.Stdout)
	return &app{
		logger:   logger,
		reporter: reporter,
		service:  showdown.NewService(reporter, logger),
	}, nil
}

func (a *app) rank(notation string) error {
	cards, err := entities.ParseCards(notation)
	if err != nil {
		return types.FromEngineError(err)
	}
	hand, err := a.service.Rank(cards)
	if err != nil {
		return err
	}
	a.reporter.Hand(hand)
	return nil
}

func (a *app) compare(first, second string) error {
	firstCards, err := entities.ParseCards(first)
	if err != nil {
		return types.FromEngineError(err)
	}
	secondCards, err := entities.ParseCards(second)
	if err != nil {
		return types.FromEngineError(err)
	}

	outcome, err := a.service.Compare("command line", firstCards, secondCards)
	if err != nil {
		return err
	}
	a.reporter.Outcome(outcome)
	return nil
}

func (a *app) examples(ctx context.Context) error {
	matchups, err := examples.Generate()
	if err != nil {
		return err
	}
	_, err = a.service.Run(ctx, matchups)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
