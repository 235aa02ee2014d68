package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avilla-dev/cursor-wrapped/internal/config"
	"github.com/avilla-dev/cursor-wrapped/internal/engine"
	"github.com/avilla-dev/cursor-wrapped/internal/logger"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/report"
	"github.com/avilla-dev/cursor-wrapped/internal/report/console"
	"github.com/avilla-dev/cursor-wrapped/internal/report/htmlpage"
	"github.com/avilla-dev/cursor-wrapped/internal/report/jsonfile"
	"github.com/avilla-dev/cursor-wrapped/internal/source"
)

// includedKind is the billing kind usage rows must carry to count toward the
// wrapped summary unless --all-kinds is set.
const includedKind = "Included"

var (
	flagInput    string
	flagSummary  string
	flagHTML     string
	flagTop      int
	flagAllKinds bool
	flagSQLite   bool
	flagQuiet    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Aggregate a usage export and emit the wrapped summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), cfg)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "usage export to aggregate (CSV, or SQLite with --sqlite)")
	generateCmd.Flags().StringVarP(&flagSummary, "summary", "s", "", "path for the summary JSON document")
	generateCmd.Flags().StringVar(&flagHTML, "html", "", "also write a static HTML page at this path")
	generateCmd.Flags().IntVar(&flagTop, "top", 0, "number of models to show in reports")
	generateCmd.Flags().BoolVar(&flagAllKinds, "all-kinds", false, "aggregate every billing kind, not just Included")
	generateCmd.Flags().BoolVar(&flagSQLite, "sqlite", false, "treat the input as a SQLite usage database")
	generateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "skip the console report")
	rootCmd.AddCommand(generateCmd)
}

// resolveConfig loads the environment configuration and applies flag
// overrides.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if flagInput != "" {
		cfg.InputPath = flagInput
	}
	if flagSummary != "" {
		cfg.SummaryPath = flagSummary
	}
	if flagHTML != "" {
		cfg.HTMLPath = flagHTML
	}
	if flagTop > 0 {
		cfg.TopModels = flagTop
	}
	return cfg, nil
}

// eventFilter returns the row filter for the current flags.
func eventFilter() source.Filter {
	if flagAllKinds {
		return source.Filter{}
	}
	return source.Filter{Kinds: []string{includedKind}, NonZeroTokens: true}
}

// newSource builds the event source for the configured input.
func newSource(cfg *config.Config) source.Source {
	filter := eventFilter()
	if flagSQLite {
		return source.NewSQLite(cfg.InputPath, filter)
	}
	return source.NewCSV(cfg.InputPath, filter)
}

// aggregate loads events from the source and folds them into a summary.
func aggregate(ctx context.Context, src source.Source) (*models.Summary, error) {
	result, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	s, err := engine.Aggregate(result.Events, result.Skipped)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("aggregated summary: %w", err)
	}
	return s, nil
}

func runGenerate(ctx context.Context, cfg *config.Config) error {
	s, err := aggregate(ctx, newSource(cfg))
	if err != nil {
		return err
	}

	logger.Info("aggregated usage export",
		"input", cfg.InputPath,
		"events", s.Totals.Events,
		"skipped", s.SkippedRecords)

	var presenters []report.Presenter
	if !flagQuiet {
		presenters = append(presenters, console.New(os.Stdout, cfg.TopModels))
	}
	presenters = append(presenters, jsonfile.Presenter{Path: cfg.SummaryPath})
	if cfg.HTMLPath != "" {
		presenters = append(presenters, htmlpage.New(cfg.HTMLPath, cfg.TopModels))
	}

	return report.RenderAll(s, presenters...)
}
