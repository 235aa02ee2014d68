package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avilla-dev/cursor-wrapped/internal/config"
	"github.com/avilla-dev/cursor-wrapped/internal/logger"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/app"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/tabs/info"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/tabs/modelstab"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/tabs/overview"
	"github.com/avilla-dev/cursor-wrapped/internal/ui/tabs/rhythm"
	"github.com/avilla-dev/cursor-wrapped/internal/watch"
)

var flagWatch bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the wrapped summary in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

func init() {
	tuiCmd.Flags().StringVarP(&flagInput, "input", "i", "", "usage export to aggregate")
	tuiCmd.Flags().BoolVar(&flagAllKinds, "all-kinds", false, "aggregate every billing kind, not just Included")
	tuiCmd.Flags().BoolVar(&flagSQLite, "sqlite", false, "treat the input as a SQLite usage database")
	tuiCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "re-aggregate when the export file changes")
	tuiCmd.Flags().IntVar(&flagTop, "top", 0, "number of models to show")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cfg *config.Config) error {
	src := newSource(cfg)
	load := func() (*models.Summary, error) {
		return aggregate(context.Background(), src)
	}

	var watcher *watch.Watcher
	if flagWatch {
		w, err := watch.New(cfg.InputPath)
		if err != nil {
			return err
		}
		watcher = w
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Error("failed to close watcher", "error", err)
			}
		}()
	}

	state := app.NewState(cfg.InputPath, flagWatch)
	model := app.NewModel(state, load, watcher)
	model.SetTabs([]app.Tab{
		overview.New(state),
		modelstab.New(state),
		rhythm.New(state),
		info.New(state, cfg),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
