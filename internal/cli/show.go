package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avilla-dev/cursor-wrapped/internal/report/console"
	"github.com/avilla-dev/cursor-wrapped/internal/report/jsonfile"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a previously generated summary without re-aggregating",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		s, err := jsonfile.Load(cfg.SummaryPath)
		if err != nil {
			return err
		}
		return console.New(os.Stdout, cfg.TopModels).Render(s)
	},
}

func init() {
	showCmd.Flags().StringVarP(&flagSummary, "summary", "s", "", "summary JSON document to render")
	showCmd.Flags().IntVar(&flagTop, "top", 0, "number of models to show")
	rootCmd.AddCommand(showCmd)
}
