package cmd

import (
	"fmt"

	"github.com/abelmx/affirm/packages/core/config"
	"github.com/abelmx/affirm/packages/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent recorded suite runs",
	Long: `Show recent suite runs recorded by the runner's history store.

Examples:
  affirm history
  affirm history --limit 50 --db .affirm/history.db`,
	RunE: historyCommand,
}

var (
	historyLimitFlag int
	historyDBFlag    string
	configFlag       string
)

func init() {
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyDBFlag, "db", "", "Path to the history database (default from config)")
	historyCmd.Flags().StringVar(&configFlag, "config", "", "Path to config file")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load(configFlag)

	path := historyDBFlag
	if path == "" {
		path = cfg.GetHistoryPath()
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(historyLimitFlag)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No recorded runs in %s\n", path)
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, r := range records {
		status := green("pass")
		if r.Failed > 0 {
			status = red("fail")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d passed, %d failed, %d skipped  (%dms)\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), status, r.Suite,
			r.Passed, r.Failed, r.Skipped, r.Duration.Milliseconds())
	}

	return nil
}
