package cmd

import (
	"errors"
	"fmt"

	"github.com/arenadl/arena-dl/config"
	"github.com/arenadl/arena-dl/database"
	"github.com/arenadl/arena-dl/i18n"
	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recent runs recorded in the history database, or show one run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  History,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "number of runs to show")
	historyCmd.Flags().Bool("failures", false, "also list the failed blocks of each run")
}

func History(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	showFailures, err := cmd.Flags().GetBool("failures")
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	cfg := config.C()
	out := newConsole(cmd.OutOrStdout())
	if cfg.DB.Path == "" {
		out.Println(mutedStyle.Render(i18n.T(i18nk.HistoryDisabled)))
		return nil
	}
	baseDir, err := cfg.ResolveBaseDir()
	if err != nil {
		return err
	}
	if err := database.Init(ctx, cfg.ResolvePath(baseDir, cfg.DB.Path)); err != nil {
		return err
	}
	defer database.Close()

	if len(args) == 1 {
		run, err := database.GetRunByUID(ctx, args[0])
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s", i18n.T(i18nk.HistoryRunNotFound, map[string]any{"RunID": args[0]}))
		}
		if err != nil {
			return err
		}
		printRun(out, run, true)
		return nil
	}

	runs, err := database.GetRecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		out.Println(mutedStyle.Render(i18n.T(i18nk.HistoryEmpty)))
		return nil
	}
	out.Println(headerStyle.Render(i18n.T(i18nk.HistoryHeader)))
	for i := range runs {
		printRun(out, &runs[i], showFailures)
	}
	return nil
}

func printRun(out *console, run *database.Run, withFailures bool) {
	out.Println(i18n.T(i18nk.HistoryLine, map[string]any{
		"Time":   humanize.Time(run.StartedAt),
		"RunID":  run.UID,
		"Saved":  run.Saved(),
		"Total":  run.Total,
		"Failed": len(run.Failures),
		"Input":  run.Input,
	}))
	if !withFailures {
		return
	}
	for _, f := range run.Failures {
		out.Println("  " + mutedStyle.Render(i18n.T(i18nk.FailureLine, map[string]any{
			"BlockID": f.BlockID,
			"Reason":  f.Reason,
		})))
	}
}
