package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/arenadl/arena-dl/common/utils/netutil"
	"github.com/arenadl/arena-dl/config"
	"github.com/arenadl/arena-dl/core"
	"github.com/arenadl/arena-dl/database"
	"github.com/arenadl/arena-dl/i18n"
	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/arenadl/arena-dl/pkg/arena"
	"github.com/arenadl/arena-dl/pkg/enums/conflict"
	"github.com/arenadl/arena-dl/storage/local"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Fetch downloads every block listed in the input file.
func Fetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	cfg := config.C()
	w := cmd.OutOrStdout()
	out := newConsole(w)

	baseDir, err := cfg.ResolveBaseDir()
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}
	policy := cfg.ConflictPolicy()
	logger.Debug("Using base directory", "dir", baseDir, "conflict", conflict.GetDisplay(policy, cfg.Lang))

	images, err := local.New(ctx, "images", cfg.ResolvePath(baseDir, cfg.Dirs.Images), policy)
	if err != nil {
		return err
	}
	links, err := local.New(ctx, "links", cfg.ResolvePath(baseDir, cfg.Dirs.Links), policy)
	if err != nil {
		return err
	}
	attachments, err := local.New(ctx, "attachments", cfg.ResolvePath(baseDir, cfg.Dirs.Attachments), policy)
	if err != nil {
		return err
	}

	inputPath := cfg.ResolvePath(baseDir, cfg.Input)
	urls, err := readInputFile(inputPath)
	if err != nil {
		data := map[string]any{"Name": filepath.Base(inputPath), "Dir": filepath.Dir(inputPath)}
		switch {
		case errors.Is(err, ErrInputMissing):
			out.Println(renderError(i18n.T(i18nk.InputMissing, data)))
		case errors.Is(err, ErrInputEmpty):
			out.Println(renderError(i18n.T(i18nk.InputEmpty, data)))
		}
		return err
	}

	httpClient, err := netutil.NewHTTPClient(cfg.Proxy, time.Duration(cfg.API.Timeout)*time.Second)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	client := arena.NewClient(
		arena.WithBaseURL(cfg.API.BaseURL),
		arena.WithHTTPClient(httpClient),
		arena.WithUserAgent(cfg.API.UserAgent),
	)

	tracker := newConsoleTracker(w, !cfg.NoProgress && isTerminal(w))
	fetcher, err := core.NewFetcher(client, core.Options{
		Images:      images,
		Links:       links,
		Attachments: attachments,
		Progress:    tracker,
		DetectExt:   cfg.DetectExt,
	})
	if err != nil {
		return err
	}

	out.Println(titleStyle.Render(i18n.T(i18nk.StartingRun, map[string]any{
		"Count": len(urls),
		"Input": inputPath,
	})))
	report, err := fetcher.Run(ctx, urls)
	if err != nil {
		tracker.Stop()
		return err
	}
	out.Lines(renderSummary(report))

	if cfg.Report != "" {
		reportPath := cfg.ResolvePath(baseDir, cfg.Report)
		if err := report.WriteFile(reportPath); err != nil {
			logger.Error("Failed to write report", "path", reportPath, "error", err)
			out.Println(renderError(i18n.T(i18nk.ReportWriteFailed, map[string]any{"Path": reportPath, "Error": err})))
		} else {
			out.Println(mutedStyle.Render(i18n.T(i18nk.ReportWritten, map[string]any{"Path": reportPath})))
		}
	}
	if cfg.DB.Path != "" {
		if err := recordRun(cmd, cfg.ResolvePath(baseDir, cfg.DB.Path), report, inputPath); err != nil {
			logger.Error("Failed to save run history", "error", err)
			out.Println(renderError(i18n.T(i18nk.HistorySaveFailed, map[string]any{"Error": err})))
		}
	}
	return nil
}

func recordRun(cmd *cobra.Command, dbPath string, report *core.Report, input string) error {
	ctx := cmd.Context()
	if err := database.Init(ctx, dbPath); err != nil {
		return err
	}
	defer database.Close()
	return database.SaveReport(ctx, report, input)
}
