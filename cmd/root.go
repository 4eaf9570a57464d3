package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arenadl/arena-dl/config"
	"github.com/arenadl/arena-dl/i18n"
	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/arenadl/arena-dl/logger"
	"github.com/arenadl/arena-dl/pkg/enums/blockclass"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arena-dl",
	Short: "Download Are.na blocks listed in a text file",
	Long: fmt.Sprintf(`arena-dl reads block URLs from a list file (lst.txt by default), one per line,
looks every block up in the Are.na API and saves it by class (%s):
images and attachments are downloaded, links are written as .webloc files.`, joinClasses()),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              Fetch,
}

var logCloser io.Closer

func init() {
	config.RegisterFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)
}

func joinClasses() string {
	classes := blockclass.Supported()
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := config.Init(ctx, config.GetConfigFile(cmd)); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	logCfg := config.C().Log
	l, closer, err := logger.New(logger.Options{
		Level:       logCfg.Level,
		File:        logCfg.File,
		MaxSizeMB:   logCfg.MaxSize,
		BackupCount: logCfg.BackupCount,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	logCloser = closer
	if err := i18n.Init(config.C().Lang); err != nil {
		return err
	}
	cmd.SetContext(log.WithContext(ctx, l))
	return nil
}

var errConfig = errors.New("invalid configuration")

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	return exitCode(newConsole(rootCmd.OutOrStdout()), err)
}

func exitCode(out *console, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		out.Println("")
		out.Println(errorStyle.Render(i18n.T(i18nk.Interrupted)))
		return 0
	case errors.Is(err, ErrInputMissing), errors.Is(err, ErrInputEmpty):
		// already reported by the fetch command
		return 1
	case errors.Is(err, errConfig):
		out.Println(renderError(i18n.T(i18nk.ConfigLoadFailed, map[string]any{"Error": err})))
		return 1
	default:
		out.Println(renderError(err.Error()))
		return 1
	}
}
