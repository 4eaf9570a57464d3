package cmd

import (
	"fmt"
	"runtime"

	"github.com/arenadl/arena-dl/pkg/consts"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Print the version number of arena-dl",
	// no config needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "arena-dl version: %s %s/%s\nBuildTime: %s, Commit: %s\n",
			consts.Version, runtime.GOOS, runtime.GOARCH, consts.BuildTime, consts.GitCommit)
	},
}
