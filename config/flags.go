package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "config file path")
	flags.StringP("lang", "l", "", "language (e.g., en, zh-Hans)")
	flags.StringP("dir", "d", "", "base directory holding the input list and output folders (default: executable directory)")
	flags.StringP("input", "i", "", "input list file name, one block URL per line (default: lst.txt)")
	flags.String("conflict", "", "what to do when an output file exists: overwrite, skip, rename")
	flags.Bool("no-progress", false, "disable progress bar")
	flags.Bool("detect-ext", false, "sniff the file type of downloads without an extension and append one")
	flags.StringP("report", "r", "", "write a machine-readable run report (.json, .yaml)")
	flags.String("proxy", "", "proxy URL (http, https, socks5, socks5h)")

	flags.String("api-base-url", "", "Are.na API base URL")
	flags.Int("api-timeout", 0, "HTTP timeout in seconds")

	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "also write logs to this file")
	flags.Int("log-max-size", 0, "rotate the log file after this many megabytes (default 10)")
	flags.Int("log-backup-count", 0, "number of rotated log files to keep (default 7)")

	flags.String("db-path", "", "sqlite database recording run history, empty to disable")

	bindFlags(cmd)
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	viper.BindPFlag("lang", flags.Lookup("lang"))
	viper.BindPFlag("base_dir", flags.Lookup("dir"))
	viper.BindPFlag("input", flags.Lookup("input"))
	viper.BindPFlag("conflict", flags.Lookup("conflict"))
	viper.BindPFlag("no_progress", flags.Lookup("no-progress"))
	viper.BindPFlag("detect_ext", flags.Lookup("detect-ext"))
	viper.BindPFlag("report", flags.Lookup("report"))
	viper.BindPFlag("proxy", flags.Lookup("proxy"))

	// api
	viper.BindPFlag("api.base_url", flags.Lookup("api-base-url"))
	viper.BindPFlag("api.timeout", flags.Lookup("api-timeout"))

	// log
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.file", flags.Lookup("log-file"))
	viper.BindPFlag("log.max_size", flags.Lookup("log-max-size"))
	viper.BindPFlag("log.backup_count", flags.Lookup("log-backup-count"))

	// database
	viper.BindPFlag("db.path", flags.Lookup("db-path"))
}

func GetConfigFile(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}
