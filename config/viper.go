package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arenadl/arena-dl/pkg/arena"
	"github.com/arenadl/arena-dl/pkg/enums/conflict"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Config struct {
	BaseDir    string `toml:"base_dir" mapstructure:"base_dir" json:"base_dir"`
	Input      string `toml:"input" mapstructure:"input" json:"input"`
	Lang       string `toml:"lang" mapstructure:"lang" json:"lang"`
	NoProgress bool   `toml:"no_progress" mapstructure:"no_progress" json:"no_progress"`
	Conflict   string `toml:"conflict" mapstructure:"conflict" json:"conflict"`
	DetectExt  bool   `toml:"detect_ext" mapstructure:"detect_ext" json:"detect_ext"`
	Report     string `toml:"report" mapstructure:"report" json:"report"`
	Proxy      string `toml:"proxy" mapstructure:"proxy" json:"proxy"`

	API  apiConfig  `toml:"api" mapstructure:"api" json:"api"`
	Dirs dirsConfig `toml:"dirs" mapstructure:"dirs" json:"dirs"`
	Log  logConfig  `toml:"log" mapstructure:"log" json:"log"`
	DB   dbConfig   `toml:"db" mapstructure:"db" json:"db"`
}

type apiConfig struct {
	BaseURL   string `toml:"base_url" mapstructure:"base_url" json:"base_url"`
	Timeout   int    `toml:"timeout" mapstructure:"timeout" json:"timeout"`
	UserAgent string `toml:"user_agent" mapstructure:"user_agent" json:"user_agent"`
}

type dirsConfig struct {
	Images      string `toml:"images" mapstructure:"images" json:"images"`
	Links       string `toml:"links" mapstructure:"links" json:"links"`
	Attachments string `toml:"attachments" mapstructure:"attachments" json:"attachments"`
}

type logConfig struct {
	Level       string `toml:"level" mapstructure:"level" json:"level"`
	File        string `toml:"file" mapstructure:"file" json:"file"`
	MaxSize     int    `toml:"max_size" mapstructure:"max_size" json:"max_size"`
	BackupCount int    `toml:"backup_count" mapstructure:"backup_count" json:"backup_count"`
}

type dbConfig struct {
	Path string `toml:"path" mapstructure:"path" json:"path"`
}

var cfg *Config

// C returns the loaded configuration. Init must have been called.
func C() *Config {
	if cfg == nil {
		panic("config is not initialized, call Init() first")
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("base_dir", "")
	viper.SetDefault("input", "lst.txt")
	viper.SetDefault("lang", "en")
	viper.SetDefault("no_progress", false)
	viper.SetDefault("conflict", string(conflict.Overwrite))
	viper.SetDefault("detect_ext", false)
	viper.SetDefault("report", "")
	viper.SetDefault("proxy", "")

	viper.SetDefault("api.base_url", arena.DefaultBaseURL)
	viper.SetDefault("api.timeout", 60)
	viper.SetDefault("api.user_agent", arena.DefaultUserAgent)

	viper.SetDefault("dirs.images", "images")
	viper.SetDefault("dirs.links", "links")
	viper.SetDefault("dirs.attachments", "attachments")

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.max_size", 10)
	viper.SetDefault("log.backup_count", 7)

	viper.SetDefault("db.path", "")
}

// Init loads configuration from defaults, an optional toml file, ARENADL_* env vars and bound flags.
// Without configFile, config.toml is looked up in the working directory and next to the executable;
// a missing file is not an error.
func Init(ctx context.Context, configFile string) error {
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("ARENADL")
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if dir, err := executableDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.FromContext(ctx).Debug("Loaded config file", "path", viper.ConfigFileUsed())
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func (c *Config) Validate() error {
	if _, err := conflict.ParsePolicy(c.Conflict); err != nil {
		return err
	}
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input must not be empty")
	}
	if c.Log.MaxSize < 0 || c.Log.BackupCount < 0 {
		return fmt.Errorf("log.max_size and log.backup_count must not be negative")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %d", c.API.Timeout)
	}
	dirs := map[string]string{
		"dirs.images":      c.Dirs.Images,
		"dirs.links":       c.Dirs.Links,
		"dirs.attachments": c.Dirs.Attachments,
	}
	seen := make(map[string]string, len(dirs))
	for key, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
		clean := filepath.Clean(dir)
		if other, ok := seen[clean]; ok {
			return fmt.Errorf("%s and %s point to the same directory %q", key, other, dir)
		}
		seen[clean] = key
	}
	return nil
}

// ConflictPolicy returns the parsed conflict policy. Validate has already rejected bad values.
func (c *Config) ConflictPolicy() conflict.Policy {
	p, err := conflict.ParsePolicy(c.Conflict)
	if err != nil {
		return conflict.Overwrite
	}
	return p
}

// ResolveBaseDir returns the absolute base directory. It defaults to the directory
// containing the executable, where the input list and output folders live.
func (c *Config) ResolveBaseDir() (string, error) {
	if c.BaseDir != "" {
		return filepath.Abs(c.BaseDir)
	}
	return executableDir()
}

// ResolvePath joins p onto the base directory unless it is already absolute.
func (c *Config) ResolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
