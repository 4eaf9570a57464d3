package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	// File duplicates the output into a size-rotated file when set.
	File        string
	MaxSizeMB   int
	BackupCount int
}

// New builds the diagnostic logger writing to stderr and, optionally, a rotated file.
// The returned closer releases the file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.BackupCount,
			LocalTime:  true,
		}
		out = io.MultiWriter(os.Stderr, fileWriter)
		closer = fileWriter
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "arena-dl",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
