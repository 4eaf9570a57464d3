package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
)

var (
	ErrInputMissing = errors.New("input file does not exist")
	ErrInputEmpty   = errors.New("input file is empty")
)

// readInputFile returns the trimmed, non-blank lines of fp.
func readInputFile(fp string) ([]string, error) {
	info, err := os.Stat(fp)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrInputMissing, fp)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	lines := slice.Map(strings.Split(string(data), "\n"), func(_ int, line string) string {
		return strings.TrimSpace(line)
	})
	urls := slice.Filter(lines, func(_ int, line string) bool {
		return line != ""
	})
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInputEmpty, fp)
	}
	return urls, nil
}
