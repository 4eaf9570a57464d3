package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/xid"
)

// NoBlockID stands in for the identifier of lines no identifier could be extracted from.
const NoBlockID = "N/A"

// Failure reasons. A block whose class is supported but lacks its resource URL
// is reported with the class itself as the reason.
const (
	ReasonInvalidURL        = "Invalid URL"
	ReasonAPIRequest        = "API Request Error"
	ReasonInvalidJSON       = "Invalid JSON"
	ReasonClassNotSpecified = "Class Not Specified"
	ReasonDownload          = "Download Error"
	ReasonLinkSave          = "Link Save Error"
)

func UnsupportedClassReason(class string) string {
	return fmt.Sprintf("Unsupported class '%s'", class)
}

type Failure struct {
	BlockID string `json:"block_id" yaml:"block_id"`
	URL     string `json:"url" yaml:"url"`
	Reason  string `json:"reason" yaml:"reason"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Err     error  `json:"-" yaml:"-"`
}

// Report collects the outcome of one run in input order.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time `json:"finished_at" yaml:"finished_at"`
	Total       int       `json:"total" yaml:"total"`
	Processed   int       `json:"processed" yaml:"processed"`
	Images      int       `json:"images" yaml:"images"`
	Links       int       `json:"links" yaml:"links"`
	Attachments int       `json:"attachments" yaml:"attachments"`
	Skipped     int       `json:"skipped" yaml:"skipped"`
	Bytes       int64     `json:"bytes" yaml:"bytes"`
	Failures    []Failure `json:"failures" yaml:"failures"`
}

func NewReport(total int) *Report {
	return &Report{
		RunID:     xid.New().String(),
		StartedAt: time.Now(),
		Total:     total,
		Failures:  make([]Failure, 0),
	}
}

func (r *Report) AddFailure(f Failure) {
	if f.Err != nil && f.Error == "" {
		f.Error = f.Err.Error()
	}
	r.Failures = append(r.Failures, f)
}

// OK reports whether the run recorded no failures.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

func (r *Report) Saved() int {
	return r.Images + r.Links + r.Attachments
}

func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// WriteFile writes the report as YAML for .yaml/.yml paths and as JSON otherwise.
func (r *Report) WriteFile(fp string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(fp)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(r)
	default:
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if dir := filepath.Dir(fp); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fp, data, 0o644)
}
