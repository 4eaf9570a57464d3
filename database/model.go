package database

import (
	"time"

	"gorm.io/gorm"
)

// Run is one recorded invocation of the fetcher.
type Run struct {
	gorm.Model
	UID         string `gorm:"uniqueIndex;not null"`
	Input       string
	StartedAt   time.Time `gorm:"index"`
	FinishedAt  time.Time
	Total       int
	Processed   int
	Images      int
	Links       int
	Attachments int
	Skipped     int
	Bytes       int64
	Failures    []Failure
}

func (r *Run) Saved() int {
	return r.Images + r.Links + r.Attachments
}

type Failure struct {
	gorm.Model
	RunID   uint `gorm:"index"`
	BlockID string
	URL     string
	Reason  string
	Error   string
}
