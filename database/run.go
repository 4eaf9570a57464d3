package database

import (
	"context"

	"github.com/arenadl/arena-dl/core"
)

// SaveReport records a finished run and its failures.
func SaveReport(ctx context.Context, report *core.Report, input string) error {
	if db == nil {
		return ErrNotInitialized
	}
	run := Run{
		UID:         report.RunID,
		Input:       input,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Total:       report.Total,
		Processed:   report.Processed,
		Images:      report.Images,
		Links:       report.Links,
		Attachments: report.Attachments,
		Skipped:     report.Skipped,
		Bytes:       report.Bytes,
		Failures:    make([]Failure, 0, len(report.Failures)),
	}
	for _, f := range report.Failures {
		run.Failures = append(run.Failures, Failure{
			BlockID: f.BlockID,
			URL:     f.URL,
			Reason:  f.Reason,
			Error:   f.Error,
		})
	}
	return db.WithContext(ctx).Create(&run).Error
}

// GetRecentRuns returns up to limit runs, newest first, with their failures.
func GetRecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	var runs []Run
	err := db.WithContext(ctx).
		Preload("Failures").
		Order("started_at desc").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

func GetRunByUID(ctx context.Context, uid string) (*Run, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	var run Run
	err := db.WithContext(ctx).
		Preload("Failures").
		Where("uid = ?", uid).
		First(&run).Error
	return &run, err
}
