package core

import (
	"context"

	"github.com/arenadl/arena-dl/pkg/enums/blockclass"
)

type EventType string

const (
	EventSaved   EventType = "saved"
	EventSkipped EventType = "skipped"
	EventFailed  EventType = "failed"
)

// Event describes the outcome of one input line.
type Event struct {
	Type    EventType
	Index   int
	URL     string
	BlockID string
	Class   blockclass.BlockClass
	Title   string
	// Source is the resource URL the block points to.
	Source string
	// Path is the file written, or the existing file for skipped events.
	Path    string
	Size    int64
	Speed   float64
	Failure *Failure
}

type RunInfo interface {
	RunID() string
	Total() int
}

// ProgressTracker receives the event stream of a run.
// OnAdvance is called exactly once per input line that was fully processed.
// OnBytes reports the bytes read of the download in flight; total is -1 when unknown.
// It may be called from the goroutine copying the body.
type ProgressTracker interface {
	OnStart(ctx context.Context, info RunInfo)
	OnBytes(ctx context.Context, read, total int64)
	OnEvent(ctx context.Context, ev Event)
	OnAdvance(ctx context.Context, done, total int)
	OnDone(ctx context.Context, report *Report)
}

type nopTracker struct{}

func (nopTracker) OnStart(context.Context, RunInfo)      {}
func (nopTracker) OnBytes(context.Context, int64, int64) {}
func (nopTracker) OnEvent(context.Context, Event)        {}
func (nopTracker) OnAdvance(context.Context, int, int)   {}
func (nopTracker) OnDone(context.Context, *Report)       {}

var _ ProgressTracker = nopTracker{}

type runInfo struct {
	id    string
	total int
}

func (r runInfo) RunID() string { return r.id }
func (r runInfo) Total() int    { return r.total }
