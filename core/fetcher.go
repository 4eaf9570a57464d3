package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/arenadl/arena-dl/pkg/arena"
	"github.com/arenadl/arena-dl/pkg/enums/blockclass"
	"github.com/arenadl/arena-dl/storage"
	"github.com/charmbracelet/log"
)

var (
	ErrInvalidURL      = errors.New("no block id in url")
	ErrNoClass         = errors.New("block has no class")
	ErrMissingResource = errors.New("block has no resource url")
	ErrUnsupported     = errors.New("unsupported block class")
)

// API is the part of the Are.na client the fetcher uses.
type API interface {
	GetBlock(ctx context.Context, blockID string) (*arena.Block, error)
	Open(ctx context.Context, rawURL string) (*http.Response, error)
}

type Options struct {
	Images      storage.Storage
	Links       storage.Storage
	Attachments storage.Storage
	Progress    ProgressTracker
	// DetectExt sniffs the content of downloads whose name has no extension and appends one.
	DetectExt bool
}

// Fetcher runs the block download pipeline over a list of URLs, one at a time.
type Fetcher struct {
	api       API
	stores    map[blockclass.BlockClass]storage.Storage
	progress  ProgressTracker
	detectExt bool
}

func NewFetcher(api API, opts Options) (*Fetcher, error) {
	if api == nil {
		return nil, errors.New("api client is required")
	}
	stores := map[blockclass.BlockClass]storage.Storage{
		blockclass.Image:      opts.Images,
		blockclass.Link:       opts.Links,
		blockclass.Attachment: opts.Attachments,
	}
	for class, stor := range stores {
		if stor == nil {
			return nil, fmt.Errorf("no storage configured for %s blocks", class)
		}
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopTracker{}
	}
	return &Fetcher{
		api:       api,
		stores:    stores,
		progress:  progress,
		detectExt: opts.DetectExt,
	}, nil
}

// Run processes urls in order. Per-item failures are collected in the report and never stop the run.
// When ctx is canceled Run returns immediately with the partial report and ctx.Err();
// the interrupted item is not counted and OnDone is not called.
func (f *Fetcher) Run(ctx context.Context, urls []string) (*Report, error) {
	logger := log.FromContext(ctx)
	report := NewReport(len(urls))
	logger.Info("Starting run", "run_id", report.RunID, "blocks", len(urls))
	f.progress.OnStart(ctx, runInfo{id: report.RunID, total: len(urls)})
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ev := f.processURL(ctx, i, u, report)
		if err := ctx.Err(); err != nil {
			logger.Debug("Run canceled", "url", u)
			return report, err
		}
		f.progress.OnEvent(ctx, ev)
		report.Processed++
		f.progress.OnAdvance(ctx, i+1, len(urls))
	}
	report.FinishedAt = time.Now()
	logger.Info("Run finished", "run_id", report.RunID, "saved", report.Saved(), "failed", len(report.Failures))
	f.progress.OnDone(ctx, report)
	return report, nil
}

func (f *Fetcher) processURL(ctx context.Context, index int, rawURL string, report *Report) Event {
	logger := log.FromContext(ctx)
	ev := Event{Index: index, URL: rawURL}
	fail := func(blockID, reason string, err error) Event {
		failure := Failure{BlockID: blockID, URL: rawURL, Reason: reason, Err: err}
		report.AddFailure(failure)
		logger.Debug("Block failed", "block", blockID, "reason", reason, "error", err)
		ev.Type = EventFailed
		recorded := report.Failures[len(report.Failures)-1]
		ev.Failure = &recorded
		return ev
	}

	blockID, ok := arena.ExtractBlockID(rawURL)
	if !ok {
		return fail(NoBlockID, ReasonInvalidURL, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL))
	}
	ev.BlockID = blockID

	block, err := f.api.GetBlock(ctx, blockID)
	if err != nil {
		if errors.Is(err, arena.ErrInvalidJSON) {
			return fail(blockID, ReasonInvalidJSON, err)
		}
		return fail(blockID, ReasonAPIRequest, err)
	}
	ev.Title = block.DisplayTitle()
	if block.Class == "" {
		return fail(blockID, ReasonClassNotSpecified, ErrNoClass)
	}
	class := block.BlockClass()
	ev.Class = class
	if !class.IsSupported() {
		return fail(blockID, UnsupportedClassReason(block.Class), fmt.Errorf("%w: %s", ErrUnsupported, block.Class))
	}
	resourceURL, ok := block.ResourceURL()
	if !ok {
		return fail(blockID, block.Class, fmt.Errorf("%w: %s block %s", ErrMissingResource, block.Class, blockID))
	}
	ev.Source = resourceURL

	stor := f.stores[class]
	var res *saveResult
	switch class {
	case blockclass.Link:
		res, err = f.saveLink(ctx, stor, blockID, resourceURL)
		if err != nil {
			return fail(blockID, ReasonLinkSave, err)
		}
	default:
		res, err = f.download(ctx, stor, blockID, resourceURL)
		if err != nil {
			return fail(blockID, ReasonDownload, err)
		}
	}

	ev.Path = res.path
	ev.Size = res.size
	ev.Speed = res.speed
	if res.skipped {
		ev.Type = EventSkipped
		report.Skipped++
		return ev
	}
	ev.Type = EventSaved
	report.Bytes += res.size
	switch class {
	case blockclass.Image:
		report.Images++
	case blockclass.Link:
		report.Links++
	case blockclass.Attachment:
		report.Attachments++
	}
	return ev
}
