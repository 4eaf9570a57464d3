package cmd

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/arenadl/arena-dl/core"
	"github.com/arenadl/arena-dl/i18n"
	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/charmbracelet/log"
)

// consoleTracker prints a status line per event, above the progress bar when one is shown.
type consoleTracker struct {
	out     *console
	w       io.Writer
	showBar bool
	bar     *BlocksProgress
	pending int64

	mu       sync.Mutex
	lastSent time.Time
}

// bytesInterval limits how often byte progress is forwarded to the bar.
const bytesInterval = 100 * time.Millisecond

var _ core.ProgressTracker = (*consoleTracker)(nil)

func newConsoleTracker(w io.Writer, showBar bool) *consoleTracker {
	return &consoleTracker{
		out:     newConsole(w),
		w:       w,
		showBar: showBar && barSupported,
	}
}

func (t *consoleTracker) OnStart(ctx context.Context, info core.RunInfo) {
	log.FromContext(ctx).Debug("Run started", "run_id", info.RunID(), "total", info.Total())
	if !t.showBar {
		return
	}
	t.bar = NewBlocksProgress(ctx, t.w, i18n.T(i18nk.ProcessingBlocks), info.Total())
	t.bar.Start()
}

func (t *consoleTracker) OnBytes(ctx context.Context, read, total int64) {
	if t.bar == nil {
		return
	}
	t.mu.Lock()
	now := time.Now()
	if read != total && now.Sub(t.lastSent) < bytesInterval {
		t.mu.Unlock()
		return
	}
	t.lastSent = now
	t.mu.Unlock()
	t.bar.Bytes(read, total)
}

func (t *consoleTracker) OnEvent(ctx context.Context, ev core.Event) {
	if ev.Type == core.EventSaved {
		t.pending += ev.Size
	}
	line := renderEvent(ev)
	if line == "" {
		return
	}
	if t.bar != nil {
		t.bar.Println(line)
		return
	}
	t.out.Println(line)
}

func (t *consoleTracker) OnAdvance(ctx context.Context, done, total int) {
	if t.bar != nil {
		t.bar.Advance(done, t.pending)
	}
	t.pending = 0
}

func (t *consoleTracker) OnDone(ctx context.Context, report *core.Report) {
	if t.bar != nil {
		t.bar.Done()
		t.bar = nil
	}
}

// Stop tears the bar down after an interrupted run.
func (t *consoleTracker) Stop() {
	if t.bar != nil {
		t.bar.Quit()
		t.bar = nil
	}
}
