//go:build !no_bubbletea

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const barSupported = true

// advanceMsg is sent after every processed input line
type advanceMsg struct {
	done  int
	bytes int64
}

// bytesMsg reports the download in flight
type bytesMsg struct {
	read  int64
	total int64
}

// barDoneMsg is sent when the run is complete
type barDoneMsg struct{}

// blocksModel is the bubbletea model for the batch progress bar
type blocksModel struct {
	progress progress.Model
	title    string
	total    int
	done     int
	bytes    int64
	current  bytesMsg
	started  time.Time
	finished bool
}

func newBlocksModel(title string, total int) blocksModel {
	p := progress.New(
		progress.WithGradient("#5A56E0", "#2ECC71"),
		progress.WithWidth(40),
	)
	return blocksModel{
		progress: p,
		title:    title,
		total:    total,
		started:  time.Now(),
	}
}

func (m blocksModel) Init() tea.Cmd {
	return nil
}

func (m blocksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = max(min(msg.Width-60, 40), 10)
		return m, nil

	case advanceMsg:
		m.done = msg.done
		m.bytes += msg.bytes
		m.current = bytesMsg{}
		return m, nil

	case bytesMsg:
		m.current = msg
		return m, nil

	case barDoneMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m blocksModel) percent() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

// remaining estimates the time left from the average time per block so far.
func (m blocksModel) remaining() string {
	if m.done == 0 || m.done >= m.total {
		return "-:--:--"
	}
	per := time.Since(m.started) / time.Duration(m.done)
	left := per * time.Duration(m.total-m.done)
	return fmt.Sprintf("%d:%02d:%02d", int(left.Hours()), int(left.Minutes())%60, int(left.Seconds())%60)
}

func (m blocksModel) View() string {
	if m.finished {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString(" ")
	sb.WriteString(m.progress.ViewAs(m.percent()))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d  %s  %s",
		m.done, m.total,
		humanize.Bytes(uint64(m.bytes)),
		m.remaining(),
	)))
	sb.WriteString("\n")
	if m.current.read > 0 {
		current := humanize.Bytes(uint64(m.current.read))
		if m.current.total > 0 {
			current += " / " + humanize.Bytes(uint64(m.current.total))
		}
		sb.WriteString(mutedStyle.Render("  ↳ " + current))
		sb.WriteString("\n")
	}
	return sb.String()
}

// BlocksProgress drives the progress bar shown while blocks are processed
type BlocksProgress struct {
	program *tea.Program
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewBlocksProgress(ctx context.Context, out io.Writer, title string, total int) *BlocksProgress {
	ctx, cancel := context.WithCancel(ctx)
	p := tea.NewProgram(
		newBlocksModel(title, total),
		tea.WithoutSignalHandler(),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)
	return &BlocksProgress{
		program: p,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start runs the UI in a goroutine and returns immediately
func (bp *BlocksProgress) Start() {
	go func() {
		bp.program.Run()
		bp.cancel()
	}()
}

// Println prints a line above the bar
func (bp *BlocksProgress) Println(line string) {
	bp.program.Println(line)
}

func (bp *BlocksProgress) Advance(done int, bytes int64) {
	bp.program.Send(advanceMsg{done: done, bytes: bytes})
}

// Bytes updates the readout of the download in flight
func (bp *BlocksProgress) Bytes(read, total int64) {
	bp.program.Send(bytesMsg{read: read, total: total})
}

// Done completes the bar and waits for the UI to exit
func (bp *BlocksProgress) Done() {
	bp.program.Send(barDoneMsg{})
	bp.program.Wait()
}

// Quit stops the UI without completing the bar
func (bp *BlocksProgress) Quit() {
	bp.program.Quit()
	bp.program.Wait()
}
