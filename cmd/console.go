package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arenadl/arena-dl/core"
	"github.com/arenadl/arena-dl/i18n"
	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/arenadl/arena-dl/pkg/enums/blockclass"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	linkStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// console writes user facing lines. Diagnostics go through the logger instead.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

func (c *console) Println(line string) {
	fmt.Fprintln(c.w, line)
}

func (c *console) Lines(lines []string) {
	for _, line := range lines {
		c.Println(line)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderError(msg string) string {
	return errorStyle.Render(i18n.T(i18nk.ErrorLabel)) + " " + msg
}

func withDetail(head, detail string) string {
	if detail == "" {
		return head
	}
	return head + " " + detail
}

// renderEvent formats the status line for one processed input line.
func renderEvent(ev core.Event) string {
	switch ev.Type {
	case core.EventSaved:
		name := filepath.Base(ev.Path)
		extra := []string{}
		if ev.Title != "" {
			extra = append(extra, fmt.Sprintf("%q", ev.Title))
		}
		if ev.Class != blockclass.Link && ev.Size > 0 {
			extra = append(extra, humanize.Bytes(uint64(ev.Size)))
		}
		if len(extra) > 0 {
			name += " " + mutedStyle.Render("("+strings.Join(extra, ", ")+")")
		}
		switch ev.Class {
		case blockclass.Link:
			return linkStyle.Render(i18n.T(i18nk.LinkSaved)) + " " + name
		case blockclass.Attachment:
			return successStyle.Render(i18n.T(i18nk.AttachmentDownloaded)) + " " + name
		default:
			return successStyle.Render(i18n.T(i18nk.ImageDownloaded)) + " " + name
		}
	case core.EventSkipped:
		return mutedStyle.Render(i18n.T(i18nk.FileSkipped) + " " + filepath.Base(ev.Path))
	case core.EventFailed:
		if ev.Failure == nil {
			return ""
		}
		return renderFailure(ev, *ev.Failure)
	}
	return ""
}

func renderFailure(ev core.Event, f core.Failure) string {
	data := map[string]any{"BlockID": f.BlockID, "URL": f.URL, "Class": string(ev.Class)}
	switch f.Reason {
	case core.ReasonInvalidURL:
		return renderError(i18n.T(i18nk.ErrorInvalidURL, data))
	case core.ReasonAPIRequest:
		return withDetail(errorStyle.Render(i18n.T(i18nk.ErrorAPIRequest, data)), f.Error)
	case core.ReasonInvalidJSON:
		return renderError(i18n.T(i18nk.ErrorInvalidJSON, data))
	case core.ReasonClassNotSpecified:
		return renderError(i18n.T(i18nk.ErrorClassNotFound, data))
	case core.ReasonDownload:
		data["URL"] = ev.Source
		return withDetail(errorStyle.Render(i18n.T(i18nk.ErrorDownload, data)), f.Error)
	case core.ReasonLinkSave:
		return withDetail(errorStyle.Render(i18n.T(i18nk.ErrorSaveWebloc, data)), f.Error)
	case blockclass.Image.String():
		return renderError(i18n.T(i18nk.ErrorNoImageURL, data))
	case blockclass.Link.String():
		return renderError(i18n.T(i18nk.ErrorNoLinkURL, data))
	case blockclass.Attachment.String():
		return renderError(i18n.T(i18nk.ErrorNoAttachmentURL, data))
	}
	return renderError(i18n.T(i18nk.ErrorUnsupportedClass, data))
}

// renderSummary returns the lines printed after a completed run.
func renderSummary(r *core.Report) []string {
	lines := []string{""}
	if r.OK() {
		lines = append(lines, successStyle.Render(i18n.T(i18nk.AllBlocksProcessed)))
	} else {
		lines = append(lines, headerStyle.Render(i18n.T(i18nk.UnsupportedBlocksHeader)))
		for _, f := range r.Failures {
			lines = append(lines, i18n.T(i18nk.FailureLine, map[string]any{
				"BlockID": f.BlockID,
				"Reason":  f.Reason,
			}))
		}
	}
	lines = append(lines, mutedStyle.Render(i18n.T(i18nk.SummaryCounts, map[string]any{
		"Images":      r.Images,
		"Links":       r.Links,
		"Attachments": r.Attachments,
		"Skipped":     r.Skipped,
		"Failed":      len(r.Failures),
		"Size":        humanize.Bytes(uint64(r.Bytes)),
		"Duration":    r.Duration().Round(time.Millisecond).String(),
	})))
	lines = append(lines, "", successStyle.Render(i18n.T(i18nk.DownloadCompleted)))
	return lines
}
