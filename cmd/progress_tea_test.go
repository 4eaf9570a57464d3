//go:build !no_bubbletea

package cmd

import (
	"strings"
	"testing"
)

func TestBlocksModelUpdate(t *testing.T) {
	m := newBlocksModel("Processing Blocks...", 4)

	next, _ := m.Update(bytesMsg{read: 1500, total: 3000})
	m = next.(blocksModel)
	view := m.View()
	if !strings.Contains(view, "1.5 kB / 3.0 kB") {
		t.Errorf("view does not show the download in flight: %q", view)
	}

	next, _ = m.Update(advanceMsg{done: 1, bytes: 3000})
	m = next.(blocksModel)
	if m.done != 1 || m.bytes != 3000 {
		t.Errorf("done = %d, bytes = %d after advance", m.done, m.bytes)
	}
	view = m.View()
	if strings.Contains(view, "↳") {
		t.Errorf("download readout should reset after advance: %q", view)
	}
	if !strings.Contains(view, "1/4") {
		t.Errorf("view missing counter: %q", view)
	}
	if m.percent() != 0.25 {
		t.Errorf("percent() = %f, want 0.25", m.percent())
	}

	next, cmd := m.Update(barDoneMsg{})
	m = next.(blocksModel)
	if cmd == nil || m.View() != "" {
		t.Errorf("done message should quit and clear the view")
	}
}
