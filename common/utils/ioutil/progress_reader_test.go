package ioutil_test

import (
	"io"
	"strings"
	"testing"

	"github.com/arenadl/arena-dl/common/utils/ioutil"
)

func TestProgressReader(t *testing.T) {
	payload := strings.Repeat("a", 10000)
	var calls int
	var last int64
	pr := ioutil.NewProgressReader(strings.NewReader(payload), int64(len(payload)), func(read, total int64) {
		calls++
		if read < last {
			t.Errorf("progress went backwards: %d < %d", read, last)
		}
		last = read
		if total != int64(len(payload)) {
			t.Errorf("total = %d, want %d", total, len(payload))
		}
	})
	n, err := io.Copy(io.Discard, pr)
	if err != nil {
		t.Fatalf("copy error: %v", err)
	}
	if n != int64(len(payload)) || pr.BytesRead() != n {
		t.Errorf("read %d bytes, BytesRead() = %d, want %d", n, pr.BytesRead(), len(payload))
	}
	if calls == 0 {
		t.Error("onProgress was never called")
	}
	if pr.Total() != int64(len(payload)) {
		t.Errorf("Total() = %d, want %d", pr.Total(), len(payload))
	}
}

func TestProgressReaderUnknownTotal(t *testing.T) {
	pr := ioutil.NewProgressReader(strings.NewReader("abc"), -1, nil)
	if _, err := io.ReadAll(pr); err != nil {
		t.Fatalf("read error: %v", err)
	}
	if pr.BytesRead() != 3 {
		t.Errorf("BytesRead() = %d, want 3", pr.BytesRead())
	}
	if pr.Total() != -1 {
		t.Errorf("Total() = %d, want -1", pr.Total())
	}
}
