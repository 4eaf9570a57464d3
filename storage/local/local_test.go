package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arenadl/arena-dl/pkg/enums/conflict"
	"github.com/arenadl/arena-dl/storage"
)

func newLocal(t *testing.T, policy conflict.Policy) *Local {
	t.Helper()
	l, err := New(context.Background(), "images", filepath.Join(t.TempDir(), "images"), policy)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return l
}

func readFile(t *testing.T, fp string) string {
	t.Helper()
	data, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("read %s: %v", fp, err)
	}
	return string(data)
}

func TestNewCreatesDirectory(t *testing.T) {
	l := newLocal(t, conflict.Overwrite)
	info, err := os.Stat(l.BasePath())
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s, err=%v", l.BasePath(), err)
	}
	if _, err := New(context.Background(), "x", t.TempDir(), conflict.Policy("merge")); err == nil {
		t.Error("expected error for invalid policy")
	}
}

func TestSavePolicies(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		policy      conflict.Policy
		wantErr     error
		wantContent string
		wantName    string
	}{
		{policy: conflict.Overwrite, wantContent: "second", wantName: "1_a.txt"},
		{policy: conflict.Skip, wantErr: storage.ErrSkipped, wantContent: "first", wantName: "1_a.txt"},
		{policy: conflict.Rename, wantContent: "second", wantName: "1_a (1).txt"},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			l := newLocal(t, tt.policy)
			first, err := l.Save(ctx, strings.NewReader("first"), "1_a.txt")
			if err != nil {
				t.Fatalf("first Save error: %v", err)
			}
			second, err := l.Save(ctx, strings.NewReader("second"), "1_a.txt")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("second Save error = %v, want %v", err, tt.wantErr)
			}
			if filepath.Base(second) != tt.wantName {
				t.Errorf("second path = %s, want name %s", second, tt.wantName)
			}
			if got := readFile(t, second); got != tt.wantContent {
				t.Errorf("content of %s = %q, want %q", second, got, tt.wantContent)
			}
			if tt.policy == conflict.Rename {
				if got := readFile(t, first); got != "first" {
					t.Errorf("original file changed to %q", got)
				}
			}
		})
	}
}

func TestSaveCanceled(t *testing.T) {
	l := newLocal(t, conflict.Overwrite)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer pw.Close()
	if _, err := l.Save(ctx, pr, "blocked.bin"); !errors.Is(err, context.Canceled) {
		t.Errorf("Save with canceled context error = %v, want context.Canceled", err)
	}
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t, conflict.Overwrite)
	stored, err := l.Save(ctx, strings.NewReader("data"), "7_photo")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	renamed, err := l.Rename(ctx, stored, "7_photo.png")
	if err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	if filepath.Base(renamed) != "7_photo.png" {
		t.Errorf("renamed to %s", renamed)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("old path still exists: %v", err)
	}
	if got := readFile(t, renamed); got != "data" {
		t.Errorf("renamed content = %q", got)
	}
}
