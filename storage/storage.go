package storage

import (
	"context"
	"errors"
	"io"
)

// ErrSkipped is returned by Save when the target exists and the conflict policy is skip.
var ErrSkipped = errors.New("file already exists, skipped")

type Storage interface {
	Name() string
	// JoinStoragePath returns the full path name would be stored at.
	JoinStoragePath(name string) string
	// Save writes reader to name and returns the path actually written.
	Save(ctx context.Context, reader io.Reader, name string) (string, error)
	// Rename moves a stored file to newName, applying the same conflict policy as Save.
	Rename(ctx context.Context, storedPath, newName string) (string, error)
}
