package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arenadl/arena-dl/common/utils/fsutil"
	"github.com/arenadl/arena-dl/pkg/enums/conflict"
	"github.com/arenadl/arena-dl/storage"
	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
)

// maxRenameAttempts bounds the "name (n).ext" search of the rename policy.
const maxRenameAttempts = 10000

type Local struct {
	name     string
	basePath string
	policy   conflict.Policy
	logger   *log.Logger
}

var _ storage.Storage = (*Local)(nil)

// New returns a storage rooted at basePath, creating the directory if absent.
func New(ctx context.Context, name, basePath string, policy conflict.Policy) (*Local, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("invalid conflict policy %q", policy)
	}
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory: %w", err)
	}
	return &Local{
		name:     name,
		basePath: absPath,
		policy:   policy,
		logger:   log.FromContext(ctx).WithPrefix(fmt.Sprintf("local[%s]", name)),
	}, nil
}

func (l *Local) Name() string {
	return l.name
}

func (l *Local) BasePath() string {
	return l.basePath
}

func (l *Local) Policy() conflict.Policy {
	return l.policy
}

func (l *Local) JoinStoragePath(name string) string {
	return filepath.Join(l.basePath, filepath.Base(name))
}

// Save streams reader into name. With the overwrite policy an existing file is truncated.
// A failed copy leaves whatever was written in place.
func (l *Local) Save(ctx context.Context, reader io.Reader, name string) (string, error) {
	dest, err := l.resolveTarget(name)
	if err != nil {
		return dest, err
	}
	l.logger.Debugf("Saving file to %s", dest)
	file, err := fsutil.CreateFile(dest)
	if err != nil {
		return "", err
	}
	defer file.Close()

	copyResultCh := make(chan error, 1)
	go func() {
		_, err := io.Copy(file, reader)
		copyResultCh <- err
	}()
	select {
	case err := <-copyResultCh:
		if err != nil {
			return dest, fmt.Errorf("failed to write %s: %w", dest, err)
		}
	case <-ctx.Done():
		return dest, ctx.Err()
	}
	if err := file.Sync(); err != nil {
		return dest, fmt.Errorf("failed to sync %s: %w", dest, err)
	}
	return dest, nil
}

func (l *Local) Rename(ctx context.Context, storedPath, newName string) (string, error) {
	dest, err := l.resolveTarget(newName)
	if err != nil {
		return storedPath, err
	}
	if dest == storedPath {
		return dest, nil
	}
	l.logger.Debugf("Renaming %s to %s", storedPath, dest)
	if err := os.Rename(storedPath, dest); err != nil {
		return storedPath, fmt.Errorf("failed to rename %s: %w", storedPath, err)
	}
	return dest, nil
}

func (l *Local) resolveTarget(name string) (string, error) {
	dest := l.JoinStoragePath(name)
	if !fileutil.IsExist(dest) {
		return dest, nil
	}
	switch l.policy {
	case conflict.Skip:
		return dest, storage.ErrSkipped
	case conflict.Rename:
		base, ext := fsutil.SplitExt(filepath.Base(dest))
		for i := 1; i <= maxRenameAttempts; i++ {
			candidate := filepath.Join(l.basePath, fmt.Sprintf("%s (%d)%s", base, i, ext))
			if !fileutil.IsExist(candidate) {
				return candidate, nil
			}
		}
		return dest, fmt.Errorf("no free name for %s after %d attempts", dest, maxRenameAttempts)
	default:
		return dest, nil
	}
}
