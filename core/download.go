package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/arenadl/arena-dl/common/utils/dlutil"
	"github.com/arenadl/arena-dl/common/utils/fsutil"
	"github.com/arenadl/arena-dl/common/utils/ioutil"
	"github.com/arenadl/arena-dl/pkg/webloc"
	"github.com/arenadl/arena-dl/storage"
	"github.com/charmbracelet/log"
)

type saveResult struct {
	path    string
	size    int64
	speed   float64
	skipped bool
}

// FileName returns "<blockID>_<basename>" for a resource URL. The basename is taken from the
// escaped path, so percent-encoding is kept and the query string is ignored.
// A URL without a basename yields "<blockID>_".
func FileName(blockID, rawURL string) string {
	var base string
	if u, err := url.Parse(rawURL); err == nil {
		base = path.Base(u.EscapedPath())
	}
	if base == "." || base == "/" {
		base = ""
	}
	return blockID + "_" + fsutil.NormalizePathname(base)
}

func (f *Fetcher) download(ctx context.Context, stor storage.Storage, blockID, fileURL string) (*saveResult, error) {
	logger := log.FromContext(ctx)
	start := time.Now()
	resp, err := f.api.Open(ctx, fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	name := FileName(blockID, fileURL)
	reader := ioutil.NewProgressReader(resp.Body, resp.ContentLength, func(read, total int64) {
		f.progress.OnBytes(ctx, read, total)
	})
	stored, err := stor.Save(ctx, reader, name)
	if errors.Is(err, storage.ErrSkipped) {
		logger.Debug("Skipped existing file", "path", stored)
		return &saveResult{path: stored, skipped: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", fileURL, err)
	}
	if total := reader.Total(); total > 0 && reader.BytesRead() != total {
		logger.Warn("Downloaded size differs from Content-Length", "path", stored, "read", reader.BytesRead(), "expected", total)
	}
	res := &saveResult{
		path:  stored,
		size:  reader.BytesRead(),
		speed: dlutil.GetSpeed(reader.BytesRead(), start),
	}
	if f.detectExt && filepath.Ext(name) == "" {
		if ext := fsutil.DetectFileExt(stored); ext != "" {
			renamed, err := stor.Rename(ctx, stored, name+ext)
			switch {
			case err == nil:
				res.path = renamed
			case errors.Is(err, storage.ErrSkipped):
				logger.Debug("Keeping file without extension, target exists", "path", stored)
			default:
				logger.Warn("Failed to add detected extension", "path", stored, "error", err)
			}
		}
	}
	return res, nil
}

func (f *Fetcher) saveLink(ctx context.Context, stor storage.Storage, blockID, linkURL string) (*saveResult, error) {
	doc := webloc.Render(linkURL)
	stored, err := stor.Save(ctx, bytes.NewReader(doc), webloc.FileName(blockID))
	if errors.Is(err, storage.ErrSkipped) {
		return &saveResult{path: stored, skipped: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save webloc for block %s: %w", blockID, err)
	}
	return &saveResult{path: stored, size: int64(len(doc))}, nil
}
