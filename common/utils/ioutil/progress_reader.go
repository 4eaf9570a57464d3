package ioutil

import (
	"io"
	"sync/atomic"
)

var _ io.Reader = (*ProgressReader)(nil)

// ProgressReader wraps an io.Reader and tracks read progress
type ProgressReader struct {
	reader     io.Reader
	total      int64
	read       atomic.Int64
	onProgress func(read int64, total int64)
}

// NewProgressReader creates a new ProgressReader. total may be -1 when unknown.
func NewProgressReader(r io.Reader, total int64, onProgress func(read int64, total int64)) *ProgressReader {
	return &ProgressReader{
		reader:     r,
		total:      total,
		onProgress: onProgress,
	}
}

// Read implements io.Reader
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		read := pr.read.Add(int64(n))
		if pr.onProgress != nil {
			pr.onProgress(read, pr.total)
		}
	}
	return n, err
}

// BytesRead returns the number of bytes read so far
func (pr *ProgressReader) BytesRead() int64 {
	return pr.read.Load()
}

// Total returns the total number of bytes
func (pr *ProgressReader) Total() int64 {
	return pr.total
}
