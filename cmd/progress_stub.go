//go:build no_bubbletea

package cmd

import (
	"context"
	"io"
)

const barSupported = false

type BlocksProgress struct{}

func NewBlocksProgress(ctx context.Context, out io.Writer, title string, total int) *BlocksProgress {
	return &BlocksProgress{}
}

func (bp *BlocksProgress) Start() {}

func (bp *BlocksProgress) Println(line string) {}

func (bp *BlocksProgress) Advance(done int, bytes int64) {}

func (bp *BlocksProgress) Bytes(read, total int64) {}

func (bp *BlocksProgress) Done() {}

func (bp *BlocksProgress) Quit() {}
