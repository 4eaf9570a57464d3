package arena

import (
	"fmt"

	"github.com/arenadl/arena-dl/pkg/enums/blockclass"
	"github.com/mitchellh/mapstructure"
)

// Block is the subset of the /v2/blocks/:id response the downloader needs.
// Nested objects are pointers so that absent or null fields stay nil.
type Block struct {
	ID             int64       `mapstructure:"id" json:"id"`
	Class          string      `mapstructure:"class" json:"class"`
	Title          string      `mapstructure:"title" json:"title"`
	GeneratedTitle string      `mapstructure:"generated_title" json:"generated_title"`
	Image          *Image      `mapstructure:"image" json:"image,omitempty"`
	Source         *Source     `mapstructure:"source" json:"source,omitempty"`
	Attachment     *Attachment `mapstructure:"attachment" json:"attachment,omitempty"`
}

type Image struct {
	Filename    string        `mapstructure:"filename" json:"filename"`
	ContentType string        `mapstructure:"content_type" json:"content_type"`
	Original    *ImageVersion `mapstructure:"original" json:"original,omitempty"`
}

type ImageVersion struct {
	URL string `mapstructure:"url" json:"url"`
}

type Source struct {
	URL   string `mapstructure:"url" json:"url"`
	Title string `mapstructure:"title" json:"title"`
}

type Attachment struct {
	URL         string `mapstructure:"url" json:"url"`
	FileName    string `mapstructure:"file_name" json:"file_name"`
	FileSize    int64  `mapstructure:"file_size" json:"file_size"`
	ContentType string `mapstructure:"content_type" json:"content_type"`
	Extension   string `mapstructure:"extension" json:"extension"`
}

// DecodeBlock maps a decoded JSON object onto a Block.
// Missing keys are left at their zero value; only type mismatches fail.
func DecodeBlock(raw map[string]any) (*Block, error) {
	var block Block
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &block,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return &block, nil
}

func (b *Block) BlockClass() blockclass.BlockClass {
	return blockclass.BlockClass(b.Class)
}

// ResourceURL returns the URL of the resource a block of a supported class points to.
func (b *Block) ResourceURL() (string, bool) {
	var u string
	switch b.BlockClass() {
	case blockclass.Image:
		if b.Image != nil && b.Image.Original != nil {
			u = b.Image.Original.URL
		}
	case blockclass.Link:
		if b.Source != nil {
			u = b.Source.URL
		}
	case blockclass.Attachment:
		if b.Attachment != nil {
			u = b.Attachment.URL
		}
	}
	return u, u != ""
}

func (b *Block) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.GeneratedTitle
}
