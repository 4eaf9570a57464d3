package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// DetectFileExt sniffs the content of fp and returns its extension with the dot, or "".
func DetectFileExt(fp string) string {
	mt, err := mimetype.DetectFile(fp)
	if err != nil {
		return ""
	}
	return mt.Extension()
}

type File struct {
	*os.File
}

// CreateFile creates or truncates fp, creating parent directories as needed.
func CreateFile(fp string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(fp), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.Create(fp)
	if err != nil {
		return nil, err
	}
	return &File{File: file}, nil
}

// NormalizePathname replaces characters that are unsafe in file names on
// common filesystems with '_' and drops trailing dots and spaces.
func NormalizePathname(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r):
			sb.WriteRune('_')
		case unicode.IsControl(r):
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), ". ")
}

// SplitExt splits name into base and extension, treating dotfiles as having no extension.
func SplitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}
