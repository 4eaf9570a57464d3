// Package webloc renders macOS .webloc pointer files.
package webloc

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const Ext = ".webloc"

const template = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>URL</key>
    <string>%s</string>
</dict>
</plist>
`

// Render returns the property list document pointing at u.
// XML special characters in u are escaped so the plist stays well formed.
func Render(u string) []byte {
	var escaped bytes.Buffer
	// EscapeText only fails when the writer does
	_ = xml.EscapeText(&escaped, []byte(u))
	return fmt.Appendf(nil, template, escaped.String())
}

// FileName returns the pointer file name for a block.
func FileName(blockID string) string {
	return blockID + Ext
}

type plist struct {
	Dict struct {
		Keys    []string `xml:"key"`
		Strings []string `xml:"string"`
	} `xml:"dict"`
}

// Parse extracts the URL stored in a .webloc document.
func Parse(data []byte) (string, error) {
	var p plist
	if err := xml.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("failed to parse webloc: %w", err)
	}
	for i, key := range p.Dict.Keys {
		if key == "URL" && i < len(p.Dict.Strings) {
			return p.Dict.Strings[i], nil
		}
	}
	return "", fmt.Errorf("webloc has no URL key")
}
