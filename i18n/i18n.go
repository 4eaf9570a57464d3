package i18n

import (
	"embed"
	"fmt"
	"maps"

	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locale/*.toml
var localesFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func newBundle() (*i18n.Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, err := localesFS.ReadDir("locale")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}
	for _, file := range files {
		if _, err := b.LoadMessageFileFS(localesFS, "locale/"+file.Name()); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", file.Name(), err)
		}
	}
	return b, nil
}

// Init loads the embedded locales and selects lang. Unknown languages fall back to English.
func Init(lang string) error {
	b, err := newBundle()
	if err != nil {
		return err
	}
	if lang == "" {
		lang = "en"
	}
	bundle = b
	localizer = i18n.NewLocalizer(bundle, lang)
	return nil
}

func T(key i18nk.Key, templateData ...map[string]any) string {
	if localizer == nil || bundle == nil {
		if err := Init("en"); err != nil {
			return string(key)
		}
	}
	return localize(localizer, key, templateData...)
}

func localize(l *i18n.Localizer, key i18nk.Key, templateData ...map[string]any) string {
	templateDataMap := make(map[string]any)
	for _, data := range templateData {
		maps.Copy(templateDataMap, data)
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: templateDataMap,
	})
	if err != nil {
		return string(key)
	}
	return msg
}
