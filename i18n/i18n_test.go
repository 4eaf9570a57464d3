package i18n

import (
	"testing"

	"github.com/arenadl/arena-dl/i18n/i18nk"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestT(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	got := T(i18nk.FailureLine, map[string]any{"BlockID": "42", "Reason": "Invalid JSON"})
	if want := "Block ID: 42 | Class: Invalid JSON"; got != want {
		t.Errorf("T(FailureLine) = %q, want %q", got, want)
	}
	if got := T(i18nk.Interrupted); got != "Process interrupted by user." {
		t.Errorf("T(Interrupted) = %q", got)
	}
	if got := T(i18nk.Key("NoSuchKey")); got != "NoSuchKey" {
		t.Errorf("missing key should fall back to the key, got %q", got)
	}
}

func TestInitLanguage(t *testing.T) {
	if err := Init("fr"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := T(i18nk.DownloadCompleted); got != "Download process completed successfully." {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
	if err := Init("zh-Hans"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := T(i18nk.HistoryEmpty); got != "暂无运行记录." {
		t.Errorf("T(HistoryEmpty) in zh-Hans = %q", got)
	}
}

// Every key must be present in every locale.
func TestLocalesComplete(t *testing.T) {
	keys := []i18nk.Key{
		i18nk.ProcessingBlocks, i18nk.StartingRun, i18nk.ImageDownloaded, i18nk.AttachmentDownloaded,
		i18nk.LinkSaved, i18nk.FileSkipped, i18nk.ErrorInvalidURL, i18nk.ErrorAPIRequest,
		i18nk.ErrorInvalidJSON, i18nk.ErrorClassNotFound, i18nk.ErrorNoImageURL, i18nk.ErrorNoLinkURL,
		i18nk.ErrorNoAttachmentURL, i18nk.ErrorUnsupportedClass, i18nk.ErrorDownload, i18nk.ErrorSaveWebloc,
		i18nk.UnsupportedBlocksHeader, i18nk.FailureLine, i18nk.AllBlocksProcessed, i18nk.DownloadCompleted,
		i18nk.SummaryCounts, i18nk.Interrupted, i18nk.InputMissing, i18nk.InputEmpty, i18nk.ReportWritten,
		i18nk.ReportWriteFailed, i18nk.HistorySaveFailed, i18nk.HistoryDisabled, i18nk.HistoryEmpty,
		i18nk.HistoryHeader, i18nk.HistoryLine, i18nk.HistoryRunNotFound, i18nk.ConfigLoadFailed, i18nk.ErrorLabel,
	}
	b, err := newBundle()
	if err != nil {
		t.Fatalf("newBundle: %v", err)
	}
	for _, tag := range b.LanguageTags() {
		l := i18n.NewLocalizer(b, tag.String())
		for _, key := range keys {
			_, got, err := l.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: string(key)})
			if err != nil || got != tag {
				t.Errorf("locale %s is missing %s", tag, key)
			}
		}
	}
}
