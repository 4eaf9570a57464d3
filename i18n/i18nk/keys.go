package i18nk

type Key string

const (
	ProcessingBlocks        Key = "ProcessingBlocks"
	StartingRun             Key = "StartingRun"
	ImageDownloaded         Key = "ImageDownloaded"
	AttachmentDownloaded    Key = "AttachmentDownloaded"
	LinkSaved               Key = "LinkSaved"
	FileSkipped             Key = "FileSkipped"
	ErrorInvalidURL         Key = "ErrorInvalidURL"
	ErrorAPIRequest         Key = "ErrorAPIRequest"
	ErrorInvalidJSON        Key = "ErrorInvalidJSON"
	ErrorClassNotFound      Key = "ErrorClassNotFound"
	ErrorNoImageURL         Key = "ErrorNoImageURL"
	ErrorNoLinkURL          Key = "ErrorNoLinkURL"
	ErrorNoAttachmentURL    Key = "ErrorNoAttachmentURL"
	ErrorUnsupportedClass   Key = "ErrorUnsupportedClass"
	ErrorDownload           Key = "ErrorDownload"
	ErrorSaveWebloc         Key = "ErrorSaveWebloc"
	UnsupportedBlocksHeader Key = "UnsupportedBlocksHeader"
	FailureLine             Key = "FailureLine"
	AllBlocksProcessed      Key = "AllBlocksProcessed"
	DownloadCompleted       Key = "DownloadCompleted"
	SummaryCounts           Key = "SummaryCounts"
	Interrupted             Key = "Interrupted"
	InputMissing            Key = "InputMissing"
	InputEmpty              Key = "InputEmpty"
	ReportWritten           Key = "ReportWritten"
	ReportWriteFailed       Key = "ReportWriteFailed"
	HistorySaveFailed       Key = "HistorySaveFailed"
	HistoryDisabled         Key = "HistoryDisabled"
	HistoryEmpty            Key = "HistoryEmpty"
	HistoryHeader           Key = "HistoryHeader"
	HistoryLine             Key = "HistoryLine"
	HistoryRunNotFound      Key = "HistoryRunNotFound"
	ConfigLoadFailed        Key = "ConfigLoadFailed"
	ErrorLabel              Key = "ErrorLabel"
)
