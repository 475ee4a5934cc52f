package dto

// ExportResponse points at the published markdown. ArchiveURL is empty when archiving is disabled.
type ExportResponse struct {
	URL        string `json:"url"`
	ArchiveURL string `json:"archive_url,omitempty"`
}
