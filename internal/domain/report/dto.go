package report

// ExportFile is a generated document ready to be streamed to the
// client as a download.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)
