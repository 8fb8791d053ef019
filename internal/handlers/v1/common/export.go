package common

import (
	"strconv"

	"github.com/carson-networks/cashti-console/internal/export"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ExportOutput streams a CSV file download.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	RowCount           string `header:"X-Row-Count"`
	Body               []byte
}

// NewExportOutput wraps a finished export.
func NewExportOutput(e *service.Export) *ExportOutput {
	return &ExportOutput{
		ContentType:        e.ContentType,
		ContentDisposition: export.ContentDisposition(e.FileName),
		RowCount:           strconv.Itoa(e.Rows),
		Body:               []byte(e.Body),
	}
}
