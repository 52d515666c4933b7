package processing

import (
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
)

const (
	CodeExtractionFailed apperr.Code = "processing/extraction_failed"
	CodeConversionFailed apperr.Code = "processing/conversion_failed"
)

func ErrExtractionFailed(detail string) error {
	return apperr.New("Text extraction failed", CodeExtractionFailed, apperr.ClassInternal, apperr.LogLevelError).
		WithDetail(detail)
}

func ErrConversionFailed(detail string) error {
	return apperr.New("Format conversion failed", CodeConversionFailed, apperr.ClassInternal, apperr.LogLevelError).
		WithDetail(detail)
}
