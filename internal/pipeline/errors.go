package pipeline

import (
	"context"
	"errors"

	"github.com/Vovarama1992/pdf_ziper/internal/archive"
	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

// UserMessage — единая точка перевода ошибок конвейера в текст для
// пользователя. Внутренние детали наружу не уходят.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, pdf.ErrUnreadable):
		return "could not read document"
	case errors.Is(err, pdf.ErrNoPages):
		return "the document has no pages to convert"
	case errors.Is(err, archive.ErrPacking):
		return "conversion failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "conversion was cancelled"
	default:
		return "conversion failed"
	}
}
