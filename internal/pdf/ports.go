package pdf

import (
	"context"
	"errors"
	"image"
)

var (
	// ErrUnreadable — байты не являются читаемым PDF
	ErrUnreadable = errors.New("pdf: unreadable document")

	// ErrNoPages — в документе нет ни одной страницы
	ErrNoPages = errors.New("pdf: document has no pages")
)

type PageImage struct {
	Number int // 1-based
	Image  image.Image
}

// PageSeq — ленивая последовательность страниц, по одной за раз.
// Next возвращает io.EOF после последней страницы. Повторный проход невозможен.
type PageSeq interface {
	PageCount() int
	Next(ctx context.Context) (PageImage, error)
	Close() error
}

type Rasterizer interface {
	Open(ctx context.Context, document []byte) (PageSeq, error)
}
