package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/gen2brain/go-fitz"
)

// RenderDPI — фиксированное разрешение растеризации
const RenderDPI = 300

type FitzRasterizer struct{}

func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{}
}

func (r *FitzRasterizer) Open(ctx context.Context, document []byte) (PageSeq, error) {
	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	total := doc.NumPage()
	if total == 0 {
		doc.Close()
		return nil, ErrNoPages
	}

	return &fitzSeq{doc: doc, total: total}, nil
}

type fitzSeq struct {
	doc   *fitz.Document
	total int
	next  int // 0-based индекс следующей страницы
}

func (s *fitzSeq) PageCount() int {
	return s.total
}

func (s *fitzSeq) Next(ctx context.Context) (PageImage, error) {
	if s.next >= s.total {
		return PageImage{}, io.EOF
	}

	// прерываемся между страницами, если запрос отменили
	select {
	case <-ctx.Done():
		return PageImage{}, ctx.Err()
	default:
	}

	img, err := s.doc.ImageDPI(s.next, RenderDPI)
	if err != nil {
		return PageImage{}, fmt.Errorf("%w: render page %d: %v", ErrUnreadable, s.next+1, err)
	}

	s.next++
	return PageImage{Number: s.next, Image: img}, nil
}

func (s *fitzSeq) Close() error {
	return s.doc.Close()
}
