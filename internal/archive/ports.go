package archive

import (
	"context"
	"errors"
	"io"

	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

// ErrPacking — не удалось закодировать страницу или записать архив
var ErrPacking = errors.New("archive: packing failed")

// Packer пишет страницы в контейнер в порядке следования.
// Возвращает количество упакованных страниц.
type Packer interface {
	Pack(ctx context.Context, pages pdf.PageSeq, w io.Writer) (int, error)
}
