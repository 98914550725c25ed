package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"image/png"
	"io"
	"strconv"

	"github.com/klauspost/compress/flate"

	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

type ZipPacker struct{}

func NewZipPacker() *ZipPacker {
	return &ZipPacker{}
}

func (p *ZipPacker) Pack(ctx context.Context, pages pdf.PageSeq, w io.Writer) (int, error) {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	// ширина номера фиксируется на весь архив, чтобы имена не коллизили
	width := nameWidth(pages.PageCount())

	packed := 0
	for {
		page, err := pages.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			// ошибка растеризатора проходит как есть
			return 0, err
		}

		entry, err := zw.Create(entryName(page.Number, width))
		if err != nil {
			return 0, fmt.Errorf("%w: create entry for page %d: %v", ErrPacking, page.Number, err)
		}

		if err := png.Encode(entry, page.Image); err != nil {
			return 0, fmt.Errorf("%w: encode page %d: %v", ErrPacking, page.Number, err)
		}

		packed++
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("%w: finalize archive: %v", ErrPacking, err)
	}

	return packed, nil
}

// nameWidth — минимум 4 цифры (page_0001.png), шире для документов >9999 страниц
func nameWidth(pageCount int) int {
	w := len(strconv.Itoa(pageCount))
	if w < 4 {
		w = 4
	}
	return w
}

func entryName(number, width int) string {
	return fmt.Sprintf("page_%0*d.png", width, number)
}
