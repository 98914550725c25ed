package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/pdf_ziper/internal/archive"
	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

func newTestLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

// --- фейковый растеризатор ---

type fakeRasterizer struct {
	pages   int
	openErr error
}

func (f *fakeRasterizer) Open(ctx context.Context, document []byte) (pdf.PageSeq, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeSeq{total: f.pages}, nil
}

type fakeSeq struct {
	total int
	pos   int
}

func (s *fakeSeq) PageCount() int { return s.total }

func (s *fakeSeq) Next(ctx context.Context) (pdf.PageImage, error) {
	if s.pos >= s.total {
		return pdf.PageImage{}, io.EOF
	}
	s.pos++
	return pdf.PageImage{
		Number: s.pos,
		Image:  image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}, nil
}

func (s *fakeSeq) Close() error { return nil }

// --- фейковый паковщик ---

type failingPacker struct{}

func (failingPacker) Pack(ctx context.Context, pages pdf.PageSeq, w io.Writer) (int, error) {
	// имитируем отказ посреди упаковки: что-то уже записано в w
	w.Write([]byte("partial garbage"))
	return 0, archive.ErrPacking
}

func newPipeline(rast pdf.Rasterizer, packer archive.Packer) *Service {
	return NewService(
		pdf.NewService(rast),
		archive.NewService(packer),
		newTestLogger(),
	)
}

func TestConvert_FullArchiveForValidDocument(t *testing.T) {
	svc := newPipeline(&fakeRasterizer{pages: 3}, archive.NewZipPacker())

	res, err := svc.Convert(context.Background(), []byte("%PDF-stub"))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.Pages)
	assert.NotEmpty(t, res.JobID)

	zr, err := zip.NewReader(bytes.NewReader(res.Archive), int64(len(res.Archive)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)
	assert.Equal(t, "page_0001.png", zr.File[0].Name)
	assert.Equal(t, "page_0003.png", zr.File[2].Name)
}

func TestConvert_UnreadableDocumentYieldsNoArchive(t *testing.T) {
	svc := newPipeline(&fakeRasterizer{openErr: pdf.ErrUnreadable}, archive.NewZipPacker())

	res, err := svc.Convert(context.Background(), []byte("garbage"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pdf.ErrUnreadable))
	assert.Nil(t, res)
}

func TestConvert_NoPagesYieldsNoArchive(t *testing.T) {
	svc := newPipeline(&fakeRasterizer{openErr: pdf.ErrNoPages}, archive.NewZipPacker())

	res, err := svc.Convert(context.Background(), []byte("%PDF-stub"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pdf.ErrNoPages))
	assert.Nil(t, res)
}

func TestConvert_PackingFailureDeliversNothing(t *testing.T) {
	svc := newPipeline(&fakeRasterizer{pages: 2}, failingPacker{})

	res, err := svc.Convert(context.Background(), []byte("%PDF-stub"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, archive.ErrPacking))
	// всё или ничего: усечённый архив наружу не выходит
	assert.Nil(t, res)
}

func TestConvert_SameInputTwiceSameEntries(t *testing.T) {
	svc := newPipeline(&fakeRasterizer{pages: 4}, archive.NewZipPacker())

	names := func() []string {
		res, err := svc.Convert(context.Background(), []byte("%PDF-stub"))
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(res.Archive), int64(len(res.Archive)))
		require.NoError(t, err)

		var out []string
		for _, f := range zr.File {
			out = append(out, f.Name)
		}
		return out
	}

	assert.Equal(t, names(), names())
}

func TestUserMessage_Classification(t *testing.T) {
	assert.Equal(t, "could not read document", UserMessage(pdf.ErrUnreadable))
	assert.Equal(t, "the document has no pages to convert", UserMessage(pdf.ErrNoPages))
	assert.Equal(t, "conversion failed", UserMessage(archive.ErrPacking))
	assert.Equal(t, "conversion was cancelled", UserMessage(context.Canceled))
	assert.Equal(t, "conversion failed", UserMessage(errors.New("unknown")))
}
