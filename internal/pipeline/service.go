package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Vovarama1992/pdf_ziper/internal/archive"
	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

type Result struct {
	JobID   string
	Pages   int
	Archive []byte
}

type Service struct {
	pdfService     *pdf.Service
	archiveService *archive.Service
	log            *logger.ZapLogger
}

func NewService(
	pdfService *pdf.Service,
	archiveService *archive.Service,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		pdfService:     pdfService,
		archiveService: archiveService,
		log:            log,
	}
}

// Convert прогоняет один документ через весь конвейер:
// PDF → страницы → ZIP. Архив отдаётся только целиком — при любой
// ошибке наружу не уходит ни байта.
func (s *Service) Convert(ctx context.Context, document []byte) (*Result, error) {
	jobID := uuid.NewString()

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("job %s: converting pdf (%s)", jobID, humanize.Bytes(uint64(len(document)))),
		Service: "pipeline",
	})

	pages, err := s.pdfService.Open(ctx, document)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("job %s: rasterizer rejected document", jobID),
			Service: "pipeline",
			Error:   err,
		})
		return nil, err
	}
	defer pages.Close()

	// буфер принадлежит конвейеру: наполовину записанный архив
	// никогда не покидает этот метод
	var buf bytes.Buffer
	packed, err := s.archiveService.Pack(ctx, pages, &buf)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("job %s: packing failed", jobID),
			Service: "pipeline",
			Error:   err,
		})
		return nil, err
	}

	s.log.Log(logger.LogEntry{
		Level: "info",
		Message: fmt.Sprintf(
			"job %s: done, %d page(s), archive %s",
			jobID, packed, humanize.Bytes(uint64(buf.Len())),
		),
		Service: "pipeline",
	})

	return &Result{JobID: jobID, Pages: packed, Archive: buf.Bytes()}, nil
}
