package archive

import (
	"context"
	"io"

	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
)

type Service struct {
	packer Packer
}

func NewService(p Packer) *Service {
	return &Service{packer: p}
}

func (s *Service) Pack(ctx context.Context, pages pdf.PageSeq, w io.Writer) (int, error) {
	return s.packer.Pack(ctx, pages, w)
}
