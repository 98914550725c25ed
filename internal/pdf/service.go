package pdf

import "context"

type Service struct {
	rast Rasterizer
}

func NewService(r Rasterizer) *Service {
	return &Service{rast: r}
}

func (s *Service) Open(ctx context.Context, document []byte) (PageSeq, error) {
	return s.rast.Open(ctx, document)
}
