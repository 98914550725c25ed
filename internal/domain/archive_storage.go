package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/pdf_ziper/internal/ports"
)

type archiveStorage struct {
	client ports.S3Client
}

func NewArchiveStorage(client ports.S3Client) ports.ArchiveStorage {
	return &archiveStorage{client: client}
}

// ObjectKey — путь в бакете
func (s *archiveStorage) ObjectKey(telegramID int64, filename string) string {
	date := time.Now().Format("2006-01-02")
	clean := filepath.Base(filename)
	return fmt.Sprintf("%d/%s/%s", telegramID, date, clean)
}

func (s *archiveStorage) SaveArchive(
	ctx context.Context,
	telegramID int64,
	r io.Reader,
	size int64,
	filename string,
) (string, error) {

	if telegramID == 0 {
		return "", fmt.Errorf("telegramID required")
	}

	key := s.ObjectKey(telegramID, filename)

	return s.client.PutObject(ctx, key, r, size, "application/zip")
}
