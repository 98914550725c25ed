package ports

import (
	"context"
	"io"
)

// ArchiveStorage — выгрузка готовых архивов, которые не пролезают
// в лимит загрузки телеграма. Хранилище не участвует в конвейере.
type ArchiveStorage interface {
	ObjectKey(telegramID int64, filename string) string
	SaveArchive(ctx context.Context, telegramID int64, r io.Reader, size int64, filename string) (string, error)
}
