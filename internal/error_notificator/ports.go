package error_notificator

import "context"

type Notificator interface {
	// Notify — отправляет сообщение об ошибке конвертации админу
	Notify(ctx context.Context, err error, details string) error
}
