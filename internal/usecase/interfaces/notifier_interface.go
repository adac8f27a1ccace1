package interfaces

import (
	"context"

	"obsydia_retail/internal/domain/entities"
)

// INotifier delivers a rendered notification (e.g. SMTP2GO, SQS).
//
// A failed Send is a single opaque error; there is no per-recipient result.
type INotifier interface {
	Send(ctx context.Context, n entities.Notification) error
}
