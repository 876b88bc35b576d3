package interfaces

import (
	"context"
	"encoding/json"
)

// INotificationGateway abstracts the outbound WhatsApp provider (Fonnte).
//
// SendText returns the provider's raw JSON response; callers pass it through
// to API consumers unchanged, failures included.
type INotificationGateway interface {
	SendText(ctx context.Context, phone, message string) (json.RawMessage, error)
}
