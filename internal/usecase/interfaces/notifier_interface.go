package interfaces

import "context"

// INotifier abstracts the chat transport used for outbound messages.
// Delivery is best-effort; a send failure must never roll back a credited
// balance, so implementations log and return the error for the caller to
// count, not to act on.
type INotifier interface {
	SendMessage(ctx context.Context, phone string, text string) error
	SendAdminMessage(ctx context.Context, text string) error
}
