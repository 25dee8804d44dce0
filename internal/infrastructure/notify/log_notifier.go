package notify

import (
	"context"
	"log"

	"bakusam_topup/internal/usecase/interfaces"
)

// LogNotifier is the fallback when no WhatsApp transport is configured.
// Messages are logged and reported as delivered so the payment flow keeps
// working in local development.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) SendMessage(_ context.Context, phone, text string) error {
	log.Printf("[notify][log] driver message phone=%s text=%q", phone, text)
	return nil
}

func (LogNotifier) SendAdminMessage(_ context.Context, text string) error {
	log.Printf("[notify][log] admin message text=%q", text)
	return nil
}
