package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"bakusam_topup/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var (
	ErrMissingWhatsAppURL = errors.New("missing WHATSAPP_API_URL")
	ErrSendRejected       = errors.New("whatsapp transport rejected message")
)

// WhatsAppNotifier delivers outbound messages through the WhatsApp transport
// service. Delivery is best-effort: the caller logs failures and moves on.
type WhatsAppNotifier struct {
	http        *resty.Client
	adminNumber string
}

var _ interfaces.INotifier = (*WhatsAppNotifier)(nil)

func NewWhatsAppNotifier(apiURL string) (*WhatsAppNotifier, error) {
	if apiURL == "" {
		log.Printf("[notify][whatsapp] missing WHATSAPP_API_URL")
		return nil, ErrMissingWhatsAppURL
	}

	timeout := 10 * time.Second
	if v := os.Getenv("WHATSAPP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	if token := os.Getenv("WHATSAPP_API_TOKEN"); token != "" {
		client.SetAuthToken(token)
	}

	log.Printf("[notify][whatsapp] transport client initialized api_url=%s timeout=%s", apiURL, timeout)
	return &WhatsAppNotifier{
		http:        client,
		adminNumber: os.Getenv("ADMIN_NUMBER"),
	}, nil
}

type sendMessageRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

func (n *WhatsAppNotifier) SendMessage(ctx context.Context, phone string, text string) error {
	resp, err := n.http.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{Phone: phone, Text: text}).
		Post("/v1/messages/send")
	if err != nil {
		log.Printf("[notify][whatsapp] send failed phone=%s err=%v", phone, err)
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		log.Printf("[notify][whatsapp] send rejected phone=%s status=%d", phone, resp.StatusCode())
		return fmt.Errorf("%w: status=%d", ErrSendRejected, resp.StatusCode())
	}
	return nil
}

// SendAdminMessage notifies the operator number. A missing ADMIN_NUMBER is
// not an error; the notification is just skipped.
func (n *WhatsAppNotifier) SendAdminMessage(ctx context.Context, text string) error {
	if n.adminNumber == "" {
		return nil
	}
	return n.SendMessage(ctx, n.adminNumber, text)
}
