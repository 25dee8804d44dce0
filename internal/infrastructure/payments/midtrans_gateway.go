package payments

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var (
	ErrMissingMidtransServerKey = errors.New("missing MIDTRANS_SERVER_KEY")
	ErrMidtransNotConfigured    = errors.New("midtrans gateway not configured")
	ErrPaymentCreateRejected    = errors.New("midtrans rejected payment creation")
	ErrInvalidWebhookSignature  = errors.New("invalid webhook signature")
	ErrMalformedWebhookPayload  = errors.New("malformed webhook payload")
	ErrUnknownTransactionStatus = errors.New("unknown transaction status")
	ErrNonIntegralWebhookAmount = errors.New("webhook gross_amount is not whole rupiah")
)

const (
	sandboxBaseURL    = "https://app.sandbox.midtrans.com"
	productionBaseURL = "https://app.midtrans.com"

	paymentExpiryHours = 24
)

// MidtransGateway talks to the Midtrans Snap API and verifies inbound
// webhook notifications.
type MidtransGateway struct {
	http      *resty.Client
	serverKey string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*MidtransGateway)(nil)

func NewMidtransGateway(serverKey string) (*MidtransGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MidtransGateway{mockMode: true, serverKey: serverKey}, nil
	}

	if serverKey == "" {
		log.Printf("[payment][gateway] missing MIDTRANS_SERVER_KEY")
		return nil, ErrMissingMidtransServerKey
	}

	baseURL := sandboxBaseURL
	if strings.EqualFold(os.Getenv("MIDTRANS_ENV"), "production") {
		baseURL = productionBaseURL
	}

	timeout := 10 * time.Second
	if v := os.Getenv("MIDTRANS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(serverKey, "").
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	log.Printf("[payment][gateway] Midtrans Snap client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &MidtransGateway{http: client, serverKey: serverKey}, nil
}

type snapRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	ItemDetails     []snapItem `json:"item_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Phone     string `json:"phone"`
		Email     string `json:"email,omitempty"`
	} `json:"customer_details"`
	EnabledPayments []string `json:"enabled_payments"`
	Expiry          struct {
		Unit     string `json:"unit"`
		Duration int    `json:"duration"`
	} `json:"expiry"`
}

type snapItem struct {
	ID           string `json:"id"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
	Name         string `json:"name"`
	MerchantName string `json:"merchant_name,omitempty"`
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

func (g *MidtransGateway) CreatePayment(ctx context.Context, orderID string, amount int64, customer entities.Driver) (entities.PaymentHandle, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock create start order_id=%s amount=%d", orderID, amount)
		handle := entities.PaymentHandle{
			Ref:        fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano()),
			PaymentURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/mock",
			ExpiresAt:  time.Now().UTC().Add(paymentExpiryHours * time.Hour),
		}
		log.Printf("[payment][gateway] mock create success order_id=%s ref=%s", orderID, handle.Ref)
		return handle, nil
	}

	if g == nil || g.http == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentHandle{}, ErrMidtransNotConfigured
	}
	log.Printf("[payment][gateway] create start order_id=%s amount=%d", orderID, amount)

	var req snapRequest
	req.TransactionDetails.OrderID = orderID
	req.TransactionDetails.GrossAmount = amount
	req.ItemDetails = []snapItem{{
		ID:           "DRIVER_TOPUP",
		Price:        amount,
		Quantity:     1,
		Name:         fmt.Sprintf("Top-up saldo driver %s", customer.Name),
		MerchantName: "Bakusam Express",
	}}
	req.CustomerDetails.FirstName = customer.Name
	req.CustomerDetails.Phone = customer.Phone
	req.CustomerDetails.Email = customer.Email
	req.EnabledPayments = []string{"qris", "bank_transfer", "gopay", "shopeepay"}
	req.Expiry.Unit = "hours"
	req.Expiry.Duration = paymentExpiryHours

	var out snapResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/snap/v1/transactions")
	if err != nil {
		log.Printf("[payment][gateway] snap create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentHandle{}, err
	}
	if resp.IsError() || out.Token == "" {
		log.Printf("[payment][gateway] snap create rejected order_id=%s status=%d errors=%v", orderID, resp.StatusCode(), out.ErrorMessages)
		return entities.PaymentHandle{}, fmt.Errorf("%w: status=%d %s", ErrPaymentCreateRejected, resp.StatusCode(), strings.Join(out.ErrorMessages, "; "))
	}

	handle := entities.PaymentHandle{
		Ref:        out.Token,
		PaymentURL: out.RedirectURL,
		ExpiresAt:  time.Now().UTC().Add(paymentExpiryHours * time.Hour),
	}
	log.Printf("[payment][gateway] create success order_id=%s ref=%s", orderID, handle.Ref)
	return handle, nil
}

type webhookNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	FraudStatus       string `json:"fraud_status"`
}

// ParseWebhook authenticates a Midtrans HTTP notification and maps it to a
// gateway event. The signature is
// sha512(order_id + status_code + gross_amount + server_key); a payload that
// fails verification is rejected outright.
func (g *MidtransGateway) ParseWebhook(rawPayload []byte) (entities.GatewayEvent, error) {
	var n webhookNotification
	if err := json.Unmarshal(rawPayload, &n); err != nil {
		return entities.GatewayEvent{}, ErrMalformedWebhookPayload
	}
	if n.OrderID == "" || n.TransactionStatus == "" {
		return entities.GatewayEvent{}, ErrMalformedWebhookPayload
	}

	if !g.verifySignature(n) {
		log.Printf("[payment][gateway] webhook signature mismatch order_id=%s", n.OrderID)
		return entities.GatewayEvent{}, ErrInvalidWebhookSignature
	}

	amount, err := parseRupiah(n.GrossAmount)
	if err != nil {
		return entities.GatewayEvent{}, err
	}

	kind, err := mapTransactionStatus(n.TransactionStatus, n.FraudStatus)
	if err != nil {
		return entities.GatewayEvent{}, err
	}

	return entities.GatewayEvent{
		Kind:       kind,
		OrderID:    n.OrderID,
		PaymentRef: n.TransactionID,
		Amount:     amount,
		RawStatus:  n.TransactionStatus,
	}, nil
}

func (g *MidtransGateway) verifySignature(n webhookNotification) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + g.serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) == 1
}

// parseRupiah converts Midtrans' decimal-string amount (e.g. "50000.00") to
// whole rupiah without going through floating point.
func parseRupiah(s string) (int64, error) {
	whole, frac, found := strings.Cut(s, ".")
	if found && strings.Trim(frac, "0") != "" {
		return 0, ErrNonIntegralWebhookAmount
	}
	v, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrMalformedWebhookPayload
	}
	return v, nil
}

func mapTransactionStatus(status, fraudStatus string) (entities.GatewayEventKind, error) {
	switch status {
	case "capture", "settlement":
		// Fraud "deny" never credits; accept/challenge follow the provider's
		// settlement decision.
		if fraudStatus == "deny" {
			return entities.EventFailed, nil
		}
		return entities.EventSuccess, nil
	case "pending":
		return entities.EventPending, nil
	case "deny":
		return entities.EventFailed, nil
	case "expire":
		return entities.EventExpired, nil
	case "cancel":
		return entities.EventCancelled, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTransactionStatus, status)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MIDTRANS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
