package payments

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"bakusam_topup/internal/domain/entities"
)

const testServerKey = "SB-Mid-server-testkey"

func signedPayload(t *testing.T, orderID, statusCode, grossAmount, txStatus, fraudStatus string) []byte {
	t.Helper()
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	payload := map[string]string{
		"order_id":           orderID,
		"status_code":        statusCode,
		"gross_amount":       grossAmount,
		"signature_key":      hex.EncodeToString(sum[:]),
		"transaction_status": txStatus,
		"transaction_id":     "tx-123",
		"fraud_status":       fraudStatus,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return b
}

func testGateway() *MidtransGateway {
	return &MidtransGateway{serverKey: testServerKey}
}

func TestParseWebhook_Signature(t *testing.T) {
	g := testGateway()

	t.Run("valid signature accepted", func(t *testing.T) {
		ev, err := g.ParseWebhook(signedPayload(t, "TOPUP_1", "200", "50000.00", "settlement", "accept"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != entities.EventSuccess {
			t.Fatalf("expected success event, got %s", ev.Kind)
		}
		if ev.Amount != 50000 {
			t.Fatalf("expected amount 50000, got %d", ev.Amount)
		}
	})

	t.Run("tampered amount rejected", func(t *testing.T) {
		raw := signedPayload(t, "TOPUP_1", "200", "50000.00", "settlement", "accept")
		var m map[string]string
		_ = json.Unmarshal(raw, &m)
		m["gross_amount"] = "99000.00"
		tampered, _ := json.Marshal(m)

		_, err := g.ParseWebhook(tampered)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		_, err := g.ParseWebhook([]byte(`{"order_id":"TOPUP_1","status_code":"200","gross_amount":"50000.00","transaction_status":"settlement"}`))
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := g.ParseWebhook([]byte(`{`))
		if !errors.Is(err, ErrMalformedWebhookPayload) {
			t.Fatalf("expected ErrMalformedWebhookPayload, got %v", err)
		}
	})

	t.Run("missing order id rejected", func(t *testing.T) {
		_, err := g.ParseWebhook([]byte(`{"transaction_status":"settlement"}`))
		if !errors.Is(err, ErrMalformedWebhookPayload) {
			t.Fatalf("expected ErrMalformedWebhookPayload, got %v", err)
		}
	})
}

func TestParseWebhook_StatusMapping(t *testing.T) {
	g := testGateway()

	cases := []struct {
		name        string
		txStatus    string
		fraudStatus string
		want        entities.GatewayEventKind
	}{
		{"settlement accepted", "settlement", "accept", entities.EventSuccess},
		{"capture accepted", "capture", "accept", entities.EventSuccess},
		{"capture challenged", "capture", "challenge", entities.EventSuccess},
		{"settlement fraud denied", "settlement", "deny", entities.EventFailed},
		{"pending", "pending", "", entities.EventPending},
		{"deny", "deny", "", entities.EventFailed},
		{"expire", "expire", "", entities.EventExpired},
		{"cancel", "cancel", "", entities.EventCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := g.ParseWebhook(signedPayload(t, "TOPUP_1", "200", "50000.00", tc.txStatus, tc.fraudStatus))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Kind != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, ev.Kind)
			}
		})
	}

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := g.ParseWebhook(signedPayload(t, "TOPUP_1", "200", "50000.00", "refund", ""))
		if !errors.Is(err, ErrUnknownTransactionStatus) {
			t.Fatalf("expected ErrUnknownTransactionStatus, got %v", err)
		}
	})
}

func TestParseRupiah(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"50000.00", 50000, nil},
		{"50000", 50000, nil},
		{"1000.0", 1000, nil},
		{"10000000.00", 10000000, nil},
		{"50000.50", 0, ErrNonIntegralWebhookAmount},
		{"abc", 0, ErrMalformedWebhookPayload},
	}

	for _, tc := range cases {
		got, err := parseRupiah(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("parseRupiah(%q): expected err %v, got %v", tc.in, tc.wantErr, err)
		}
		if err == nil && got != tc.want {
			t.Fatalf("parseRupiah(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
