package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakusam_topup/internal/adapter/http/handlers/mocks"
	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDriverRouter(t *testing.T) (*gin.Engine, *mocks.MockIBalanceUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	balance := mocks.NewMockIBalanceUseCase(ctrl)
	h := NewDriverHandler(balance)

	r := gin.New()
	r.GET("/v1/drivers/:phone", h.GetDriver)
	r.GET("/v1/drivers/:phone/transactions", h.ListTransactions)
	return r, balance
}

func TestDriverHandler_GetDriver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		r, balance := newDriverRouter(t)
		balance.EXPECT().GetDriver(gomock.Any(), "6281234567890").Return(entities.Driver{
			ID: "DRV-001", Name: "Budi Santoso", Phone: "6281234567890", Balance: 150_000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/drivers/6281234567890", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["balance"] != float64(150_000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, balance := newDriverRouter(t)
		balance.EXPECT().GetDriver(gomock.Any(), "6289999999999").Return(entities.Driver{}, usecase.ErrUnknownDriver)

		req := httptest.NewRequest(http.MethodGet, "/v1/drivers/6289999999999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("directory timeout", func(t *testing.T) {
		r, balance := newDriverRouter(t)
		balance.EXPECT().GetDriver(gomock.Any(), "6281234567890").Return(entities.Driver{}, usecase.ErrDirectoryTimeout)

		req := httptest.NewRequest(http.MethodGet, "/v1/drivers/6281234567890", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})
}

func TestDriverHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, balance := newDriverRouter(t)
	balance.EXPECT().ListTransactions(gomock.Any(), "6281234567890", 5).Return([]entities.Transaction{
		{ID: "tx-1", OrderID: "TOPUP_6281234567890_1_abcd1234", Amount: 50_000, PreviousBalance: 100_000, NewBalance: 150_000, Type: entities.TransactionTypeTopup, Timestamp: time.Now().UTC()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/drivers/6281234567890/transactions?limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "tx-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
