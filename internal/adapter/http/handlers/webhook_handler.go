package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/infrastructure/payments"
	"bakusam_topup/internal/usecase"
	"bakusam_topup/internal/usecase/interfaces"
	"bakusam_topup/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Midtrans payment notifications. Signature
// verification happens inside the gateway's ParseWebhook so the handler
// never acts on an unverified payload.
//
// Status codes drive the provider's retry behavior: 2xx acknowledges and
// stops retries (including events for unknown or already-settled orders),
// 5xx asks for a redelivery (a confirmed payment whose credit failed).

type WebhookHandler struct {
	gateway interfaces.IPaymentGateway
	topup   usecase.ITopupUseCase
}

func NewWebhookHandler(gateway interfaces.IPaymentGateway, topup usecase.ITopupUseCase) *WebhookHandler {
	return &WebhookHandler{gateway: gateway, topup: topup}
}

// HandleNotification processes one gateway notification delivery.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	if h.gateway == nil {
		log.Printf("[webhook][handler] gateway not configured, cannot verify notification")
		appErr := pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.gateway.ParseWebhook(raw)
	if err != nil {
		log.Printf("[webhook][handler] payload rejected err=%v", err)
		appErr := mapWebhookParseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.topup.HandleGatewayEvent(c.Request.Context(), event); err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrAlreadyFinalized):
			// Acknowledged so the provider stops retrying a settled order.
			log.Printf("[webhook][handler] event ignored order_id=%s err=%v", event.OrderID, err)
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		default:
			log.Printf("[webhook][handler] event failed order_id=%s kind=%s err=%v", event.OrderID, event.Kind, err)
			appErr := pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Failed to process notification", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	log.Printf("[webhook][handler] event processed order_id=%s kind=%s", event.OrderID, event.Kind)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleTestNotification accepts an unsigned event for manual end-to-end
// checks. Only mounted when WEBHOOK_TEST_ENABLED is set; never expose it in
// production.
func (h *WebhookHandler) HandleTestNotification(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
		Kind    string `json:"kind" binding:"required"`
		Amount  int64  `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event := entities.GatewayEvent{
		Kind:      entities.GatewayEventKind(req.Kind),
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		RawStatus: "test",
	}
	if err := h.topup.HandleGatewayEvent(c.Request.Context(), event); err != nil {
		appErr := pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Failed to process notification", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapWebhookParseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, payments.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
	default:
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Malformed webhook payload", http.StatusBadRequest)
	}
}

// IsWebhookTestEnabled gates the unsigned test endpoint.
func IsWebhookTestEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("WEBHOOK_TEST_ENABLED"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
