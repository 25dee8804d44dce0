package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bakusam_topup/internal/adapter/http/dto/request"
	response "bakusam_topup/internal/adapter/http/dto/response"
	"bakusam_topup/internal/usecase"
	"bakusam_topup/internal/validation"
	"bakusam_topup/pkg"

	"github.com/gin-gonic/gin"
)

// MessageHandler turns chat messages relayed by the WhatsApp bridge into
// commands: TOPUP <jumlah>, SALDO, HELP, INFO. Every driver-facing outcome,
// including admission rejections, is answered with HTTP 200 and a reply for
// the bridge to relay; non-2xx is reserved for malformed requests and
// internal faults.

type MessageHandler struct {
	topup   usecase.ITopupUseCase
	balance usecase.IBalanceUseCase
}

func NewMessageHandler(topup usecase.ITopupUseCase, balance usecase.IBalanceUseCase) *MessageHandler {
	return &MessageHandler{topup: topup, balance: balance}
}

// HandleMessage dispatches one inbound chat message.
func (h *MessageHandler) HandleMessage(c *gin.Context) {
	var req request.InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[message][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	command := strings.ToUpper(strings.TrimSpace(req.Text))
	log.Printf("[message][handler] inbound phone=%q command=%q", req.Phone, firstWord(command))

	switch {
	case strings.HasPrefix(command, "TOPUP"):
		h.handleTopup(c, req)
	case command == "SALDO":
		h.handleBalance(c, req)
	case command == "HELP":
		c.JSON(http.StatusOK, response.MessageResponse{Reply: helpReply})
	case command == "INFO":
		c.JSON(http.StatusOK, response.MessageResponse{Reply: infoReply})
	default:
		c.JSON(http.StatusOK, response.MessageResponse{Reply: unknownCommandReply(req.Text)})
	}
}

func (h *MessageHandler) handleTopup(c *gin.Context, req request.InboundMessageRequest) {
	amount, err := parseTopupAmount(req.Text)
	if err != nil {
		c.JSON(http.StatusOK, response.MessageResponse{Reply: "Format: TOPUP <jumlah>\nContoh: TOPUP 50000"})
		return
	}

	ticket, err := h.topup.CreateOrder(c.Request.Context(), req.Phone, amount)
	if err != nil {
		log.Printf("[message][handler] topup rejected phone=%q amount=%d err=%v", req.Phone, amount, err)
		reply, ok := topupErrorReply(err)
		if !ok {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Reply: reply})
		return
	}

	log.Printf("[message][handler] topup created phone=%q order_id=%s", req.Phone, ticket.OrderID)
	c.JSON(http.StatusOK, response.MessageResponse{
		Reply: fmt.Sprintf(
			"💳 *PEMBAYARAN TOP-UP*\n\n💰 Jumlah: Rp %s\n💳 Order ID: %s\n⏰ Expired: %s\n\nSilakan klik link pembayaran dan scan QR code di halaman pembayaran:\n🔗 Link: %s\n\n⚠️ Pembayaran akan expired dalam 24 jam",
			pkg.FormatRupiah(ticket.Amount), ticket.OrderID, ticket.ExpiresAt.Format("02/01/2006 15:04"),
			ticket.PaymentURL),
		Order: response.FromOrderTicket(ticket),
	})
}

func (h *MessageHandler) handleBalance(c *gin.Context, req request.InboundMessageRequest) {
	driver, err := h.balance.GetDriver(c.Request.Context(), req.Phone)
	if err != nil {
		log.Printf("[message][handler] saldo failed phone=%q err=%v", req.Phone, err)
		switch {
		case errors.Is(err, validation.ErrInvalidPhone):
			c.JSON(http.StatusOK, response.MessageResponse{Reply: "Format nomor WhatsApp tidak valid"})
		case errors.Is(err, usecase.ErrUnknownDriver):
			c.JSON(http.StatusOK, response.MessageResponse{Reply: "Nomor WhatsApp tidak terdaftar sebagai driver"})
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Reply: fmt.Sprintf(
			"💵 *SALDO DRIVER*\n\n🆔 ID: %s\n👤 Nama: %s\n📱 Nomor: %s\n💰 Saldo: Rp %s\n📊 Rating: %d/10\n🚦 Status: %s",
			driver.ID, driver.Name, driver.Phone, pkg.FormatRupiah(driver.Balance), driver.Rating, driver.Status),
	})
}

// parseTopupAmount extracts the amount from "TOPUP <jumlah>". Dots are
// accepted as thousands separators ("TOPUP 50.000").
func parseTopupAmount(text string) (int64, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) != 2 {
		return 0, errors.New("expected exactly one argument")
	}
	raw := strings.ReplaceAll(parts[1], ".", "")
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// topupErrorReply maps admission errors to the reply the driver sees. The
// second return is false for faults that should surface as HTTP 5xx instead.
func topupErrorReply(err error) (string, bool) {
	switch {
	case errors.Is(err, validation.ErrInvalidPhone):
		return "Format nomor WhatsApp tidak valid", true
	case errors.Is(err, validation.ErrAmountNotMultiple):
		return "Jumlah top-up harus kelipatan Rp 1.000", true
	case errors.Is(err, validation.ErrAmountOutOfRange):
		return "Jumlah top-up tidak valid. Minimum Rp 1.000, maksimum Rp 10.000.000", true
	case errors.Is(err, usecase.ErrUnknownDriver):
		return "Nomor WhatsApp tidak terdaftar sebagai driver", true
	case errors.Is(err, usecase.ErrDuplicatePending):
		return "Anda masih memiliki pembayaran yang pending. Silakan selesaikan terlebih dahulu.", true
	case errors.Is(err, usecase.ErrRateLimited):
		return "Terlalu banyak request. Silakan tunggu beberapa menit.", true
	case errors.Is(err, usecase.ErrGatewayCreateFailed), errors.Is(err, usecase.ErrGatewayTimeout), errors.Is(err, usecase.ErrGatewayNotConfigured):
		return "Gagal membuat pembayaran. Silakan coba lagi.", true
	default:
		return "", false
	}
}

func unknownCommandReply(body string) string {
	return fmt.Sprintf(
		"❓ *COMMAND TIDAK DIKENAL*\n\nPesan: %q\n\n*Commands yang tersedia:*\n• TOPUP <jumlah> - Top-up saldo\n• SALDO - Cek saldo\n• HELP - Bantuan\n• INFO - Informasi bot\n\nKetik *HELP* untuk melihat bantuan lengkap.", body)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}

const helpReply = "📚 *BANTUAN TOP-UP BOT*\n\n" +
	"*Commands yang tersedia:*\n\n" +
	"💰 *TOPUP <jumlah>* - Top-up saldo\n" +
	"   Contoh: TOPUP 50000\n" +
	"   Min: Rp 1.000, Max: Rp 10.000.000\n\n" +
	"💵 *SALDO* - Cek saldo driver\n\n" +
	"❓ *HELP* - Tampilkan bantuan ini\n\n" +
	"ℹ️ *INFO* - Informasi bot\n\n" +
	"*Metode Pembayaran:*\n" +
	"• QRIS (GoPay, OVO, DANA, dll)\n" +
	"• Bank Transfer\n" +
	"• E-Wallet\n\n" +
	"*Durasi:* Pembayaran expired dalam 24 jam\n\n" +
	"Untuk bantuan lebih lanjut, hubungi admin."

const infoReply = "ℹ️ *INFORMASI BOT*\n\n" +
	"🤖 *Top-Up Driver Bot*\n" +
	"📱 Platform: WhatsApp\n" +
	"💳 Payment Gateway: Midtrans\n" +
	"📊 Database: DynamoDB\n" +
	"🔄 Status: Active\n\n" +
	"*Fitur:*\n" +
	"✅ Top-up saldo driver\n" +
	"✅ Cek saldo real-time\n" +
	"✅ Multiple payment methods\n" +
	"✅ Webhook notifications\n" +
	"✅ Admin monitoring\n\n" +
	"Powered by PT Bakusam Express Indonesia"
