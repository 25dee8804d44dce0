package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	response "bakusam_topup/internal/adapter/http/dto/response"
	"bakusam_topup/internal/usecase"
	"bakusam_topup/internal/validation"
	"bakusam_topup/pkg"

	"github.com/gin-gonic/gin"
)

// DriverHandler exposes the driver directory read side for the operator
// dashboard.

type DriverHandler struct {
	balance usecase.IBalanceUseCase
}

func NewDriverHandler(balance usecase.IBalanceUseCase) *DriverHandler {
	return &DriverHandler{balance: balance}
}

// GetDriver returns one driver row with the current balance.
func (h *DriverHandler) GetDriver(c *gin.Context) {
	phone := c.Param("phone")
	log.Printf("[driver][handler] get start phone=%q", phone)

	driver, err := h.balance.GetDriver(c.Request.Context(), phone)
	if err != nil {
		log.Printf("[driver][handler] get failed phone=%q err=%v", phone, err)
		appErr := mapDriverError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDriver(driver))
}

// ListTransactions returns the driver's top-up history, newest first.
func (h *DriverHandler) ListTransactions(c *gin.Context) {
	phone := c.Param("phone")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	txs, err := h.balance.ListTransactions(c.Request.Context(), phone, limit)
	if err != nil {
		log.Printf("[driver][handler] list-transactions failed phone=%q err=%v", phone, err)
		appErr := mapDriverError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func mapDriverError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, validation.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownDriver):
		return pkg.NewDomainErrorSimple("DRIVER_NOT_FOUND", "Driver not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDirectoryTimeout):
		return pkg.NewDomainErrorSimple("DIRECTORY_TIMEOUT", "Driver directory timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
