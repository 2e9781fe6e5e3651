package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gymcore/internal/api"
	"gymcore/internal/auth"
	"gymcore/internal/member"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ProcessPayment godoc
// @Summary      Charge the caller through the payment gateway
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ProcessPaymentRequest  true  "Payment details"
// @Success      201      {object}  Payment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) ProcessPayment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be a decimal string"})
		return
	}

	p, err := h.service.ProcessForUser(c.Request.Context(), userID, req.SubscriptionID, amount, req.Method, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
		case errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Amount must be positive"})
		case errors.Is(err, ErrInvalidMethod):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown payment method"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process payment"})
		}
		return
	}

	// A declined charge is still a created payment record.
	c.JSON(http.StatusCreated, p)
}

// RefundPayment godoc
// @Summary      Refund a completed payment
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Payment ID"
// @Param        request  body      RefundRequest  true  "Refund details"
// @Success      200      {object}  Payment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/payments/{id}/refund [post]
func (h *Handler) RefundPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid payment ID"})
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be a positive decimal string"})
		return
	}

	p, err := h.service.Refund(c.Request.Context(), id, amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, ErrNotRefundable):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Only completed payments can be refunded"})
		case errors.Is(err, ErrRefundTooLarge):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Refund amount exceeds the original payment"})
		case errors.Is(err, ErrRefundFailed):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Gateway rejected the refund"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to refund payment"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetMyPayments godoc
// @Summary      List the caller's payments
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Payment
// @Router       /payments/me [get]
func (h *Handler) GetMyPayments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment godoc
// @Summary      Get a payment by ID
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  Payment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid payment ID"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payment"})
		return
	}

	c.JSON(http.StatusOK, p)
}
