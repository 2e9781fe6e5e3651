package subscription

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymcore/internal/api"
	"gymcore/internal/auth"
	"gymcore/internal/member"
	"gymcore/internal/plan"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Subscribe godoc
// @Summary      Subscribe the caller to a membership plan
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSubscriptionRequest  true  "Subscription details"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /subscriptions [post]
func (h *Handler) Subscribe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start_date must be RFC3339"})
			return
		}
		startDate = parsed
	}

	sub, err := h.service.CreateForUser(c.Request.Context(), userID, req.PlanID, startDate, req.AutoRenewal, req.BillingDay)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
		case errors.Is(err, plan.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		case errors.Is(err, ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have an active subscription"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Freeze godoc
// @Summary      Freeze an active subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Subscription ID"
// @Param        request  body      FreezeRequest  true  "Freeze duration"
// @Success      200      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /subscriptions/{id}/freeze [post]
func (h *Handler) Freeze(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	var req FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.Freeze(c.Request.Context(), id, req.Days)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription not found"})
		case errors.Is(err, ErrNotActive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Only active subscriptions can be frozen"})
		case errors.Is(err, ErrFreezeNotAllowed):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "This plan does not allow freezing"})
		case errors.Is(err, ErrFreezeTooLong):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Freeze duration exceeds the plan's maximum"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to freeze subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Renew godoc
// @Summary      Process a subscription renewal
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Subscription ID"
// @Success      200  {object}  Subscription
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /admin/subscriptions/{id}/renew [post]
func (h *Handler) Renew(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	sub, err := h.service.ProcessRenewal(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription not found"})
		case errors.Is(err, ErrAutoRenewalDisabled):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Auto-renewal is not enabled for this subscription"})
		case errors.Is(err, ErrNotActive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Only active subscriptions can be renewed"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to renew subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// UpdateStatus godoc
// @Summary      Update a subscription's status
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Subscription ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/subscriptions/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription not found"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown subscription status"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// GetMySubscriptions godoc
// @Summary      List the caller's subscriptions
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Subscription
// @Router       /subscriptions/me [get]
func (h *Handler) GetMySubscriptions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.service.GetForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// GetSubscription godoc
// @Summary      Get a subscription by ID
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Subscription ID"
// @Success      200  {object}  Subscription
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/{id} [get]
func (h *Handler) GetSubscription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	sub, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListSubscriptions godoc
// @Summary      List subscriptions by lifecycle bucket
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        filter      query    string  false  "active, expiring or overdue"
// @Param        days_ahead  query    int     false  "Window for the expiring filter (default 7)"
// @Success      200         {array}  Subscription
// @Router       /admin/subscriptions [get]
func (h *Handler) ListSubscriptions(c *gin.Context) {
	var (
		subs []Subscription
		err  error
	)
	switch c.DefaultQuery("filter", "active") {
	case "active":
		subs, err = h.service.ListActive(c.Request.Context())
	case "expiring":
		daysAhead, convErr := strconv.Atoi(c.DefaultQuery("days_ahead", "7"))
		if convErr != nil || daysAhead <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "days_ahead must be a positive integer"})
			return
		}
		subs, err = h.service.ListExpiring(c.Request.Context(), daysAhead)
	case "overdue":
		subs, err = h.service.ListOverdue(c.Request.Context())
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "filter must be active, expiring or overdue"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}
