package plan

import (
	"errors"
	"net/http"
	"strconv"

	"gymcore/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePlan godoc
// @Summary      Create a membership plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan definition"
// @Success      201      {object}  MembershipPlan
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPlanInvalid) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan definition"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListPlans godoc
// @Summary      List active membership plans
// @Tags         plans
// @Produce      json
// @Success      200  {array}  MembershipPlan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary      Get a membership plan
// @Tags         plans
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  MembershipPlan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	p, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch plan"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeactivatePlan godoc
// @Summary      Deactivate a membership plan
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [delete]
func (h *Handler) DeactivatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := h.service.DeactivatePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate plan"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deactivated"})
}
