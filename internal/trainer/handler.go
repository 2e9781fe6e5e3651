package trainer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gymcore/internal/api"
	"gymcore/internal/logger"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type CreateTrainerRequest struct {
	UserID         int     `json:"user_id" binding:"required"`
	FullName       string  `json:"full_name" binding:"required,min=2,max=255"`
	Specialization *string `json:"specialization,omitempty"`
	HourlyRate     *string `json:"hourly_rate,omitempty"`
}

// CreateTrainer godoc
// @Summary      Create a trainer profile
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainerRequest  true  "Trainer profile"
// @Success      201      {object}  Trainer
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var hourlyRate *decimal.Decimal
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil || rate.IsNegative() {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid hourly rate"})
			return
		}
		hourlyRate = &rate
	}

	tr, err := h.repo.Create(c.Request.Context(), req.UserID, req.FullName, req.Specialization, hourlyRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create trainer"})
		return
	}

	logger.Info("trainer created", "trainer_id", tr.ID, "user_id", tr.UserID)
	c.JSON(http.StatusCreated, tr)
}

// ListTrainers godoc
// @Summary      List active trainers
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Trainer
// @Failure      500  {object}  api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}
