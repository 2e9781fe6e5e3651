package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"gymcore/internal/api"
	"gymcore/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateClass godoc
// @Summary      Create gym class
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class definition"
// @Success      201      {object}  GymClass
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrClassInvalid) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class definition"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListClasses godoc
// @Summary      List active classes
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  GymClass
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// CreateSchedule godoc
// @Summary      Schedule a class occurrence
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateScheduleRequest  true  "Schedule definition"
// @Success      201      {object}  ClassSchedule
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cs, err := h.service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case errors.Is(err, trainer.ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case errors.Is(err, ErrScheduleInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule times"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create schedule"})
		}
		return
	}

	c.JSON(http.StatusCreated, cs)
}

// ListSchedules godoc
// @Summary      List schedules with availability
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        future  query     bool  false  "Only future schedules"
// @Success      200     {array}   ScheduleWithAvailability
// @Router       /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	onlyFuture := c.DefaultQuery("future", "true") == "true"

	schedules, err := h.service.ListSchedules(c.Request.Context(), onlyFuture)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetSchedule godoc
// @Summary      Get one schedule
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {object}  ClassSchedule
// @Failure      404         {object}  api.ErrorResponse
// @Router       /schedules/{scheduleID} [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule ID"})
		return
	}

	cs, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		return
	}

	c.JSON(http.StatusOK, cs)
}

// CancelSchedule godoc
// @Summary      Take a schedule off the timetable
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Schedule ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/schedules/{id} [delete]
func (h *Handler) CancelSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule ID"})
		return
	}

	if err := h.service.CancelSchedule(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel schedule"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "schedule cancelled"})
}
