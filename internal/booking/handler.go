package booking

import (
	"errors"
	"net/http"
	"strconv"

	"gymcore/internal/api"
	"gymcore/internal/auth"
	"gymcore/internal/member"
	"gymcore/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type bookRequest struct {
	ScheduleID int `json:"schedule_id" binding:"required,gt=0"`
}

// BookClass godoc
// @Summary      Book a spot in a scheduled class
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      bookRequest  true  "Schedule to book"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) BookClass(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.BookForUser(c.Request.Context(), userID, req.ScheduleID)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
		case errors.Is(err, schedule.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		case errors.Is(err, ErrMemberInactive):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Member account is inactive"})
		case errors.Is(err, ErrScheduleInactive):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Schedule is no longer active"})
		case errors.Is(err, ErrSchedulePast):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Schedule has already started"})
		case errors.Is(err, ErrClassFull):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Class is fully booked"})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have a booking for this class"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book class"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Booking ID"
// @Param        request  body      CancelBookingRequest  true  "Cancellation reason"
// @Success      200      {object}  Booking
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), bookingID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Booking is already cancelled"})
		case errors.Is(err, ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Completed bookings cannot be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// MarkAttended godoc
// @Summary      Mark a booking as attended
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  Booking
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /staff/bookings/{id}/attend [post]
func (h *Handler) MarkAttended(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := h.service.MarkAttended(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotConfirmed):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Only confirmed bookings can be marked attended"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// GetMyBookings godoc
// @Summary      List the caller's bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        upcoming  query    bool  false  "Only future confirmed bookings"
// @Success      200       {array}  BookingWithDetails
// @Router       /bookings/me [get]
func (h *Handler) GetMyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var (
		bookings []BookingWithDetails
		err      error
	)
	if c.Query("upcoming") == "true" {
		bookings, err = h.service.GetUpcomingForUser(c.Request.Context(), userID)
	} else {
		bookings, err = h.service.GetBookingsForUser(c.Request.Context(), userID)
	}
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetScheduleRoster godoc
// @Summary      List confirmed bookings for a schedule
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path     int  true  "Schedule ID"
// @Success      200  {array}  BookingWithDetails
// @Router       /staff/schedules/{id}/roster [get]
func (h *Handler) GetScheduleRoster(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule ID"})
		return
	}

	bookings, err := h.service.GetScheduleRoster(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch roster"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListBookings godoc
// @Summary      List all bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  BookingWithDetails
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
