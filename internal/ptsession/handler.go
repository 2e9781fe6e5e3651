package ptsession

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymcore/internal/api"
	"gymcore/internal/auth"
	"gymcore/internal/member"
	"gymcore/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// BookSession godoc
// @Summary      Book a personal training session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BookSessionRequest  true  "Session details"
// @Success      201      {object}  PTSession
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /sessions [post]
func (h *Handler) BookSession(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	sessionDate, err := time.Parse(time.RFC3339, req.SessionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "session_date must be RFC3339"})
		return
	}

	sess, err := h.service.BookForUser(c.Request.Context(), userID, req.TrainerID, sessionDate, req.DurationMinutes, req.Goals)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
		case errors.Is(err, trainer.ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case errors.Is(err, ErrSessionPast):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Cannot book a session in the past"})
		case errors.Is(err, ErrTrainerBusy):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Trainer is not available at the requested time"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book session"})
		}
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// UpdateStatus godoc
// @Summary      Update a session's status
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Session ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  PTSession
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /staff/sessions/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.service.UpdateStatus(c.Request.Context(), sessionID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Session not found"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown session status"})
		case errors.Is(err, ErrFutureCompletion):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Cannot mark a future session as completed"})
		case errors.Is(err, ErrNotStartable):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Only scheduled or confirmed sessions can be started"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update session"})
		}
		return
	}

	c.JSON(http.StatusOK, sess)
}

// CancelSession godoc
// @Summary      Cancel a personal training session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Session ID"
// @Param        request  body      UpdateStatusRequest  false "Cancellation notes"
// @Success      200      {object}  PTSession
// @Failure      404      {object}  api.ErrorResponse
// @Router       /sessions/{id}/cancel [post]
func (h *Handler) CancelSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// The reason is optional; an empty body cancels without notes.
	_ = c.ShouldBindJSON(&body)

	sess, err := h.service.CancelSession(c.Request.Context(), sessionID, body.Reason)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel session"})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// AddWorkoutNotes godoc
// @Summary      Attach workout notes and a rating to a completed session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Session ID"
// @Param        request  body      WorkoutNotesRequest  true  "Notes and rating"
// @Success      200      {object}  PTSession
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /staff/sessions/{id}/notes [post]
func (h *Handler) AddWorkoutNotes(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var req WorkoutNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.service.AddWorkoutNotes(c.Request.Context(), sessionID, req.WorkoutNotes, req.ClientFeedback, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Session not found"})
		case errors.Is(err, ErrNotCompleted):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Notes can only be added to completed sessions"})
		case errors.Is(err, ErrInvalidRating):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Rating must be between 1.0 and 5.0"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save workout notes"})
		}
		return
	}

	c.JSON(http.StatusOK, sess)
}

// GetSession godoc
// @Summary      Get a session by ID
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  PTSession
// @Failure      404  {object}  api.ErrorResponse
// @Router       /sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	sess, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch session"})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// GetMySessions godoc
// @Summary      List the caller's personal training sessions
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        upcoming  query    bool  false  "Only upcoming sessions"
// @Success      200       {array}  PTSession
// @Router       /sessions/me [get]
func (h *Handler) GetMySessions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sessions, err := h.service.GetSessionsForUser(c.Request.Context(), userID, c.Query("upcoming") == "true")
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetTrainerSessions godoc
// @Summary      List a trainer's sessions
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        id        path     int   true   "Trainer ID"
// @Param        upcoming  query    bool  false  "Only upcoming sessions"
// @Success      200       {array}  PTSession
// @Router       /staff/trainers/{id}/sessions [get]
func (h *Handler) GetTrainerSessions(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	sessions, err := h.service.GetTrainerSessions(c.Request.Context(), trainerID, c.Query("upcoming") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetTrainerRating godoc
// @Summary      Average rating across a trainer's completed sessions
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Trainer ID"
// @Success      200  {object}  map[string]float64
// @Router       /trainers/{id}/rating [get]
func (h *Handler) GetTrainerRating(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	avg, err := h.service.TrainerAverageRating(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainer_id": trainerID, "average_rating": avg})
}
