package member

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymcore/internal/api"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListMembers godoc
// @Summary      List active members
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Member
// @Failure      500  {object}  api.ErrorResponse
// @Router       /staff/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember godoc
// @Summary      Get a member profile
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  Member
// @Failure      404  {object}  api.ErrorResponse
// @Router       /staff/members/{id} [get]
func (h *Handler) GetMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member id"})
		return
	}

	m, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}
