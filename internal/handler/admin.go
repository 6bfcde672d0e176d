package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/ibrahima697/BayySaWaarBack/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AdminStats(c *ginext.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"stats": stats})
}

func (h *Handler) UserStats(c *ginext.Context) {
	stats, err := h.adminService.UserStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"stats": stats})
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, ginext.H{"users": resp})
}

func (h *Handler) ListUsersByRole(c *ginext.Context) {
	users, err := h.adminService.ListUsersByRole(c.Request.Context(), domain.Role(c.Param("role")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, ginext.H{"users": resp})
}

func (h *Handler) SearchUsers(c *ginext.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "query parameter is required"})
		return
	}

	users, err := h.adminService.SearchUsers(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, ginext.H{"users": resp})
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "user deleted"})
}

func (h *Handler) MyData(c *ginext.Context) {
	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	data, err := h.dashboardService.MyData(c.Request.Context(), viewer.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
