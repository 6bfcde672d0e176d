package handler

import (
	"net/http"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/ibrahima697/BayySaWaarBack/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RegisterUser(c *ginext.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"user": dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *Handler) Profile(c *ginext.Context) {
	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), viewer.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"user": dto.ToUserResponse(user)})
}
