package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/ibrahima697/BayySaWaarBack/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateFormation(c *ginext.Context) {
	var req dto.CreateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected RFC3339"})
		return
	}

	input := domain.CreateFormationInput{
		Title:          req.Title,
		Description:    req.Description,
		Date:           date,
		Location:       req.Location,
		Duration:       req.Duration,
		Category:       domain.FormationCategory(req.Category),
		MaxSeats:       req.MaxSeats,
		PriceNonMember: req.PriceNonMember,
		Image:          req.Image,
	}

	formation, err := h.formationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFormationResponse(formation))
}

func (h *Handler) GetFormation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid formation id"})
		return
	}

	formation, err := h.formationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormationResponse(formation))
}

func (h *Handler) ListFormations(c *ginext.Context) {
	formations, err := h.formationService.List(c.Request.Context(), middleware.Viewer(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FormationResponse, 0, len(formations))
	for _, f := range formations {
		resp = append(resp, dto.ToFormationResponse(f))
	}

	c.JSON(http.StatusOK, ginext.H{"formations": resp})
}

func (h *Handler) UpdateFormation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid formation id"})
		return
	}

	var req dto.UpdateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.UpdateFormationInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Duration:       req.Duration,
		MaxSeats:       req.MaxSeats,
		PriceNonMember: req.PriceNonMember,
		Image:          req.Image,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected RFC3339"})
			return
		}
		patch.Date = &date
	}
	if req.Category != nil {
		category := domain.FormationCategory(*req.Category)
		patch.Category = &category
	}
	if req.Status != nil {
		status := domain.FormationStatus(*req.Status)
		patch.Status = &status
	}

	formation, err := h.formationService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormationResponse(formation))
}

func (h *Handler) DeleteFormation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid formation id"})
		return
	}

	if err := h.formationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "formation deleted"})
}

func (h *Handler) RegisterToFormation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid formation id"})
		return
	}

	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	reg, err := h.formationService.Register(c.Request.Context(), id, viewer.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) UpdateFormationRegistrationStatus(c *ginext.Context) {
	id := c.Param("id")
	regID := c.Param("regId")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid formation id"})
		return
	}
	if _, err := uuid.Parse(regID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.formationService.UpdateRegistrationStatus(
		c.Request.Context(), id, regID, domain.RegistrationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "status updated"})
}
