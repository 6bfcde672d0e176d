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

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateStart, err := time.Parse(time.RFC3339, req.DateStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_start format, expected RFC3339"})
		return
	}
	dateEnd, err := time.Parse(time.RFC3339, req.DateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date_end format, expected RFC3339"})
		return
	}

	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	input := domain.CreateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Type:             domain.EventType(req.Type),
		DateStart:        dateStart,
		DateEnd:          dateEnd,
		Location:         req.Location,
		PriceMember:      req.PriceMember,
		PriceNonMember:   req.PriceNonMember,
		MaxParticipants:  req.MaxParticipants,
		IsFeatured:       req.IsFeatured,
		Sponsors:         req.Sponsors,
		CreatedBy:        viewer.UserID,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"event": dto.ToEventResponse(event)})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, ginext.H{"events": resp})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"event": dto.ToEventResponse(event)})
}

func (h *Handler) RegisterToEvent(c *ginext.Context) {
	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	_, err := h.eventService.Register(c.Request.Context(), c.Param("slug"), viewer.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "registration successful"})
}

// MarkEventRegistrationPaid records a payment confirmed outside this
// service. Only approved entries can move to paid.
func (h *Handler) MarkEventRegistrationPaid(c *ginext.Context) {
	regID := c.Param("regId")
	if _, err := uuid.Parse(regID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.MarkRegistrationPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.MarkPaid(c.Request.Context(), c.Param("slug"), regID, req.PaymentMethod); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "registration marked as paid"})
}
