package handler

import (
	"net/http"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitContact(c *ginext.Context) {
	var req dto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), domain.SubmitContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ContactTicketResponse{
		Message:  "message received",
		TicketID: contact.TicketID,
	})
}

func (h *Handler) ListContacts(c *ginext.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"contacts": contacts})
}

func (h *Handler) UpdateContactStatus(c *ginext.Context) {
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ContactStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"contact": contact})
}

func (h *Handler) SubscribeNewsletter(c *ginext.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.contactService.Subscribe(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"message": "subscription confirmed"})
}
