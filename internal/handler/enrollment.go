package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/ibrahima697/BayySaWaarBack/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitEnrollment(c *ginext.Context) {
	var req dto.SubmitEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SubmitEnrollmentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Message:   req.Message,
	}
	if viewer := middleware.Viewer(c); viewer != nil {
		input.UserID = viewer.UserID
	}

	enrollment, err := h.enrollmentService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) MyEnrollmentStatus(c *ginext.Context) {
	viewer := middleware.Viewer(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	enrollment, err := h.enrollmentService.MyStatus(c.Request.Context(), viewer.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) ListEnrollments(c *ginext.Context) {
	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp = append(resp, dto.ToEnrollmentResponse(e))
	}

	c.JSON(http.StatusOK, ginext.H{"enrollments": resp})
}

func (h *Handler) GetEnrollment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enrollment id"})
		return
	}

	enrollment, err := h.enrollmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) UpdateEnrollmentStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enrollment id"})
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.UpdateStatus(
		c.Request.Context(), id, domain.EnrollmentStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) DeleteEnrollment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid enrollment id"})
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "enrollment deleted"})
}
