package handler

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/handler/dto"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service"
)

func (h *Handler) SubmitRegistration(c *ginext.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.registrationService.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Message:      "Registration submitted successfully",
		Registration: result,
	})
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.ListFilter{
		RegistrationType:   c.Query("registrationType"),
		PaymentStatus:      c.Query("paymentStatus"),
		RegistrationStatus: c.Query("registrationStatus"),
		Search:             c.Query("search"),
		Page:               page,
		Limit:              limit,
	}

	result, err := h.registrationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	regs := make([]dto.RegistrationResponse, 0, len(result.Registrations))
	for _, r := range result.Registrations {
		regs = append(regs, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, dto.RegistrationListResponse{
		Registrations: regs,
		Pagination:    result.Pagination,
	})
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reg, err := h.registrationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) GetRegistrationByEmail(c *ginext.Context) {
	reg, err := h.registrationService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) UpdateRegistration(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.AdminUpdate(c.Request.Context(), id, service.AdminUpdateInput{
		PaymentStatus:      req.PaymentStatus,
		RegistrationStatus: req.RegistrationStatus,
		PaymentDate:        req.PaymentDate,
		ConfirmationDate:   req.ConfirmationDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminUpdateResponse{
		Message:      "Registration updated successfully",
		Registration: dto.ToRegistrationResponse(reg),
	})
}

func (h *Handler) UpdatePaymentStatus(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.registrationService.UpdatePayment(c.Request.Context(), id, req.PaymentStatus, req.PaymentDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentUpdateResponse{
		Message:      "Payment status updated successfully",
		Registration: result,
	})
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.registrationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Registration cancelled successfully"})
}

func (h *Handler) RegistrationStats(c *ginext.Context) {
	stats, err := h.registrationService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
