package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/handler/dto"
)

func (h *Handler) CreateActivity(c *ginext.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), domain.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *Handler) ListActivities(c *ginext.Context) {
	activities, err := h.activityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *Handler) GetActivity(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	activity, err := h.activityService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *Handler) ListActivitiesByUser(c *ginext.Context) {
	userID, ok := pathID(c, "userid")
	if !ok {
		return
	}

	activities, err := h.activityService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *Handler) UpdateActivity(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, domain.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *Handler) DeleteActivity(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Activity deleted successfully"})
}
