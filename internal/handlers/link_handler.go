package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apierrors "github.com/rclanton/strata/internal/errors"
	"github.com/rclanton/strata/internal/models"
	"github.com/rclanton/strata/internal/services"
)

// LinkHandler handles link lifecycle HTTP requests.
type LinkHandler struct {
	service services.LinkService
}

// NewLinkHandler creates a new LinkHandler instance.
func NewLinkHandler(service services.LinkService) *LinkHandler {
	return &LinkHandler{
		service: service,
	}
}

// UpdateLinkRequest is the body for the link status endpoint.
type UpdateLinkRequest struct {
	Status string `json:"status" binding:"required,oneof=active linked rejected unlinked"`
}

// UpdateStatus handles PATCH /api/v1/links/:id.
// Setting status to rejected permanently removes the pair from automatic
// matching; only deleting the link row undoes that.
func (h *LinkHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "link id must be a valid UUID", nil)
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	link, err := h.service.UpdateStatus(c.Request.Context(), id, models.LinkStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			apierrors.NotFound(c, "No link found with this id")
			return
		}
		if errors.Is(err, services.ErrInvalidLinkStatus) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to update link status", err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// Delete handles DELETE /api/v1/links/:id.
func (h *LinkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "link id must be a valid UUID", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			apierrors.NotFound(c, "No link found with this id")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete link", err)
		return
	}

	c.Status(http.StatusNoContent)
}
