package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apierrors "github.com/rclanton/strata/internal/errors"
	"github.com/rclanton/strata/internal/middleware"
	"github.com/rclanton/strata/internal/services"
)

// MatchHandler handles matching and reconciliation HTTP requests.
type MatchHandler struct {
	service services.MatchService
}

// NewMatchHandler creates a new MatchHandler instance.
func NewMatchHandler(service services.MatchService) *MatchHandler {
	return &MatchHandler{
		service: service,
	}
}

// ReconcileRequest is the body for the reconcile endpoint.
type ReconcileRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
}

// WellMatchesResponse is the response for the dry-run well match endpoint.
type WellMatchesResponse struct {
	WellID  string               `json:"well_id"`
	Matches []services.WellMatch `json:"matches"`
	Count   int                  `json:"count"`
}

// Reconcile handles POST /api/v1/matches/reconcile.
// It runs a full matching pass over one ownership scope, persists the
// proposed links, and returns the summary with diagnostics.
func (h *MatchHandler) Reconcile(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		apierrors.BadRequest(c, "owner_id must be a valid UUID", nil)
		return
	}

	if log != nil {
		log.Info("Processing reconcile request", map[string]interface{}{
			"owner_id": ownerID,
		})
	}

	summary, err := h.service.Reconcile(c.Request.Context(), ownerID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to reconcile property-well links", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// WellMatches handles GET /api/v1/wells/:id/matches.
// It matches one well against all of its owner's properties without
// persisting anything, for review before reconciliation.
func (h *MatchHandler) WellMatches(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "well id must be a valid UUID", nil)
		return
	}

	matches, err := h.service.MatchWell(c.Request.Context(), wellID)
	if err != nil {
		if errors.Is(err, services.ErrWellNotFound) {
			apierrors.NotFound(c, "No well found with this id")
			return
		}
		apierrors.InternalServerError(c, "Failed to match well against properties", err)
		return
	}

	c.JSON(http.StatusOK, WellMatchesResponse{
		WellID:  wellID.String(),
		Matches: matches,
		Count:   len(matches),
	})
}
