package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/rclanton/strata/internal/errors"
	"github.com/rclanton/strata/internal/plss"
)

// LocationHandler exposes the PLSS grid as debug/support endpoints so the
// frontend can explain why a link exists.
type LocationHandler struct{}

// NewLocationHandler creates a new LocationHandler instance.
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// AdjacentRequest represents the query parameters for the adjacent endpoint.
type AdjacentRequest struct {
	Section  int    `form:"section" binding:"required,min=1,max=36"`
	Township string `form:"township" binding:"required"`
	Range    string `form:"range" binding:"required"`
	Meridian string `form:"meridian" binding:"required,oneof=IM CM"`
}

// AdjacentResponse represents the response for the adjacent endpoint.
type AdjacentResponse struct {
	Location plss.Location   `json:"location"`
	Adjacent []plss.Location `json:"adjacent"`
	Count    int             `json:"count"`
}

// TraceRequest represents the query parameters for the trace endpoint.
// Endpoints are given as free-text STR strings, e.g. "7-9N-5W-IM".
type TraceRequest struct {
	Surface    string `form:"surface" binding:"required"`
	BottomHole string `form:"bottom_hole" binding:"required"`
}

// TraceResponse represents the response for the trace endpoint.
type TraceResponse struct {
	Path  []plss.Location `json:"path"`
	Count int             `json:"count"`
}

// Adjacent handles GET /api/v1/locations/adjacent.
// It returns the full 1-ring neighborhood of an STR location, including
// neighbors across township and range boundaries.
func (h *LocationHandler) Adjacent(c *gin.Context) {
	var req AdjacentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	loc, err := plss.NewLocation(req.Section, req.Township, req.Range, plss.Meridian(req.Meridian))
	if err != nil {
		apierrors.BadRequest(c, err.Error(), nil)
		return
	}

	adjacent := plss.AdjacentLocations(loc)
	c.JSON(http.StatusOK, AdjacentResponse{
		Location: loc,
		Adjacent: adjacent,
		Count:    len(adjacent),
	})
}

// Trace handles GET /api/v1/locations/trace.
// It reconstructs the sections a lateral wellbore crosses between two STR
// endpoints.
func (h *LocationHandler) Trace(c *gin.Context) {
	var req TraceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	surface, err := plss.ParseSTR(req.Surface)
	if err != nil {
		apierrors.BadRequest(c, "surface: "+err.Error(), nil)
		return
	}

	bottomHole, err := plss.ParseSTR(req.BottomHole)
	if err != nil {
		apierrors.BadRequest(c, "bottom_hole: "+err.Error(), nil)
		return
	}

	path := plss.TraceLateralSections(surface, bottomHole)
	if path == nil {
		path = []plss.Location{}
	}

	c.JSON(http.StatusOK, TraceResponse{
		Path:  path,
		Count: len(path),
	})
}
