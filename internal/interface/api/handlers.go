package api

import (
	"context"
	"net/http"
	"strconv"

	"tourcatalog-service/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// TourUsecase is the tour service as seen by the HTTP layer
type TourUsecase interface {
	Save(ctx context.Context, payload *entity.TourPayload, actor string) (string, error)
	Get(ctx context.Context, id string) (*entity.TourDetail, error)
	Delete(ctx context.Context, id, actor string) error
	SetStatus(ctx context.Context, id string, status entity.Status, actor string) error
}

// CruiseUsecase is the cruise service as seen by the HTTP layer
type CruiseUsecase interface {
	Save(ctx context.Context, payload *entity.CruisePayload, actor string) (string, error)
	Get(ctx context.Context, id string) (*entity.CruiseDetail, error)
	Delete(ctx context.Context, id, actor string) error
	SetStatus(ctx context.Context, id string, status entity.Status, actor string) error
}

// ActivityLister lists the change history
type ActivityLister interface {
	List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityEntry, error)
}

type statusRequest struct {
	Status string `json:"status"`
}

// TourHandler serves /api/v1/tours
type TourHandler struct {
	tours TourUsecase
}

// NewTourHandler creates a new tour handler
func NewTourHandler(tours TourUsecase) *TourHandler {
	return &TourHandler{tours: tours}
}

// Save creates or updates a tour from the composite payload
func (h *TourHandler) Save(c *gin.Context) {
	var payload entity.TourPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, badRequest("body", "invalid JSON: "+err.Error()))
		return
	}
	id, err := h.tours.Save(c.Request.Context(), &payload, actor(c))
	respondResult(c, id, err)
}

// Get returns the tour with its collections
func (h *TourHandler) Get(c *gin.Context) {
	detail, err := h.tours.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete removes a tour
func (h *TourHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	respondResult(c, id, h.tours.Delete(c.Request.Context(), id, actor(c)))
}

// SetStatus publishes or unpublishes a tour
func (h *TourHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("body", "invalid JSON: "+err.Error()))
		return
	}
	id := c.Param("id")
	respondResult(c, id, h.tours.SetStatus(c.Request.Context(), id, entity.Status(req.Status), actor(c)))
}

// CruiseHandler serves /api/v1/cruises
type CruiseHandler struct {
	cruises CruiseUsecase
}

// NewCruiseHandler creates a new cruise handler
func NewCruiseHandler(cruises CruiseUsecase) *CruiseHandler {
	return &CruiseHandler{cruises: cruises}
}

// Save creates or updates a cruise from the composite payload
func (h *CruiseHandler) Save(c *gin.Context) {
	var payload entity.CruisePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, badRequest("body", "invalid JSON: "+err.Error()))
		return
	}
	id, err := h.cruises.Save(c.Request.Context(), &payload, actor(c))
	respondResult(c, id, err)
}

// Get returns the cruise with its collections
func (h *CruiseHandler) Get(c *gin.Context) {
	detail, err := h.cruises.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete removes a cruise
func (h *CruiseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	respondResult(c, id, h.cruises.Delete(c.Request.Context(), id, actor(c)))
}

// SetStatus publishes or unpublishes a cruise
func (h *CruiseHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest("body", "invalid JSON: "+err.Error()))
		return
	}
	id := c.Param("id")
	respondResult(c, id, h.cruises.SetStatus(c.Request.Context(), id, entity.Status(req.Status), actor(c)))
}

// ActivityHandler serves /api/v1/activity
type ActivityHandler struct {
	activity ActivityLister
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity ActivityLister) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns entries newest first
func (h *ActivityHandler) List(c *gin.Context) {
	filter := entity.ActivityFilter{
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, badRequest("limit", "must be an integer"))
			return
		}
		filter.Limit = limit
	}

	entries, err := h.activity.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
