package handlers

import (
	"errors"
	"net/http"

	"wayfarer/models"
	"wayfarer/services/itinerary"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler exposes the planning session lifecycle over HTTP.
type ItineraryHandler struct {
	Service itinerary.PlanningSessionService
	Logger  *zap.Logger
}

func NewItineraryHandler(svc itinerary.PlanningSessionService, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{Service: svc, Logger: logger}
}

// respondPlanningError maps engine errors onto HTTP statuses. Input
// errors are the caller's to fix; nothing here is retried.
func respondPlanningError(c *gin.Context, err error) {
	var cfgErr *itinerary.ConfigurationError
	var valErr *itinerary.ValidationError
	var idxErr *itinerary.IndexError
	var notFound *itinerary.SessionNotFoundError

	switch {
	case errors.As(err, &cfgErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid planning configuration", cfgErr.Message)
	case errors.As(err, &valErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid activity", valErr.Message)
	case errors.As(err, &idxErr):
		utils.JSONError(c, http.StatusBadRequest, "index out of range", idxErr.Message)
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "planning session not found", notFound.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "planning operation failed", err.Error())
	}
}

// InitiateSession creates a planning session: fetch candidates, run the
// allocator, cache the result.
func (h *ItineraryHandler) InitiateSession(c *gin.Context) {
	var req itinerary.InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), req)
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current plan for a session.
func (h *ItineraryHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddActivity inserts an activity into one day of the plan.
func (h *ItineraryHandler) AddActivity(c *gin.Context) {
	var input struct {
		DayIndex int             `json:"dayIndex"`
		Activity models.Activity `json:"activity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.AddActivity(c.Request.Context(), c.Param("sessionID"), input.DayIndex, input.Activity)
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateActivity patches an activity in place.
func (h *ItineraryHandler) UpdateActivity(c *gin.Context) {
	var input struct {
		DayIndex      int                     `json:"dayIndex"`
		ActivityIndex int                     `json:"activityIndex"`
		Patch         itinerary.ActivityPatch `json:"patch"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateActivity(c.Request.Context(), c.Param("sessionID"), input.DayIndex, input.ActivityIndex, input.Patch)
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveActivity deletes an activity from a day.
func (h *ItineraryHandler) RemoveActivity(c *gin.Context) {
	var input struct {
		DayIndex      int `json:"dayIndex"`
		ActivityIndex int `json:"activityIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.RemoveActivity(c.Request.Context(), c.Param("sessionID"), input.DayIndex, input.ActivityIndex)
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetBudget returns per-day totals and the grand total.
func (h *ItineraryHandler) GetBudget(c *gin.Context) {
	summary, err := h.Service.GetBudget(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ConfirmTrip attaches trip metadata and persists the final plan.
func (h *ItineraryHandler) ConfirmTrip(c *gin.Context) {
	var meta models.TripMeta
	if err := c.ShouldBindJSON(&meta); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	trip, err := h.Service.ConfirmTrip(c.Request.Context(), c.Param("sessionID"), meta)
	if err != nil {
		respondPlanningError(c, err)
		return
	}

	h.Logger.Info("trip confirmed via API", zap.String("tripID", trip.ID))
	c.JSON(http.StatusOK, trip)
}

// CancelSession discards a planning session.
func (h *ItineraryHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondPlanningError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
