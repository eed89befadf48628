package handlers

import (
	"net/http"

	tripRepo "wayfarer/database/repository/trip"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
)

// TripHandler serves confirmed trips back out of persistence.
type TripHandler struct {
	Repo tripRepo.TripRepository
}

func NewTripHandler(repo tripRepo.TripRepository) *TripHandler {
	return &TripHandler{Repo: repo}
}

// GetTripByID returns one confirmed trip.
func (h *TripHandler) GetTripByID(c *gin.Context) {
	trip, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GetTripsByUser returns all trips a user has confirmed, newest first.
func (h *TripHandler) GetTripsByUser(c *gin.Context) {
	trips, err := h.Repo.GetByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch trips", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// DeleteTrip removes a confirmed trip.
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete trip", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
