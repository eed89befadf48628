package handlers

import (
	"net/http"
	"strconv"

	"wayfarer/services/places"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
)

// PlacesHandler exposes candidate search for clients that want to
// browse before planning.
type PlacesHandler struct {
	Source places.CandidateSource
}

func NewPlacesHandler(source places.CandidateSource) *PlacesHandler {
	return &PlacesHandler{Source: source}
}

// SearchCandidates proxies a text query to the candidate source.
func (h *PlacesHandler) SearchCandidates(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "missing required query parameter: query")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	candidates, err := h.Source.Search(c.Request.Context(), query, limit)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "candidate search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
