package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfarer/config"
	"wayfarer/models"

	"go.uber.org/zap"
)

const textSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// GooglePlacesSource fetches candidates from the Google Places text
// search API. The raw place object is carried through unmodified as the
// candidate's opaque payload.
type GooglePlacesSource struct {
	Client *http.Client
	Logger *zap.Logger
}

// NewGooglePlacesSource constructs a source with a bounded HTTP client.
func NewGooglePlacesSource(logger *zap.Logger) *GooglePlacesSource {
	return &GooglePlacesSource{
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

// textSearchResponse captures only the fields we read; each result is
// kept raw for the opaque payload.
type textSearchResponse struct {
	Status  string            `json:"status"`
	Results []json.RawMessage `json:"results"`
}

type placeName struct {
	Name string `json:"name"`
}

// Search queries the Places API and returns up to limit candidates in
// the API's relevance order. Costs are filled by the placeholder
// estimator since the feed carries no pricing.
func (s *GooglePlacesSource) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("places: GOOGLE_API_KEY is not configured")
	}

	reqURL := fmt.Sprintf("%s?query=%s&key=%s", textSearchURL, url.QueryEscape(query), apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("places: building request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: text search request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("places: decoding text search response: %w", err)
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places: text search returned status %s", parsed.Status)
	}

	if limit <= 0 || limit > len(parsed.Results) {
		limit = len(parsed.Results)
	}

	candidates := make([]models.Candidate, 0, limit)
	for _, raw := range parsed.Results[:limit] {
		var pn placeName
		if err := json.Unmarshal(raw, &pn); err != nil || pn.Name == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Name:          pn.Name,
			EstimatedCost: EstimateCost(),
			Place:         raw,
		})
	}

	s.Logger.Debug("places search completed",
		zap.String("query", query),
		zap.Int("results", len(candidates)),
	)
	return candidates, nil
}
