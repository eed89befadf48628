package models

import "encoding/json"

// Candidate is an external point-of-interest record considered for
// inclusion in the itinerary. Ordering of a candidate list is the
// source's responsibility and is treated as a priority order.
type Candidate struct {
	Name          string          `json:"name"`
	EstimatedCost int             `json:"estimatedCost"` // Whole currency units, >= 0
	Place         json.RawMessage `json:"place,omitempty"`
}
