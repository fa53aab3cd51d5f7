package vo

import "github.com/google/uuid"

// BatchReport is the gateway view of a batch outcome.
type BatchReport struct {
	Total     int                  `json:"total"`
	Succeeded []uuid.UUID          `json:"succeeded"`
	Failed    []uuid.UUID          `json:"failed"`
	Errors    map[uuid.UUID]string `json:"errors,omitempty"`
}

type OperatorLogin struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Map flattens the report to resource id -> succeeded.
func (r BatchReport) Map() map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, r.Total)
	for _, id := range r.Succeeded {
		out[id] = true
	}
	for _, id := range r.Failed {
		out[id] = false
	}
	return out
}
