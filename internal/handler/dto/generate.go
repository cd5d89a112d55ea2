package dto

import "github.com/bizmatchke/bizmatchke/internal/ideagen"

// GenerateIdeasRequest represents the request body for idea generation.
type GenerateIdeasRequest struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Budget    string   `json:"budget"`
	Location  string   `json:"location"`
}

// GenerateIdeasResponse wraps the generated idea set.
type GenerateIdeasResponse struct {
	Ideas []ideagen.GeneratedIdea `json:"ideas"`
}
