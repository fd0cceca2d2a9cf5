package domain

import "time"

// Insight is the AI commentary produced for a free-text query. Analysis is an
// opaque block of text; the engine never parses it.
type Insight struct {
	Query       string    `json:"query"`
	Analysis    string    `json:"analysis"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
}
