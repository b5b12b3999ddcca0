package models

// Service represents a treatment offered by the spa. The catalog of services
// is seeded at startup and never mutated at runtime.
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"` // display string, e.g. "60-90 min"
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Benefits    []string `json:"benefits"`
}
