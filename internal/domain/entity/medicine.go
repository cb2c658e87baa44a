package entity

import "time"

// Medicine is a catalog entry; rows are created by the seeder, never
// through the API.
type Medicine struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MedicineSummary is the subset of catalog fields embedded in orders.
type MedicineSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (m *Medicine) Summary() MedicineSummary {
	return MedicineSummary{ID: m.ID, Name: m.Name, Price: m.Price}
}
