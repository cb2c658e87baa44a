package entity

import "time"

// Doctor is a read-only roster entry; rows are created by the seeder,
// never through the API.
type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// DoctorSummary is the subset of doctor fields shown to patients.
type DoctorSummary struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (d *Doctor) Summary() DoctorSummary {
	return DoctorSummary{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Email: d.Email, Phone: d.Phone}
}
