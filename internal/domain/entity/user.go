package entity

import "time"

// User roles. Staff accounts manage the order pipeline; everyone else
// is a patient.
const (
	RolePatient = "patient"
	RoleStaff   = "staff"
)

// User is the aggregate root for patient and staff accounts.
// Password holds a bcrypt hash, never the plain credential.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Phone     string
	Role      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsStaff reports whether the account may manage orders.
func (u *User) IsStaff() bool { return u.Role == RoleStaff }

// UserSummary is the subset of account fields returned alongside
// appointments and orders. It never carries credentials.
type UserSummary struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Summary strips a user down to its display fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
