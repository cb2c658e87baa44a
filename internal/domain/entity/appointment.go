package entity

import "time"

// Consultation types. The values match what clients render and what the
// appointments.type CHECK constraint accepts.
const (
	TypeVideoCall = "Video Call"
	TypeChat      = "Chat"
	TypeInPerson  = "In-Person"
)

// AppointmentTypes lists every valid consultation type.
var AppointmentTypes = []string{TypeVideoCall, TypeChat, TypeInPerson}

// ValidAppointmentType reports whether t is a known consultation type.
func ValidAppointmentType(t string) bool {
	for _, v := range AppointmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Appointment links a patient to a doctor at a point in time.
type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentDetail is an appointment joined with the display fields of
// its related records. Patient-facing listings carry the doctor side;
// doctor-facing listings carry the patient side.
type AppointmentDetail struct {
	Appointment
	User   *UserSummary   `json:"user,omitempty"`
	Doctor *DoctorSummary `json:"doctor,omitempty"`
}
