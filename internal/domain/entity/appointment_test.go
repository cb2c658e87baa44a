package entity

import "testing"

func TestValidAppointmentType(t *testing.T) {
	for _, typ := range AppointmentTypes {
		if !ValidAppointmentType(typ) {
			t.Errorf("ValidAppointmentType(%q) = false, want true", typ)
		}
	}
	for _, typ := range []string{"", "video call", "VideoCall", "Phone"} {
		if ValidAppointmentType(typ) {
			t.Errorf("ValidAppointmentType(%q) = true, want false", typ)
		}
	}
}

func TestUserSummaryOmitsCredentials(t *testing.T) {
	u := User{ID: "u1", Name: "Ada", Email: "ada@example.com", Password: "$2a$10$hash", Phone: "+15550001111"}
	s := u.Summary()
	if s.Name != u.Name || s.Email != u.Email || s.Phone != u.Phone {
		t.Errorf("Summary() = %+v, want display fields of %+v", s, u)
	}
}
