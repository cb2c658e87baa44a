package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Phone    string `json:"phone" binding:"required,phone"`
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signupPayload{
		Name:     "Ada",
		Email:    "not-an-email",
		Password: "short",
		Phone:    "123",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	details := ToDetails(err)
	for _, field := range []string{"email", "password", "phone"} {
		if details[field] == "" {
			t.Errorf("missing detail for %q: %v", field, details)
		}
	}
	if _, ok := details["Email"]; ok {
		t.Error("details keyed by struct field name, want json tag name")
	}
}

func TestToDetailsAliasMessages(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signupPayload{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
		Phone:    "123",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	details := ToDetails(err)
	if details["password"] != "must be at least 8 characters long" {
		t.Errorf("password detail = %q", details["password"])
	}
	if details["phone"] != "must be a valid phone number" {
		t.Errorf("phone detail = %q", details["phone"])
	}
}

func TestToDetailsValidPayload(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signupPayload{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "longenough",
		Phone:    "+15550001111",
	})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if d := ToDetails(nil); d != nil {
		t.Errorf("ToDetails(nil) = %v, want nil", d)
	}
}
