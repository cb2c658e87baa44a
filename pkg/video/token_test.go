package video

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	iss := NewTokenIssuer(12345, "server-secret", time.Minute)

	token, exp, err := iss.Issue("room-1", "user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Error("token already expired")
	}

	roomID, userID, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if roomID != "room-1" || userID != "user-1" {
		t.Errorf("Verify = (%q, %q), want (room-1, user-1)", roomID, userID)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	iss := NewTokenIssuer(12345, "server-secret", time.Minute)
	token, _, err := iss.Issue("room-1", "user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	payload, _, _ := strings.Cut(token, ".")
	if _, _, err := iss.Verify(payload + ".forgedsignature"); !errors.Is(err, ErrBadToken) {
		t.Errorf("tampered signature: err = %v, want ErrBadToken", err)
	}
	if _, _, err := iss.Verify("no-separator"); !errors.Is(err, ErrBadToken) {
		t.Errorf("malformed token: err = %v, want ErrBadToken", err)
	}

	other := NewTokenIssuer(12345, "different-secret", time.Minute)
	if _, _, err := other.Verify(token); !errors.Is(err, ErrBadToken) {
		t.Errorf("wrong secret: err = %v, want ErrBadToken", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	iss := NewTokenIssuer(12345, "server-secret", -time.Minute)
	token, _, err := iss.Issue("room-1", "user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, _, err := iss.Verify(token); !errors.Is(err, ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestIssueRequiresConfiguration(t *testing.T) {
	var nilIssuer *TokenIssuer
	if _, _, err := nilIssuer.Issue("room-1", "user-1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil issuer: err = %v, want ErrNotConfigured", err)
	}
	empty := NewTokenIssuer(0, "", time.Minute)
	if _, _, err := empty.Issue("room-1", "user-1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("empty issuer: err = %v, want ErrNotConfigured", err)
	}
}
