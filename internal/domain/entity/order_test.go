package entity

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "Shipped", "DELIVERED"} {
		if ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusDelivered, false},
		// repeating the current status is always a no-op
		{StatusPending, StatusPending, true},
		{StatusProcessing, StatusProcessing, true},
		{StatusDelivered, StatusDelivered, true},
		{StatusCancelled, StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
