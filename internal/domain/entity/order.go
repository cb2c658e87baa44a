package entity

import "time"

// Order statuses, in pipeline order. Delivered and Cancelled are
// terminal.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{StatusPending, StatusProcessing, StatusDelivered, StatusCancelled}

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Repeating the current status is allowed so that retried
// updates stay idempotent.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusProcessing || to == StatusDelivered || to == StatusCancelled
	case StatusProcessing:
		return to == StatusDelivered || to == StatusCancelled
	default:
		// Delivered and Cancelled are terminal
		return false
	}
}

// Order is a medicine purchase placed by a patient.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MedicineID string    `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderDetail is an order joined with the display fields of the buyer
// and the purchased medicine.
type OrderDetail struct {
	Order
	User     *UserSummary     `json:"user,omitempty"`
	Medicine *MedicineSummary `json:"medicine,omitempty"`
}
