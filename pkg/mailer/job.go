package mailer

// Notification kinds put on the queue by the API.
const (
	KindWelcome           = "welcome"
	KindAppointmentBooked = "appointment_booked"
	KindOrderReceipt      = "order_receipt"
	KindOrderStatus       = "order_status"
)

// Job is the JSON payload placed on the RabbitMQ notification queue.
// Kind selects a template; Data feeds it. Subject/Text/HTML let a
// caller bypass templating entirely.
type Job struct {
	To      string         `json:"to"`
	Kind    string         `json:"kind,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Subject string         `json:"subject,omitempty"`
	Text    string         `json:"text,omitempty"`
	HTML    string         `json:"html,omitempty"`
}
