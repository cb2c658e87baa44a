package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"

	"github.com/carebridge/carebridge-api/pkg/mailer"
)

//go:embed *.tmpl
var fs embed.FS

var tmpl = htmpl.Must(htmpl.New("mail").ParseFS(fs, "*.tmpl"))

// Subject returns the subject line for a notification kind.
func Subject(kind string, data map[string]any) string {
	switch kind {
	case mailer.KindWelcome:
		return "Welcome to CareBridge"
	case mailer.KindAppointmentBooked:
		return fmt.Sprintf("Appointment confirmed with Dr. %v", data["DoctorName"])
	case mailer.KindOrderReceipt:
		return "We received your order"
	case mailer.KindOrderStatus:
		return fmt.Sprintf("Your order is now %v", data["Status"])
	default:
		return "CareBridge notification"
	}
}

// Render produces the HTML body for a notification kind.
func Render(kind string, data map[string]any) (string, error) {
	payload := map[string]any{"Kind": kind, "Data": data}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "notification.tmpl", payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}
