package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/carebridge-api/pkg/helpers"
	"github.com/carebridge/carebridge-api/pkg/mailer"
)

// Notifier enqueues notification emails on RabbitMQ. Publishing is
// best-effort: a broker outage must never fail the request that
// triggered the notification.
type Notifier struct {
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	Enabled bool
}

func NewNotifier(pub *helpers.RabbitPublisher, logger *logrus.Logger, enabled bool) *Notifier {
	return &Notifier{Pub: pub, Logger: logger, Enabled: enabled}
}

// Notify enqueues a templated notification for the recipient.
func (n *Notifier) Notify(ctx context.Context, to, kind string, data map[string]any) {
	if n == nil || n.Pub == nil || !n.Enabled {
		return
	}
	job := mailer.Job{To: to, Kind: kind, Data: data}
	if err := n.Pub.PublishJSON(ctx, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithFields(logrus.Fields{"to": to, "kind": kind}).Warn("failed to enqueue notification")
	}
}
