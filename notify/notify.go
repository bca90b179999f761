// Package notify delivers generated alerts to club members outside the
// dashboard. Only high-priority alerts are pushed; everything else waits
// on the alerts page.
package notify

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"club-tracker/models"
)

// Notifier receives alerts the refresher considers urgent.
type Notifier interface {
	AlertTriggered(alert models.Alert) error
}

// Noop discards alerts. Used when SMTP is not configured.
type Noop struct{}

func (Noop) AlertTriggered(models.Alert) error { return nil }

// EmailSender mails alerts to the club's shared address via SMTP.
type EmailSender struct {
	host   string
	port   string
	user   string
	pass   string
	from   string
	to     string
	logger *logrus.Logger
}

// NewEmailSender creates an SMTP-backed notifier.
func NewEmailSender(host, port, user, pass, from, to string, logger *logrus.Logger) *EmailSender {
	return &EmailSender{
		host:   host,
		port:   port,
		user:   user,
		pass:   pass,
		from:   from,
		to:     to,
		logger: logger,
	}
}

// AlertTriggered sends one alert email.
func (s *EmailSender) AlertTriggered(alert models.Alert) error {
	e := email.NewEmail()
	e.From = s.from
	e.To = []string{s.to}
	e.Subject = fmt.Sprintf("Price Alert: %s", alert.Ticker)

	body := fmt.Sprintf(
		"Hello,\n\n%s\n\nTicker: %s\nPriority: %s\nTime: %s\n\nBest regards,\nClub Tracker",
		alert.Message, alert.Ticker, alert.Priority, alert.Date.Format("2006-01-02 15:04:05"),
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send alert email for %s: %v", alert.Ticker, err)
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	s.logger.Infof("Alert email sent for %s", alert.Ticker)
	return nil
}
