package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends operational notices over SMTP. A nil *Mailer is a no-op so
// local setups without SMTP credentials still work.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func New(host string, port int, username, password, from string, logger *zap.Logger) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// SendDispatchNotice mails the shop inbox when a mechanic is dispatched to a
// rescue request.
func (m *Mailer) SendDispatchNotice(to, mechanicName, bikeUnit, location, problem string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Rescue dispatch: "+mechanicName)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Mechanic %s has been dispatched.\n\nBike unit: %s\nLocation: %s\nProblem: %s\n",
		mechanicName, bikeUnit, location, problem))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("dispatch notice failed", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
