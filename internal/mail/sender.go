package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"mailgate/config"
	"mailgate/internal/model"
)

// Sender transmits a single message per call over a fresh authenticated SMTP
// session. Connections are not pooled or reused across requests.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send dials the relay, authenticates, and transmits the message. The relay
// either fully accepts it or the call fails; there is no retry and no
// partial-success state. Cancellation is whatever the SMTP client defaults
// to, so ctx is not consulted mid-transfer.
func (s *Sender) Send(ctx context.Context, msg *model.OutboundMessage) (*model.DeliveryInfo, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	// port 465 relays expect implicit TLS rather than STARTTLS
	d.SSL = s.cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		return nil, fmt.Errorf("smtp delivery failed: %w", err)
	}

	return &model.DeliveryInfo{
		Relay:   fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
	}, nil
}
