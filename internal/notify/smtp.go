package notify

import (
	"context"
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// SMTPConfig carries relay settings for the report sender.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	To   string // recipient of every report
}

// SMTPSender dispatches reports over an SMTP relay. When credentials or
// the recipient are unset it skips sending with a log line, so a dev setup
// without mail configured still serves submissions normally.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender { return &SMTPSender{cfg: cfg} }

func (s *SMTPSender) Send(_ context.Context, sub Submission) error {
	if s.cfg.User == "" || s.cfg.Pass == "" || s.cfg.To == "" {
		log.Printf("notify: SMTP credentials or recipient not set; skipping report %s", sub.ID)
		return nil
	}
	body, err := RenderHTML(sub)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.User, "Assessment")
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", Subject(sub))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}
