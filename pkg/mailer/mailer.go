package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/caarlos0/env/v9"

	"carbontrack-api/pkg/log"
)

var ErrSenderRequired = errors.New("mailer: sender address and credentials are required")

// Notifier delivers emission alert messages to a recipient. Delivery is
// best-effort: callers log failures and never propagate them into the
// evaluation result.
type Notifier interface {
	SendEmissionAlert(ctx context.Context, recipient string, totalKg float64, severity string) error
}

// Config holds SMTP settings. Credentials come from the environment, the
// same surface the original deployment used.
type Config struct {
	Host     string        `env:"MAIL_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"MAIL_PORT" envDefault:"587"`
	Username string        `env:"MAIL_USER"`
	Password string        `env:"MAIL_PASS"`
	From     string        `env:"MAIL_FROM"`
	Timeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads SMTP settings from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("mailer: parse env: %w", err)
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg, nil
}

type smtpMailer struct {
	l   log.Logger
	cfg Config
}

// New creates an SMTP-backed Notifier.
func New(l log.Logger, cfg Config) (Notifier, error) {
	if cfg.Username == "" || cfg.Password == "" || cfg.From == "" {
		return nil, ErrSenderRequired
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &smtpMailer{l: l, cfg: cfg}, nil
}

func (m *smtpMailer) SendEmissionAlert(ctx context.Context, recipient string, totalKg float64, severity string) error {
	if recipient == "" {
		return errors.New("mailer: recipient is required")
	}

	msg := buildAlertMessage(m.cfg.From, recipient, totalKg, severity)

	sendCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	if err := m.send(sendCtx, recipient, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", recipient, err)
	}
	m.l.Infof(ctx, "pkg.mailer.SendEmissionAlert: delivered %q alert to %s", severity, recipient)
	return nil
}

// send speaks SMTP with STARTTLS over a deadline-bounded connection.
// net/smtp has no context support, so the deadline comes from the dialer
// and the connection itself.
func (m *smtpMailer) send(ctx context.Context, recipient string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	dialer := net.Dialer{Timeout: m.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(recipient); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
