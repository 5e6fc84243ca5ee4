package notifier

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
)

// Config holds configuration for the SMTP notifier
type Config struct {
	// Host and Port locate the SMTP server, e.g. smtp.gmail.com:465.
	// The connection is TLS from the first byte (implicit TLS).
	Host string
	Port string

	// Sender is the From address and the login username
	Sender string

	// Password is the login password for the sender account
	Password string
}

// smtpNotifier implements the Notifier interface over SMTP with
// implicit TLS
type smtpNotifier struct {
	config *Config
}

// NewSMTP creates a new SMTP notifier
func NewSMTP(cfg *Config) (*smtpNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Host == "" || cfg.Port == "" {
		return nil, errors.New("host and port cannot be empty")
	}

	if cfg.Sender == "" {
		return nil, errors.New("sender cannot be empty")
	}

	return &smtpNotifier{
		config: cfg,
	}, nil
}

// Send delivers the verification code by email
func (n *smtpNotifier) Send(ctx context.Context, input *SendInput) error {
	if input == nil || input.Email == "" {
		return errors.New("input and email cannot be empty")
	}

	addr := n.config.Host + ":" + n.config.Port

	dialer := &tls.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", n.config.Sender, n.config.Password, n.config.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := client.Mail(n.config.Sender); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := client.Rcpt(input.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Verifica email\r\n\r\nIl codice di verifica e': %d\r\n",
		n.config.Sender, input.Email, input.Code,
	)

	if _, err := writer.Write([]byte(message)); err != nil {
		writer.Close()
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return client.Quit()
}
