package gomail

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/pkg/config"
)

const digestSubject = "Chăm sóc khách hàng quá hạn"

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// SendOverdueDigest mails the list of overdue care activities to the
// configured recipients.
func (c *Client) SendOverdueDigest(ctx context.Context, items []entity.OverdueCare) error {
	msg := NewDigest(c.cfg.From, c.cfg.FromName, c.cfg.DigestRecipients(), items)

	err := ctx.Err()
	if err != nil {
		return err
	}

	err = c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func NewDigest(from, fromName string, recipients []string, items []entity.OverdueCare) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", from, fromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("%s (%d)", digestSubject, len(items)))
	msg.SetBody("text/plain", DigestBody(items))

	return msg
}

func DigestBody(items []entity.OverdueCare) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Có %d hoạt động chăm sóc khách hàng quá hạn:\n\n", len(items))

	for _, it := range items {
		fmt.Fprintf(&b, "- %s | %s | %s | hạn %s (trễ %d ngày)",
			it.Key, it.Company, it.Type, it.Due.Format(entity.DateLayout), it.DaysLate)

		if it.Staff != "" {
			fmt.Fprintf(&b, " | phụ trách: %s", it.Staff)
		}

		b.WriteString("\n")
	}

	return b.String()
}
