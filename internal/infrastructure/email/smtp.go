package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

// SMTPNotifier delivers direct request notifications over SMTP. Helpers
// sign up through an email-based identity provider, so the external
// identity ID doubles as the delivery address.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPNotifier(config SMTPConfig, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
		logger: log,
	}
}

func (s *SMTPNotifier) NotifyDirectRequest(ctx context.Context, h *helper.Helper, d *dilemma.Dilemma) error {
	to := h.ExternalIdentityID()
	if !strings.Contains(to, "@") {
		s.logger.Debugw("helper identity is not an email address, skipping notification",
			"helper_id", h.ID())
		return nil
	}

	requestURL := fmt.Sprintf("%s/dilemmas/%s", s.config.BaseURL, d.ID())

	subject := "Someone asked for your support"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>A community member has asked you personally for support with a %s dilemma.</p>
			<p><a href="%s">View the request</a></p>
			<p>Direct requests return to the community feed if they are declined, so there is no pressure to accept.</p>
		</body>
		</html>
	`, h.DisplayName(), d.Category().String(), requestURL)

	plainBody := fmt.Sprintf(`
Hi %s,

A community member has asked you personally for support with a %s dilemma.

View the request:
%s

Direct requests return to the community feed if they are declined, so there is no pressure to accept.
	`, h.DisplayName(), d.Category().String(), requestURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
