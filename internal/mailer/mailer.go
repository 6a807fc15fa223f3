package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/hafiztri/comic-shelf/internal"
	"github.com/hafiztri/comic-shelf/internal/core/events"
)

// Mailer delivers password-reset emails. Without SMTP configuration it
// degrades to logging the reset link, which is acceptable for development;
// production deployments must configure SMTP.
type Mailer struct {
	cfg    internal.MailConfig
	logger *slog.Logger
	dialer *gomail.Dialer
}

func New(cfg internal.MailConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Configured() {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		logger.Warn("SMTP not configured, reset tokens will be logged instead of emailed")
	}
	return m
}

// Register subscribes the mailer to the auth events it handles.
func (m *Mailer) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypePasswordResetRequested, m.HandlePasswordResetRequested)
	bus.Subscribe(events.EventTypeUserRegistered, m.HandleUserRegistered)
}

func (m *Mailer) HandlePasswordResetRequested(ctx context.Context, event events.Event) error {
	resetEvent, ok := event.(*events.PasswordResetRequestedEvent)
	if !ok {
		return fmt.Errorf("expected PasswordResetRequestedEvent, got %T", event)
	}
	return m.SendPasswordReset(resetEvent.Email, resetEvent.RawToken, resetEvent.Username)
}

func (m *Mailer) HandleUserRegistered(ctx context.Context, event events.Event) error {
	regEvent, ok := event.(*events.UserRegisteredEvent)
	if !ok {
		return fmt.Errorf("expected UserRegisteredEvent, got %T", event)
	}
	return m.SendWelcome(regEvent.Email, regEvent.Username)
}

// SendWelcome greets a freshly registered account. Delivery is best effort
// and never blocks registration.
func (m *Mailer) SendWelcome(recipient, displayName string) error {
	if m.dialer == nil {
		m.logger.Info("welcome email skipped (SMTP not configured)", "recipient", recipient)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Welcome to comic-shelf")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour comic-shelf account is ready. "+
			"Log in to start building your collection.\n",
		displayName))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send welcome email", "recipient", recipient, "error", err)
		return err
	}

	m.logger.Info("welcome email sent", "recipient", recipient)
	return nil
}

// SendPasswordReset emails the raw reset token embedded in a reset URL.
func (m *Mailer) SendPasswordReset(recipient, rawToken, displayName string) error {
	resetURL := m.resetURL(rawToken)

	if m.dialer == nil {
		m.logger.Info("password reset link (SMTP not configured)",
			"recipient", recipient,
			"reset_url", resetURL)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Reset your comic-shelf password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. "+
			"Open the link below within one hour to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		displayName, resetURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send password reset email", "recipient", recipient, "error", err)
		return err
	}

	m.logger.Info("password reset email sent", "recipient", recipient)
	return nil
}

func (m *Mailer) resetURL(rawToken string) string {
	base := strings.TrimSuffix(m.cfg.ResetURLBase, "/")
	if base == "" {
		base = "http://localhost:8080/reset-password"
	}
	return base + "/" + rawToken
}
