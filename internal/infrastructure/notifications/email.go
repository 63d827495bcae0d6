package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"enrols.backend/internal/config"
)

// EmailNotifier sends transactional mail over SMTP.
type EmailNotifier struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

// NewEmailNotifier creates a mailer from SMTP configuration
func NewEmailNotifier(smtp config.SMTPConfig, frontend config.FrontendConfig) *EmailNotifier {
	return &EmailNotifier{
		dialer:      gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password),
		from:        smtp.From,
		frontendURL: frontend.BaseURL,
	}
}

// SendPasswordResetEmail emails a reset link carrying the opaque token
func (n *EmailNotifier) SendPasswordResetEmail(to, name, token string) error {
	body := fmt.Sprintf(`
		<h3>Password reset requested</h3>
		<p>Hi %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p><a href="%s/reset-password/%s">Reset your password</a></p>
		<p>The link expires in 30 minutes. If you did not request this change, you can ignore this email.</p>
	`, name, n.frontendURL, token)
	return n.send(to, "Password reset request", body)
}

// SendVerificationEmail emails an address-verification link
func (n *EmailNotifier) SendVerificationEmail(to, name, token string) error {
	body := fmt.Sprintf(`
		<h3>Verify your email address</h3>
		<p>Hi %s,</p>
		<p>Click the link below to confirm this address belongs to you.</p>
		<p><a href="%s/verify-email/%s">Verify email</a></p>
		<p>The link expires in 1 hour.</p>
	`, name, n.frontendURL, token)
	return n.send(to, "Verify your email", body)
}

// SendWelcomeEmail greets a newly registered account
func (n *EmailNotifier) SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`
		<h2>Welcome aboard, %s!</h2>
		<p>Your account has been created. Browse courses, shortlist the ones you like and apply in minutes.</p>
	`, name)
	return n.send(to, "Welcome to Enrols", body)
}

func (n *EmailNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send %q email: %w", subject, err)
	}
	return nil
}
