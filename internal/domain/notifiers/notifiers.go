package notifiers

// Mailer dispatches transactional email. Implementations block on the
// provider; callers surface failures as dispatch errors without retry.
type Mailer interface {
	SendPasswordResetEmail(to, name, token string) error
	SendVerificationEmail(to, name, token string) error
	SendWelcomeEmail(to, name string) error
}

// SmsSender dispatches the plaintext OTP code out-of-band. The
// verification token itself never travels over SMS.
type SmsSender interface {
	SendOtp(phoneNumber, code string) error
}
