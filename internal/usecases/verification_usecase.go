package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/domain/notifiers"
	"enrols.backend/internal/domain/repositories"
	"enrols.backend/pkg/crypto"
	"enrols.backend/pkg/logger"
	"enrols.backend/pkg/otp"
	"enrols.backend/pkg/phone"
	"enrols.backend/pkg/token"
)

const (
	// PasswordResetValidity bounds how long a reset link works.
	PasswordResetValidity = 30 * time.Minute
	// EmailVerifyValidity bounds how long a verification link works.
	EmailVerifyValidity = time.Hour
)

// VerificationUsecase drives the token-based verification flows:
// password reset, email verification and phone OTP challenges.
type VerificationUsecase struct {
	accountRepo        repositories.AccountRepository
	studentRepo        repositories.StudentRepository
	otpRepo            repositories.OtpRepository
	codec              *token.Codec
	mailer             notifiers.Mailer
	sms                notifiers.SmsSender
	sessions           *AuthUsecase
	defaultCallingCode string
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	accountRepo repositories.AccountRepository,
	studentRepo repositories.StudentRepository,
	otpRepo repositories.OtpRepository,
	codec *token.Codec,
	mailer notifiers.Mailer,
	sms notifiers.SmsSender,
	defaultCallingCode string,
) *VerificationUsecase {
	return &VerificationUsecase{
		accountRepo:        accountRepo,
		studentRepo:        studentRepo,
		otpRepo:            otpRepo,
		codec:              codec,
		mailer:             mailer,
		sms:                sms,
		defaultCallingCode: defaultCallingCode,
	}
}

// BindSessionIssuer wires the auth usecase used to mint sessions after a
// successful OTP login. Set once during startup.
func (u *VerificationUsecase) BindSessionIssuer(auth *AuthUsecase) {
	u.sessions = auth
}

// ForgotPassword emails a reset link. An unknown email reports not
// found; a mail provider failure reports a dispatch error.
func (u *VerificationUsecase) ForgotPassword(ctx context.Context, email string) error {
	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no account with this email")
		}
		return err
	}

	t, err := u.codec.Encode(&token.Claims{
		Email:            account.Email,
		RegisteredClaims: token.ExpiresIn(PasswordResetValidity),
	})
	if err != nil {
		return err
	}

	name := account.Email
	if profile, err := u.studentRepo.GetByAccountID(ctx, account.ID); err == nil {
		name = profile.FullName
	}

	if err := u.mailer.SendPasswordResetEmail(account.Email, name, t); err != nil {
		return domainerrors.DispatchFailure("could not send reset email", err)
	}
	return nil
}

// ResetPassword redeems a reset token and sets the new password. Tokens
// stay redeemable until expiry.
func (u *VerificationUsecase) ResetPassword(ctx context.Context, tokenString, password string) error {
	claims, ok := u.codec.Decode(tokenString)
	if !ok {
		return domainerrors.TokenNotValid()
	}
	if claims.Email == "" {
		return domainerrors.BadRequest("token carries no email")
	}

	account, err := u.accountRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no account with this email")
		}
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	return u.accountRepo.UpdatePasswordHash(ctx, account.ID, hash)
}

// SendVerificationEmail mails an address-confirmation link to the
// authenticated account.
func (u *VerificationUsecase) SendVerificationEmail(ctx context.Context, account *entities.Account) error {
	t, err := u.codec.Encode(&token.Claims{
		Email:            account.Email,
		RegisteredClaims: token.ExpiresIn(EmailVerifyValidity),
	})
	if err != nil {
		return err
	}

	name := account.Email
	if profile, err := u.studentRepo.GetByAccountID(ctx, account.ID); err == nil {
		name = profile.FullName
	}

	if err := u.mailer.SendVerificationEmail(account.Email, name, t); err != nil {
		return domainerrors.DispatchFailure("could not send verification email", err)
	}
	return nil
}

// VerifyEmailToken redeems an email-verification token and flips the
// student's email_verified flag. Public; the token is the credential.
// Idempotent: re-redeeming an unexpired token rewrites the same flag.
func (u *VerificationUsecase) VerifyEmailToken(ctx context.Context, tokenString string) error {
	claims, ok := u.codec.Decode(tokenString)
	if !ok {
		return domainerrors.TokenNotValid()
	}
	if claims.Email == "" {
		return domainerrors.BadRequest("token carries no email")
	}

	profile, err := u.studentRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no student with this email")
		}
		return err
	}
	return u.studentRepo.SetEmailVerified(ctx, profile.AccountID)
}

// RequestOtp generates a code for the student owning the phone number,
// sends the code over SMS and returns the verification token. The token,
// not server state, carries the challenge.
func (u *VerificationUsecase) RequestOtp(ctx context.Context, phoneNumber string) (string, error) {
	normalized, err := phone.Normalize(phoneNumber, u.defaultCallingCode)
	if err != nil {
		return "", domainerrors.BadRequest("invalid phone number")
	}

	if _, err := u.studentRepo.GetByPhoneNumber(ctx, normalized); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("no student with this phone number")
		}
		return "", err
	}

	code, err := otp.Generate(normalized)
	if err != nil {
		return "", err
	}

	t, err := u.codec.Encode(&token.Claims{
		PhoneNumber:      normalized,
		OTP:              code.Value,
		RegisteredClaims: token.ExpiresIn(otp.TTL),
	})
	if err != nil {
		return "", err
	}

	// Audit row only; expiry enforcement rides inside the token.
	record := &entities.OtpRecord{
		ID:          uuid.New(),
		PhoneNumber: normalized,
		Code:        code.Value,
		CreatedAt:   code.CreatedAt,
		ExpiresAt:   code.ExpiresAt(),
	}
	if err := u.otpRepo.Create(ctx, record); err != nil {
		logger.Warn(ctx, "otp audit record failed", zap.Error(err))
	}

	if err := u.sms.SendOtp(normalized, code.Value); err != nil {
		return "", domainerrors.DispatchFailure("could not send otp", err)
	}
	return t, nil
}

// VerifyOtpLogin redeems an OTP challenge and issues a session for the
// student who owns the phone number.
func (u *VerificationUsecase) VerifyOtpLogin(ctx context.Context, tokenString, code string) (*entities.AuthResponse, error) {
	phoneNumber, err := u.redeemOtp(tokenString, code)
	if err != nil {
		return nil, err
	}

	profile, err := u.studentRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("no student with this phone number")
		}
		return nil, err
	}

	account, err := u.accountRepo.GetByID(ctx, profile.AccountID)
	if err != nil {
		return nil, err
	}
	return u.sessions.IssueSession(ctx, account)
}

// VerifyPhoneNumber redeems an OTP challenge and flips the student's
// phone_number_verified flag. Idempotent for unexpired tokens.
func (u *VerificationUsecase) VerifyPhoneNumber(ctx context.Context, tokenString, code string) error {
	phoneNumber, err := u.redeemOtp(tokenString, code)
	if err != nil {
		return err
	}

	profile, err := u.studentRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no student with this phone number")
		}
		return err
	}
	return u.studentRepo.SetPhoneNumberVerified(ctx, profile.AccountID)
}

// redeemOtp decodes the token and compares the submitted code against
// the embedded one. Expired or tampered tokens and code mismatches are
// both forbidden; the phone claim is returned on success.
func (u *VerificationUsecase) redeemOtp(tokenString, code string) (string, error) {
	claims, ok := u.codec.Decode(tokenString)
	if !ok {
		return "", domainerrors.TokenNotValid()
	}
	if claims.PhoneNumber == "" || claims.OTP == "" {
		return "", domainerrors.BadRequest("token carries no otp challenge")
	}
	if subtle.ConstantTimeCompare([]byte(claims.OTP), []byte(code)) != 1 {
		return "", domainerrors.OtpNotValid()
	}
	return claims.PhoneNumber, nil
}
