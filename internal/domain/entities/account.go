package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind discriminates the concrete profile owned by an account.
// The kind is set when the profile is created and never changes.
type AccountKind string

const (
	AccountKindStudent        AccountKind = "STUDENT"
	AccountKindInstituteAdmin AccountKind = "INSTITUTE_ADMIN"
)

// Account is the identity root shared by all user kinds.
type Account struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Kind         AccountKind `json:"kind"`
	PasswordHash string      `json:"-"`
	IsActive     bool        `json:"isActive"`
	IsStaff      bool        `json:"isStaff"`
	IsSuperuser  bool        `json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Identity is an account resolved to its richest available view. At most
// one of Student / Institute is non-nil; both nil means the tagged
// profile row is missing and only the bare account is usable.
type Identity struct {
	Account   *Account
	Student   *StudentProfile
	Institute *InstituteProfile
}

// IsStudent reports whether the identity resolved to a student profile.
func (i *Identity) IsStudent() bool {
	return i != nil && i.Student != nil
}

// IsInstituteAdmin reports whether the identity resolved to an institute
// admin profile.
func (i *Identity) IsInstituteAdmin() bool {
	return i != nil && i.Institute != nil
}

// IsSuperuser reports the administrative override flag.
func (i *Identity) IsSuperuser() bool {
	return i != nil && i.Account != nil && i.Account.IsSuperuser
}

// EmailVerified reports the student email-verified flag; non-students
// have no such flag and report false.
func (i *Identity) EmailVerified() bool {
	return i.IsStudent() && i.Student.EmailVerified
}

// PhoneVerified reports the student phone-verified flag.
func (i *Identity) PhoneVerified() bool {
	return i.IsStudent() && i.Student.PhoneNumberVerified
}

// RegisterInput is the direct registration payload.
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"fullName" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// RegisterOtpInput is the OTP-gated registration payload; the password is
// generated server-side and phone ownership is proven via OTP.
type RegisterOtpInput struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"fullName" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginInput is the password login payload.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordInput starts the password reset flow.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput redeems a password reset token.
type ResetPasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// OtpRequestInput starts an OTP flow for a phone number.
type OtpRequestInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// OtpVerifyInput redeems an OTP challenge.
type OtpVerifyInput struct {
	OTP string `json:"otp" binding:"required,len=6,numeric"`
}

// AuthResponse carries issued session credentials.
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	SessionID    string   `json:"sessionId,omitempty"`
	Account      *Account `json:"account,omitempty"`
}
