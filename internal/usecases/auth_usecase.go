package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/domain/notifiers"
	"enrols.backend/internal/domain/repositories"
	"enrols.backend/pkg/crypto"
	"enrols.backend/pkg/jwt"
	"enrols.backend/pkg/logger"
	"enrols.backend/pkg/phone"
	"enrols.backend/pkg/redis"
)

// OtpChallenger starts an OTP challenge for a phone number and returns
// the opaque verification token.
type OtpChallenger interface {
	RequestOtp(ctx context.Context, phoneNumber string) (string, error)
}

// AuthUsecase handles registration, login and session issuance
type AuthUsecase struct {
	accountRepo        repositories.AccountRepository
	studentRepo        repositories.StudentRepository
	resolver           *IdentityResolver
	jwtService         *jwt.JWTService
	sessionStore       *redis.SessionStore
	mailer             notifiers.Mailer
	challenger         OtpChallenger
	defaultCallingCode string
	sessionTTL         time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	accountRepo repositories.AccountRepository,
	studentRepo repositories.StudentRepository,
	resolver *IdentityResolver,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	mailer notifiers.Mailer,
	challenger OtpChallenger,
	defaultCallingCode string,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo:        accountRepo,
		studentRepo:        studentRepo,
		resolver:           resolver,
		jwtService:         jwtService,
		sessionStore:       sessionStore,
		mailer:             mailer,
		challenger:         challenger,
		defaultCallingCode: defaultCallingCode,
		sessionTTL:         sessionTTL,
	}
}

// Register creates a student account with a caller-chosen password
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.StudentProfile, error) {
	normalized, err := phone.Normalize(input.PhoneNumber, u.defaultCallingCode)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid phone number")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	profile, err := u.createStudent(ctx, input.Email, input.FullName, normalized, passwordHash)
	if err != nil {
		return nil, err
	}

	// Welcome mail is best-effort; registration already succeeded.
	if err := u.mailer.SendWelcomeEmail(input.Email, input.FullName); err != nil {
		logger.Warn(ctx, "welcome email failed", zap.Error(err))
	}
	return profile, nil
}

// RegisterWithOtp creates a student account with a server-generated
// password and immediately starts the phone OTP challenge. The returned
// token redeems the challenge.
func (u *AuthUsecase) RegisterWithOtp(ctx context.Context, input *entities.RegisterOtpInput) (*entities.StudentProfile, string, error) {
	normalized, err := phone.Normalize(input.PhoneNumber, u.defaultCallingCode)
	if err != nil {
		return nil, "", domainerrors.BadRequest("invalid phone number")
	}

	password, err := crypto.GenerateStrongPassword()
	if err != nil {
		return nil, "", err
	}
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	profile, err := u.createStudent(ctx, input.Email, input.FullName, normalized, passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.challenger.RequestOtp(ctx, normalized)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (u *AuthUsecase) createStudent(ctx context.Context, email, fullName, phoneNumber, passwordHash string) (*entities.StudentProfile, error) {
	if _, err := u.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeValidation, "email already registered", domainerrors.ErrAlreadyExists)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.studentRepo.GetByPhoneNumber(ctx, phoneNumber); err == nil {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeValidation, "phone number already registered", domainerrors.ErrAlreadyExists)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	account := &entities.Account{
		ID:           uuid.New(),
		Email:        email,
		Kind:         entities.AccountKindStudent,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	profile := &entities.StudentProfile{
		AccountID:   account.ID,
		Email:       email,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		CreatedAt:   now,
	}
	if err := u.studentRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Login authenticates by email and password and issues a session
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	account, err := u.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return u.IssueSession(ctx, account)
}

// IssueSession generates a token pair for the account and, when a
// session store is configured, persists an encrypted copy in Redis.
func (u *AuthUsecase) IssueSession(ctx context.Context, account *entities.Account) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(account.ID, account.Email, string(account.Kind))
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Account:      account,
	}

	if u.sessionStore != nil {
		sessionID := uuid.NewString()
		data := &redis.SessionData{
			AccountID:    account.ID.String(),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}
		if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			logger.Warn(ctx, "session persist failed", zap.Error(err))
		} else {
			resp.SessionID = sessionID
		}
	}
	return resp, nil
}

// RefreshToken validates a refresh token and issues a fresh pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	account, err := u.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("account no longer exists")
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, domainerrors.Unauthorized("account disabled")
	}

	return u.jwtService.GenerateTokenPair(account.ID, account.Email, string(account.Kind))
}

// GetAccount gets an account by ID
func (u *AuthUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, id)
}

// GetProfile resolves the account to its richest identity view
func (u *AuthUsecase) GetProfile(ctx context.Context, account *entities.Account) (*entities.Identity, error) {
	return u.resolver.Resolve(ctx, account)
}
