package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/interfaces/http/middleware"
	"enrols.backend/internal/interfaces/http/response"
	"enrols.backend/internal/usecases"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles direct student registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"profile": profile,
	})
}

// RegisterWithOtp handles OTP-gated registration. The response carries the
// challenge token the client must redeem together with the SMS code.
// POST /api/v1/auth/register-otp
func (h *AuthHandler) RegisterWithOtp(c *gin.Context) {
	var input entities.RegisterOtpInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, otpToken, err := h.authUsecase.RegisterWithOtp(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Registration successful. An OTP has been sent to your phone.",
		"profile":  profile,
		"otpToken": otpToken,
	})
}

// Login handles password login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", domainerrors.ErrInvalidCredentials))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken exchanges a refresh token for a fresh pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Refresh token is required"))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// GetProfile returns the resolved identity of the authenticated account
// GET /api/v1/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	body := gin.H{"account": identity.Account}
	switch {
	case identity.IsStudent():
		body["student"] = identity.Student
	case identity.IsInstituteAdmin():
		body["institute"] = identity.Institute
	}

	response.Success(c, http.StatusOK, body)
}
