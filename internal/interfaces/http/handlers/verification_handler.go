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

// VerificationHandler handles password reset, email verification and the
// OTP flows. Reset and verification tokens travel in the URL path, the
// OTP code in the body.
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// ForgotPassword mails a reset link to a known account
// POST /api/v1/auth/forgot-password
func (h *VerificationHandler) ForgotPassword(c *gin.Context) {
	var input entities.ForgotPasswordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password reset email sent",
	})
}

// ResetPassword redeems a reset token and sets a new password
// POST /api/v1/auth/reset-password/:token
func (h *VerificationHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.ResetPassword(c.Request.Context(), c.Param("token"), input.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password reset successfully",
	})
}

// SendVerificationEmail mails a verification link to the authenticated account
// POST /api/v1/auth/send-verification-email
func (h *VerificationHandler) SendVerificationEmail(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	if err := h.verificationUsecase.SendVerificationEmail(c.Request.Context(), identity.Account); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification email sent",
	})
}

// VerifyEmail redeems an email verification token
// POST /api/v1/auth/verify-email/:token
func (h *VerificationHandler) VerifyEmail(c *gin.Context) {
	if err := h.verificationUsecase.VerifyEmailToken(c.Request.Context(), c.Param("token")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}

// RequestOtp sends an OTP to a registered phone and returns the challenge token
// POST /api/v1/auth/otp/request
func (h *VerificationHandler) RequestOtp(c *gin.Context) {
	var input entities.OtpRequestInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token, err := h.verificationUsecase.RequestOtp(c.Request.Context(), input.PhoneNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "OTP sent",
		"otpToken": token,
	})
}

// OtpLogin redeems an OTP challenge into a full session
// POST /api/v1/auth/otp/login/:token
func (h *VerificationHandler) OtpLogin(c *gin.Context) {
	var input entities.OtpVerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.verificationUsecase.VerifyOtpLogin(c.Request.Context(), c.Param("token"), input.OTP)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// VerifyPhone redeems an OTP challenge into a verified phone flag
// POST /api/v1/auth/otp/verify-phone/:token
func (h *VerificationHandler) VerifyPhone(c *gin.Context) {
	var input entities.OtpVerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.VerifyPhoneNumber(c.Request.Context(), c.Param("token"), input.OTP); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Phone number verified successfully",
	})
}
