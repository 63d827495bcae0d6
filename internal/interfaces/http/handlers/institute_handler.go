package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/interfaces/http/response"
	"enrols.backend/internal/usecases"
)

// InstituteHandler serves the institute directory and the admin's own
// profile page
type InstituteHandler struct {
	instituteUsecase *usecases.InstituteUsecase
}

// NewInstituteHandler creates a new institute handler
func NewInstituteHandler(instituteUsecase *usecases.InstituteUsecase) *InstituteHandler {
	return &InstituteHandler{
		instituteUsecase: instituteUsecase,
	}
}

// List lists all institutes
// GET /api/v1/institutes
func (h *InstituteHandler) List(c *gin.Context) {
	institutes, err := h.instituteUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"institutes": institutes})
}

// GetMyProfile returns the authenticated institute's profile
// GET /api/v1/institutes/me
func (h *InstituteHandler) GetMyProfile(c *gin.Context) {
	id, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	profile, err := h.instituteUsecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateMyProfile replaces the authenticated institute's profile page
// PUT /api/v1/institutes/me
func (h *InstituteHandler) UpdateMyProfile(c *gin.Context) {
	id, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	var input entities.UpdateInstituteProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.instituteUsecase.UpdateProfile(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
