package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/interfaces/http/response"
	"enrols.backend/internal/usecases"
)

// PreferenceHandler serves the preference reference data and the
// student's selections
type PreferenceHandler struct {
	preferenceUsecase *usecases.PreferenceUsecase
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceUsecase *usecases.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUsecase: preferenceUsecase,
	}
}

// ListTags lists all tags
// GET /api/v1/preferences/tags
func (h *PreferenceHandler) ListTags(c *gin.Context) {
	tags, err := h.preferenceUsecase.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tags": tags})
}

// ListInterests lists all interests
// GET /api/v1/preferences/interests
func (h *PreferenceHandler) ListInterests(c *gin.Context) {
	interests, err := h.preferenceUsecase.ListInterests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"interests": interests})
}

// ListLocations lists all locations
// GET /api/v1/preferences/locations
func (h *PreferenceHandler) ListLocations(c *gin.Context) {
	locations, err := h.preferenceUsecase.ListLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"locations": locations})
}

// ListEducationLevels lists all education levels
// GET /api/v1/preferences/education-levels
func (h *PreferenceHandler) ListEducationLevels(c *gin.Context) {
	levels, err := h.preferenceUsecase.ListEducationLevels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"educationLevels": levels})
}

// selectPreferences shares the bind-then-replace shape of the three
// selection endpoints.
func (h *PreferenceHandler) selectPreferences(c *gin.Context, apply func(uuid.UUID, []uuid.UUID) error) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	var input entities.SelectPreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := apply(id, input.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Preferences updated",
	})
}

// SelectTags replaces the student's tag selection
// PUT /api/v1/preferences/tags
func (h *PreferenceHandler) SelectTags(c *gin.Context) {
	h.selectPreferences(c, func(student uuid.UUID, ids []uuid.UUID) error {
		return h.preferenceUsecase.SelectTags(c.Request.Context(), student, ids)
	})
}

// SelectInterests replaces the student's interest selection
// PUT /api/v1/preferences/interests
func (h *PreferenceHandler) SelectInterests(c *gin.Context) {
	h.selectPreferences(c, func(student uuid.UUID, ids []uuid.UUID) error {
		return h.preferenceUsecase.SelectInterests(c.Request.Context(), student, ids)
	})
}

// SelectLocations replaces the student's preferred locations
// PUT /api/v1/preferences/locations
func (h *PreferenceHandler) SelectLocations(c *gin.Context) {
	h.selectPreferences(c, func(student uuid.UUID, ids []uuid.UUID) error {
		return h.preferenceUsecase.SelectLocations(c.Request.Context(), student, ids)
	})
}

// SetEducationLevel sets the student's current education level
// PUT /api/v1/preferences/education-level
func (h *PreferenceHandler) SetEducationLevel(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	var input entities.SetEducationLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.preferenceUsecase.SetEducationLevel(c.Request.Context(), id, input.EducationLevelID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Education level updated",
	})
}

// AddToWishlist adds a course to the student's wishlist
// POST /api/v1/preferences/wishlist/:courseId
func (h *PreferenceHandler) AddToWishlist(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	courseID, err := pathUUID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.preferenceUsecase.AddToWishlist(c.Request.Context(), id, courseID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Course added to wishlist",
	})
}

// RemoveFromWishlist removes a course from the student's wishlist
// DELETE /api/v1/preferences/wishlist/:courseId
func (h *PreferenceHandler) RemoveFromWishlist(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	courseID, err := pathUUID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.preferenceUsecase.RemoveFromWishlist(c.Request.Context(), id, courseID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Course removed from wishlist",
	})
}
