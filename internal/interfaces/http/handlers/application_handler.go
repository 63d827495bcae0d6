package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/interfaces/http/middleware"
	"enrols.backend/internal/interfaces/http/response"
	"enrols.backend/internal/usecases"
)

// ApplicationHandler handles course applications
type ApplicationHandler struct {
	applicationUsecase *usecases.ApplicationUsecase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
	}
}

func studentID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || !identity.IsStudent() {
		return uuid.Nil, false
	}
	return identity.Student.AccountID, true
}

// Apply submits an application to a course batch
// POST /api/v1/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	var input entities.CreateApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.applicationUsecase.Apply(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, application)
}

// ListMine lists the authenticated student's applications
// GET /api/v1/applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Student account required"))
		return
	}

	applications, err := h.applicationUsecase.ListMine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// GetApplication fetches one application, subject to visibility rules
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	application, err := h.applicationUsecase.GetApplication(c.Request.Context(), identity, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, application)
}

// ListForCourse lists applications to one of the institute's courses
// GET /api/v1/courses/:id/applications
func (h *ApplicationHandler) ListForCourse(c *gin.Context) {
	instID, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	courseID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	applications, err := h.applicationUsecase.ListForCourse(c.Request.Context(), instID, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// UpdateStatus moves an application through review
// PUT /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	instID, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.applicationUsecase.UpdateStatus(c.Request.Context(), instID, id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, application)
}
