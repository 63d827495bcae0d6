package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/interfaces/http/middleware"
	"enrols.backend/internal/interfaces/http/response"
	"enrols.backend/internal/usecases"
)

// CourseHandler handles the public catalog and institute course management
type CourseHandler struct {
	courseUsecase *usecases.CourseUsecase
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseUsecase *usecases.CourseUsecase) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
	}
}

// instituteID pulls the institute admin's account ID out of the resolved
// identity. The role gate guarantees the profile is present.
func instituteID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || !identity.IsInstituteAdmin() {
		return uuid.Nil, false
	}
	return identity.Institute.AccountID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid " + name)
	}
	return id, nil
}

// ListCourses lists the public catalog with pagination
// GET /api/v1/courses?limit=20&offset=0
func (h *CourseHandler) ListCourses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	courses, total, err := h.courseUsecase.ListCourses(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"courses": courses,
		"total":   total,
	})
}

// GetCourse fetches one course with batches, eligibility and form fields
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	course, err := h.courseUsecase.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// GetCourseBySlug fetches one course by its URL slug
// GET /api/v1/courses/slug/:slug
func (h *CourseHandler) GetCourseBySlug(c *gin.Context) {
	course, err := h.courseUsecase.GetCourseBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// ListMyCourses lists the authenticated institute's own courses
// GET /api/v1/institutes/me/courses
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	id, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	courses, err := h.courseUsecase.ListInstituteCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// CreateCourse creates a course offered by the authenticated institute
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	id, ok := instituteID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Institute admin account required"))
		return
	}

	var input entities.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, course)
}

// UpdateCourse updates a course owned by the authenticated institute
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
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

	var input entities.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), instID, courseID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// DeleteCourse removes a course owned by the authenticated institute
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
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

	if err := h.courseUsecase.DeleteCourse(c.Request.Context(), instID, courseID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Course deleted",
	})
}

// AddBatch adds a batch to a course owned by the authenticated institute
// POST /api/v1/courses/:id/batches
func (h *CourseHandler) AddBatch(c *gin.Context) {
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

	var input entities.BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	batch, err := h.courseUsecase.AddBatch(c.Request.Context(), instID, courseID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, batch)
}
