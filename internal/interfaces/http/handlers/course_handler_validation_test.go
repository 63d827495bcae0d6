package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"enrols.backend/internal/domain/entities"
	"enrols.backend/internal/interfaces/http/middleware"
)

func asInstitute(c *gin.Context) {
	id := uuid.New()
	c.Set(middleware.IdentityKey, &entities.Identity{
		Account:   &entities.Account{ID: id, Kind: entities.AccountKindInstituteAdmin, IsActive: true},
		Institute: &entities.InstituteProfile{AccountID: id},
	})
}

func TestCourseHandler_AdminEndpoints_RequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &CourseHandler{}
	r := gin.New()
	r.POST("/courses", h.CreateCourse)
	r.PUT("/courses/:id", h.UpdateCourse)
	r.DELETE("/courses/:id", h.DeleteCourse)
	r.POST("/courses/:id/batches", h.AddBatch)

	require.Equal(t, http.StatusForbidden, postJSON(t, r, "/courses", `{}`).Code)
	require.Equal(t, http.StatusForbidden, postJSON(t, r, "/courses/"+uuid.NewString()+"/batches", `{}`).Code)

	req := httptest.NewRequest(http.MethodDelete, "/courses/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCourseHandler_BadUUIDAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &CourseHandler{}
	r := gin.New()
	r.GET("/courses/:id", h.GetCourse)
	r.PUT("/courses/:id", func(c *gin.Context) {
		asInstitute(c)
		h.UpdateCourse(c)
	})
	r.POST("/courses", func(c *gin.Context) {
		asInstitute(c)
		h.CreateCourse(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/courses/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Mode outside the enum fails binding before the usecase is touched.
	require.Equal(t, http.StatusBadRequest, postJSON(t, r, "/courses", `{"name":"X","slug":"x","mode":"REMOTE"}`).Code)
}
