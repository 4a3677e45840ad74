// api/controller/grant_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/controller"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/test/mock"
)

func setupGrantRouter(svc *mock.MockGrantService) *gin.Engine {
	r := gin.New()
	controller.NewGrantController(svc).RegisterRoutes(r)
	return r
}

func TestGrantAccess_Success(t *testing.T) {
	svc := new(mock.MockGrantService)
	router := setupGrantRouter(svc)

	grant := &model.TemporaryAccess{
		ID:        "grant-1",
		UserID:    "stu-1",
		FileID:    "file-1",
		ExpiresAt: time.Now().Add(30 * time.Minute),
		GrantedBy: "adm-1",
	}
	svc.On("GrantAccess", testify_mock.Anything, "adm-1", "stu-1", "file-1", 30).Return(grant, nil)

	body := strings.NewReader(`{"user_id":"stu-1","file_id":"file-1","duration_minutes":30}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/grants", body)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGrantAccess_InvalidDuration(t *testing.T) {
	svc := new(mock.MockGrantService)
	router := setupGrantRouter(svc)

	svc.On("GrantAccess", testify_mock.Anything, "adm-1", "stu-1", "file-1", -5).
		Return(nil, echo_errors.ErrInvalidGrantDuration)

	body := strings.NewReader(`{"user_id":"stu-1","file_id":"file-1","duration_minutes":-5}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/grants", body)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrantAccess_StudentForbidden(t *testing.T) {
	svc := new(mock.MockGrantService)
	router := setupGrantRouter(svc)

	body := strings.NewReader(`{"user_id":"stu-2","file_id":"file-1","duration_minutes":30}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/grants", body)
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "GrantAccess", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything)
}

func TestGrantAccess_FacultyForbidden(t *testing.T) {
	svc := new(mock.MockGrantService)
	router := setupGrantRouter(svc)

	body := strings.NewReader(`{"user_id":"stu-1","file_id":"file-1","duration_minutes":30}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/grants", body)
	req.Header.Set("Authorization", makeToken(t, "fac-1", model.RoleFaculty))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "GrantAccess", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything)
}

func TestGrantAccess_UserNotFound(t *testing.T) {
	svc := new(mock.MockGrantService)
	router := setupGrantRouter(svc)

	svc.On("GrantAccess", testify_mock.Anything, "adm-1", "ghost", "file-1", 30).
		Return(nil, echo_errors.ErrUserNotFound)

	body := strings.NewReader(`{"user_id":"ghost","file_id":"file-1","duration_minutes":30}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/grants", body)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
