// api/controller/file_controller_test.go
package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/config"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/controller"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/test/mock"
)

func TestMain(m *testing.M) {
	if err := config.InitConfig(); err != nil {
		panic(err)
	}
	logger.InitLogger(os.TempDir())
	defer logger.Sync()
	gin.SetMode(gin.TestMode)
	m.Run()
}

// makeToken signs a session token the auth middleware will accept.
func makeToken(t *testing.T, userID string, role model.Role) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GetString("auth.jwtSecret")))
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func setupFileRouter(svc *mock.MockFileService) *gin.Engine {
	r := gin.New()
	controller.NewFileController(svc).RegisterRoutes(r)
	return r
}

func TestDownloadFile_Success(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	file := &model.AcademicFile{ID: "file-1", FileName: "notes.pdf", FileSize: 4}
	svc.On("Download", testify_mock.Anything, testify_mock.Anything, "file-1", testify_mock.Anything).
		Return(file, io.NopCloser(strings.NewReader("data")), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/files/file-1/download", nil)
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "data", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "notes.pdf")
}

func TestDownloadFile_Denied(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	svc.On("Download", testify_mock.Anything, testify_mock.Anything, "file-1", testify_mock.Anything).
		Return(nil, nil, echo_errors.ErrAccessDenied)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/files/file-1/download", nil)
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestViewFile_NotFound(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	svc.On("View", testify_mock.Anything, testify_mock.Anything, "missing", testify_mock.Anything).
		Return(nil, echo_errors.ErrFileNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/files/missing", nil)
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewFile_Success(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	svc.On("View", testify_mock.Anything, testify_mock.Anything, "file-1", testify_mock.Anything).
		Return(&model.AcademicFile{ID: "file-1", FileName: "notes.pdf"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/files/file-1", nil)
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.AcademicFile
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "file-1", got.ID)
}

func TestDeleteFile_Success(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	svc.On("Delete", testify_mock.Anything, testify_mock.Anything, "file-1", testify_mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/files/file-1", nil)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFiles_Unauthenticated(t *testing.T) {
	router := setupFileRouter(new(mock.MockFileService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/files", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The upload route is gated on role before the handler runs.
func TestUploadFile_StudentForbidden(t *testing.T) {
	svc := new(mock.MockFileService)
	router := setupFileRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/files", strings.NewReader(""))
	req.Header.Set("Authorization", makeToken(t, "stu-1", model.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "Upload", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything, testify_mock.Anything)
}
