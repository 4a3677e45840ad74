// api/controller/admin_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/controller"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/test/mock"
)

type adminFixture struct {
	stats  *mock.MockStatsService
	alerts *mock.MockAlertService
	users  *mock.MockUserService
	router *gin.Engine
}

func setupAdminRouter() *adminFixture {
	f := &adminFixture{
		stats:  new(mock.MockStatsService),
		alerts: new(mock.MockAlertService),
		users:  new(mock.MockUserService),
	}
	f.router = gin.New()
	controller.NewAdminController(f.stats, f.alerts, f.users).RegisterRoutes(f.router)
	return f
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	f := setupAdminRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/alerts", nil)
	req.Header.Set("Authorization", makeToken(t, "fac-1", model.RoleFaculty))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListAlerts_Success(t *testing.T) {
	f := setupAdminRouter()

	alerts := []*model.Alert{
		{ID: "alert-1", UserID: "stu-1", Severity: model.SeverityHigh},
	}
	f.alerts.On("ListAlerts", testify_mock.Anything, 10, 0).Return(alerts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/alerts", nil)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alert-1")
}

func TestReviewAlert_NotFound(t *testing.T) {
	f := setupAdminRouter()

	f.alerts.On("MarkReviewed", testify_mock.Anything, "missing").Return(nil, echo_errors.ErrAlertNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/alerts/missing/review", nil)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivityLog_InvalidActionFilter(t *testing.T) {
	f := setupAdminRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/activity?action=READ", nil)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.stats.AssertNotCalled(t, "ActivityLog", testify_mock.Anything, testify_mock.Anything)
}

func TestActivityLog_FiltersByAction(t *testing.T) {
	f := setupAdminRouter()

	f.stats.On("ActivityLog", testify_mock.Anything, testify_mock.MatchedBy(func(filter ledger.QueryFilter) bool {
		return filter.Action != nil && *filter.Action == model.ActionDownload
	})).Return([]ledger.Entry{}, 0, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/activity?action=DOWNLOAD", nil)
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	f.stats.AssertExpectations(t)
}

func TestUpdateUserRole_Invalid(t *testing.T) {
	f := setupAdminRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/users/stu-1/role", strings.NewReader(`{"role":"SUPERUSER"}`))
	req.Header.Set("Authorization", makeToken(t, "adm-1", model.RoleAdmin))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.users.AssertNotCalled(t, "UpdateUserRole", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything)
}
