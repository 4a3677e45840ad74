// api/service/stats_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/test/mock"
)

type statsServiceFixture struct {
	users     *mock.MockUserStatsStore
	files     *mock.MockFileStatsStore
	alerts    *mock.MockAlertService
	ledgerSvc *mock.MockLedgerService
	svc       service.IStatsService
}

func newStatsServiceFixture() *statsServiceFixture {
	f := &statsServiceFixture{
		users:     new(mock.MockUserStatsStore),
		files:     new(mock.MockFileStatsStore),
		alerts:    new(mock.MockAlertService),
		ledgerSvc: new(mock.MockLedgerService),
	}
	f.svc = service.NewStatsService(f.users, f.files, f.alerts, f.ledgerSvc)
	return f
}

func (f *statsServiceFixture) stubAdminAggregates() {
	f.users.On("CountUsers", testify_mock.Anything).Return(9, nil)
	f.users.On("CountUsersByRole", testify_mock.Anything, model.RoleAdmin).Return(1, nil)
	f.users.On("CountUsersByRole", testify_mock.Anything, model.RoleFaculty).Return(3, nil)
	f.users.On("CountUsersByRole", testify_mock.Anything, model.RoleStudent).Return(5, nil)
	f.files.On("CountFiles", testify_mock.Anything).Return(12, nil)
	f.files.On("TopDownloaded", testify_mock.Anything, 5).Return([]*model.AcademicFile{}, nil)
	f.files.On("CategoryDistribution", testify_mock.Anything, "").Return(map[string]int{"NOTES": 12}, nil)
	f.files.On("DepartmentDistribution", testify_mock.Anything, "").Return(map[string]int{"CSE": 12}, nil)
	f.files.On("MonthlyUploads", testify_mock.Anything, "").Return(map[int]int{8: 12}, nil)
	f.alerts.On("Summary", testify_mock.Anything).Return(&model.AlertSummary{High: 2, UniqueUsers: 1}, nil)
	f.ledgerSvc.On("Query", testify_mock.Anything, ledger.QueryFilter{Limit: 20}).Return([]ledger.Entry{}, 0, nil)
}

// The per-role counts run on separate goroutines; the dashboard must still
// come back with every role present and correct. Run with -race.
func TestAdminDashboard_RoleCountsAssembled(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newStatsServiceFixture()
		f.stubAdminAggregates()

		dashboard, err := f.svc.AdminDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 9, dashboard.TotalUsers)
		assert.Equal(t, map[string]int{
			"ADMIN":   1,
			"FACULTY": 3,
			"STUDENT": 5,
		}, dashboard.UsersByRole)
	}
}

func TestAdminDashboard_AggregateFailureFailsWhole(t *testing.T) {
	f := newStatsServiceFixture()
	f.stubAdminAggregates()
	f.users.ExpectedCalls = nil
	f.users.On("CountUsers", testify_mock.Anything).Return(0, echo_errors.ErrDatabaseOperation)
	f.users.On("CountUsersByRole", testify_mock.Anything, testify_mock.Anything).Return(0, echo_errors.ErrDatabaseOperation)

	dashboard, err := f.svc.AdminDashboard(context.Background())

	assert.Nil(t, dashboard)
	assert.Equal(t, echo_errors.ErrDatabaseOperation, err)
}

func TestStudentDashboard_FoldsLedgerEntries(t *testing.T) {
	f := newStatsServiceFixture()
	now := time.Now()

	entries := []ledger.Entry{
		{Timestamp: now.Add(-1 * time.Hour), UserID: "stu-1", FileID: "file-1", Action: model.ActionDownload},
		{Timestamp: now.Add(-2 * time.Hour), UserID: "stu-1", FileID: "file-2", Action: model.ActionView},
		{Timestamp: now.AddDate(0, 0, -10), UserID: "stu-1", FileID: "file-1", Action: model.ActionDownload},
	}
	f.ledgerSvc.On("ListSince", testify_mock.Anything, "stu-1",
		[]model.Action{model.ActionView, model.ActionDownload}, testify_mock.Anything).Return(entries, nil)
	f.files.On("CategoriesByIDs", testify_mock.Anything, testify_mock.Anything).
		Return(map[string]string{"file-1": "NOTES", "file-2": "LAB"}, nil)

	dashboard, err := f.svc.StudentDashboard(context.Background(), "stu-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, dashboard.ViewCount)
	assert.Equal(t, 2, dashboard.DownloadCount)
	assert.Equal(t, 1, dashboard.DownloadsThisWeek)
	assert.Equal(t, 2, dashboard.UniqueFiles)
	assert.Len(t, dashboard.DailyActivity, 2)
}
