// test/mock/service.go
package mock

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
)

// MockFileService is a mock implementation of service.IFileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, caller access.Caller, file model.AcademicFile, payload io.Reader, ip string) (*model.AcademicFile, error) {
	args := m.Called(ctx, caller, file, payload, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AcademicFile), args.Error(1)
}

func (m *MockFileService) ListFiles(ctx context.Context, caller access.Caller, department string, limit, offset int) ([]*model.AcademicFile, error) {
	args := m.Called(ctx, caller, department, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AcademicFile), args.Error(1)
}

func (m *MockFileService) View(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, error) {
	args := m.Called(ctx, caller, fileID, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AcademicFile), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, io.ReadCloser, error) {
	args := m.Called(ctx, caller, fileID, ip)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.AcademicFile), args.Get(1).(io.ReadCloser), args.Error(2)
}

func (m *MockFileService) Delete(ctx context.Context, caller access.Caller, fileID, ip string) error {
	args := m.Called(ctx, caller, fileID, ip)
	return args.Error(0)
}

// MockGrantService is a mock implementation of service.IGrantService
type MockGrantService struct {
	mock.Mock
}

func (m *MockGrantService) GrantAccess(ctx context.Context, grantedBy, userID, fileID string, durationMinutes int) (*model.TemporaryAccess, error) {
	args := m.Called(ctx, grantedBy, userID, fileID, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TemporaryAccess), args.Error(1)
}

func (m *MockGrantService) ListGrantsForUser(ctx context.Context, userID string) ([]*model.TemporaryAccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TemporaryAccess), args.Error(1)
}

// MockAlertService is a mock implementation of service.IAlertService
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) ListAlerts(ctx context.Context, limit, offset int) ([]*model.Alert, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Alert), args.Error(1)
}

func (m *MockAlertService) Summary(ctx context.Context) (*model.AlertSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AlertSummary), args.Error(1)
}

func (m *MockAlertService) MarkReviewed(ctx context.Context, alertID string) (*model.Alert, error) {
	args := m.Called(ctx, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertService) DeleteAlert(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

// MockStatsService is a mock implementation of service.IStatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) AdminDashboard(ctx context.Context) (*service.AdminDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminDashboard), args.Error(1)
}

func (m *MockStatsService) FacultyDashboard(ctx context.Context, facultyID string) (*service.FacultyDashboard, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FacultyDashboard), args.Error(1)
}

func (m *MockStatsService) StudentDashboard(ctx context.Context, studentID string) (*service.StudentDashboard, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StudentDashboard), args.Error(1)
}

func (m *MockStatsService) ActivityLog(ctx context.Context, filter ledger.QueryFilter) ([]ledger.Entry, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]ledger.Entry), args.Int(1), args.Error(2)
}

// MockUserService is a mock implementation of service.IUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, caller *model.User, user model.User, password string) (*model.User, error) {
	args := m.Called(ctx, caller, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
