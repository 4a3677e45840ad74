// test/mock/access.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// MockFileFinder is a mock implementation of access.FileFinder
type MockFileFinder struct {
	mock.Mock
}

func (m *MockFileFinder) GetFile(ctx context.Context, fileID string) (*model.AcademicFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AcademicFile), args.Error(1)
}

// MockGrantChecker is a mock implementation of access.GrantChecker
type MockGrantChecker struct {
	mock.Mock
}

func (m *MockGrantChecker) HasActiveGrant(ctx context.Context, userID, fileID string, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, fileID, now)
	return args.Bool(0), args.Error(1)
}

// MockAlertSink is a mock implementation of access.AlertSink
type MockAlertSink struct {
	mock.Mock
}

func (m *MockAlertSink) CreateAlert(ctx context.Context, alert model.Alert) (string, error) {
	args := m.Called(ctx, alert)
	return args.String(0), args.Error(1)
}
