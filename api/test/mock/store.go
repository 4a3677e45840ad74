// test/mock/store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// MockFileStore is a mock implementation of service.FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) CreateFile(ctx context.Context, file model.AcademicFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) GetFile(ctx context.Context, fileID string) (*model.AcademicFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AcademicFile), args.Error(1)
}

func (m *MockFileStore) IncrementDownloadCount(ctx context.Context, fileID string) (int64, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileStore) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockFileStore) ListFiles(ctx context.Context, criteria model.FileSearchCriteria) ([]*model.AcademicFile, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AcademicFile), args.Error(1)
}

// MockFileCache is a mock implementation of service.FileCache
type MockFileCache struct {
	mock.Mock
}

func (m *MockFileCache) SetFile(ctx context.Context, file model.AcademicFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileCache) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// MockUserStatsStore is a mock implementation of service.UserStatsStore
type MockUserStatsStore struct {
	mock.Mock
}

func (m *MockUserStatsStore) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserStatsStore) CountUsersByRole(ctx context.Context, role model.Role) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

// MockFileStatsStore is a mock implementation of service.FileStatsStore
type MockFileStatsStore struct {
	mock.Mock
}

func (m *MockFileStatsStore) CountFiles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFileStatsStore) TopDownloaded(ctx context.Context, limit int) ([]*model.AcademicFile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AcademicFile), args.Error(1)
}

func (m *MockFileStatsStore) CategoryDistribution(ctx context.Context, uploadedBy string) (map[string]int, error) {
	args := m.Called(ctx, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockFileStatsStore) DepartmentDistribution(ctx context.Context, uploadedBy string) (map[string]int, error) {
	args := m.Called(ctx, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockFileStatsStore) MonthlyUploads(ctx context.Context, uploadedBy string) (map[int]int, error) {
	args := m.Called(ctx, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockFileStatsStore) StatsByUploader(ctx context.Context, uploadedBy string) (*dao.UploaderStats, error) {
	args := m.Called(ctx, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dao.UploaderStats), args.Error(1)
}

func (m *MockFileStatsStore) ListFiles(ctx context.Context, criteria model.FileSearchCriteria) ([]*model.AcademicFile, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AcademicFile), args.Error(1)
}

func (m *MockFileStatsStore) CategoriesByIDs(ctx context.Context, fileIDs []string) (map[string]string, error) {
	args := m.Called(ctx, fileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
