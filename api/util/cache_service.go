// api/util/cache_service.go

package util

import (
	"context"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/db"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// CacheService fronts the Redis-backed entity cache. Grant lookups are
// deliberately absent: the active-grant check must hit the store every time
// because expiry is purely time-based.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return db.GetCachedUser(ctx, userID)
}

func (c *CacheService) SetUser(ctx context.Context, user model.User) error {
	return db.CacheUser(ctx, &user)
}

func (c *CacheService) DeleteUser(ctx context.Context, userID string) error {
	return db.DeleteCachedUser(ctx, userID)
}

func (c *CacheService) GetFile(ctx context.Context, fileID string) (*model.AcademicFile, error) {
	return db.GetCachedFile(ctx, fileID)
}

func (c *CacheService) SetFile(ctx context.Context, file model.AcademicFile) error {
	return db.CacheFile(ctx, &file)
}

func (c *CacheService) DeleteFile(ctx context.Context, fileID string) error {
	return db.DeleteCachedFile(ctx, fileID)
}

func (c *CacheService) GetDepartment(ctx context.Context, departmentID string) (*model.Department, error) {
	return db.GetCachedDepartment(ctx, departmentID)
}

func (c *CacheService) SetDepartment(ctx context.Context, department model.Department) error {
	return db.CacheDepartment(ctx, &department)
}

func (c *CacheService) DeleteDepartment(ctx context.Context, departmentID string) error {
	return db.DeleteCachedDepartment(ctx, departmentID)
}
