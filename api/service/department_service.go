// api/service/department_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// IDepartmentService defines the interface for department operations
type IDepartmentService interface {
	CreateDepartment(ctx context.Context, name string) (*model.Department, error)
	GetDepartmentByName(ctx context.Context, name string) (*model.Department, error)
	ListDepartments(ctx context.Context) ([]*model.Department, error)
}

type DepartmentService struct {
	departmentDAO *dao.DepartmentDAO
	cacheService  *util.CacheService
}

var _ IDepartmentService = &DepartmentService{}

func NewDepartmentService(departmentDAO *dao.DepartmentDAO, cacheService *util.CacheService) *DepartmentService {
	return &DepartmentService{
		departmentDAO: departmentDAO,
		cacheService:  cacheService,
	}
}

// CreateDepartment is idempotent on the name; creating an existing
// department returns the existing record.
func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) (*model.Department, error) {
	if name == "" {
		return nil, echo_errors.ErrInvalidUserData
	}

	if _, err := s.departmentDAO.CreateDepartment(ctx, model.Department{Name: name}); err != nil {
		return nil, err
	}

	department, err := s.departmentDAO.GetDepartmentByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetDepartment(ctx, *department); err != nil {
		logger.Debug("Failed to cache department", zap.Error(err), zap.String("name", name))
	}
	return department, nil
}

func (s *DepartmentService) GetDepartmentByName(ctx context.Context, name string) (*model.Department, error) {
	if cached, err := s.cacheService.GetDepartment(ctx, name); err == nil && cached != nil {
		return cached, nil
	}

	department, err := s.departmentDAO.GetDepartmentByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetDepartment(ctx, *department); err != nil {
		logger.Debug("Failed to cache department", zap.Error(err), zap.String("name", name))
	}
	return department, nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	return s.departmentDAO.ListDepartments(ctx)
}
