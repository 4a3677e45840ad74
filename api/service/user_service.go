// api/service/user_service.go
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/config"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// IUserService defines the interface for user and authentication operations
type IUserService interface {
	Register(ctx context.Context, caller *model.User, user model.User, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
	UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// UserService handles user management and issues session tokens.
type UserService struct {
	userDAO         *dao.UserDAO
	departmentDAO   *dao.DepartmentDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(
	userDAO *dao.UserDAO,
	departmentDAO *dao.DepartmentDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *UserService {
	s := &UserService{
		userDAO:         userDAO,
		departmentDAO:   departmentDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
	eventBus.Subscribe("user.registered", s.onUserRegistered)
	eventBus.Subscribe("user.roleChanged", s.onUserRoleChanged)
	return s
}

func (s *UserService) onUserRegistered(ctx context.Context, event util.Event) error {
	user, ok := event.Payload.(model.User)
	if !ok {
		return nil
	}
	if err := s.notificationSvc.NotifyUserChange(ctx, "registered", user); err != nil {
		return err
	}
	return s.notificationSvc.SendEmail(ctx, user.Email,
		"Welcome to the academic file portal",
		"Your account has been created with role "+string(user.Role)+".")
}

func (s *UserService) onUserRoleChanged(ctx context.Context, event util.Event) error {
	user, ok := event.Payload.(model.User)
	if !ok {
		return nil
	}
	return s.notificationSvc.NotifyUserChange(ctx, "roleChanged", user)
}

// Register creates a user account. The very first account may self-register
// as ADMIN to bootstrap the portal; after that only an authenticated admin
// may create non-student accounts.
func (s *UserService) Register(ctx context.Context, caller *model.User, user model.User, password string) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		logger.Warn("Rejected invalid registration", zap.Error(err), zap.String("email", user.Email))
		return nil, echo_errors.ErrInvalidUserData
	}
	if len(password) < 8 {
		return nil, echo_errors.ErrInvalidUserData
	}

	if user.Role != model.RoleStudent {
		total, err := s.userDAO.CountUsers(ctx)
		if err != nil {
			return nil, err
		}
		bootstrap := total == 0 && user.Role == model.RoleAdmin
		if !bootstrap && (caller == nil || caller.Role != model.RoleAdmin) {
			return nil, echo_errors.ErrAccessDenied
		}
	}

	if user.DepartmentID != "" {
		if _, err := s.departmentDAO.GetDepartmentByName(ctx, user.DepartmentID); err != nil {
			return nil, echo_errors.ErrDepartmentNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, echo_errors.ErrInternalServer
	}
	user.PasswordHash = string(hash)

	userID, err := s.userDAO.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "user.registered", *created)
	return created, nil
}

// Login verifies the credentials and returns a signed session token. A
// missing account and a wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		if err == echo_errors.ErrUserNotFound {
			return "", nil, echo_errors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Failed login attempt", zap.String("email", email))
		return "", nil, echo_errors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err), zap.String("userID", user.ID))
		return "", nil, echo_errors.ErrInternalServer
	}

	logger.Info("User logged in", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
	return token, user, nil
}

func (s *UserService) issueToken(user *model.User) (string, error) {
	ttl := config.GetDuration("auth.tokenTTL")
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetString("auth.jwtSecret")))
}

// GetUser fetches a user, preferring the cache over the store.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if cached, err := s.cacheService.GetUser(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetUser(ctx, *user); err != nil {
		logger.Debug("Failed to cache user", zap.Error(err), zap.String("userID", userID))
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.userDAO.ListUsers(ctx, limit, offset)
}

// UpdateUserRole changes a user's role and invalidates the cached entry so
// the next access decision sees the new role.
func (s *UserService) UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, echo_errors.ErrInvalidRole
	}

	user, err := s.userDAO.UpdateUserRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.DeleteUser(ctx, userID); err != nil {
		logger.Warn("Failed to invalidate user cache", zap.Error(err), zap.String("userID", userID))
	}

	s.eventBus.Publish(ctx, "user.roleChanged", *user)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userDAO.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if err := s.cacheService.DeleteUser(ctx, userID); err != nil {
		logger.Warn("Failed to invalidate user cache", zap.Error(err), zap.String("userID", userID))
	}

	s.eventBus.Publish(ctx, "user.deleted", userID)
	return nil
}
