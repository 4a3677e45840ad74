// api/service/grant_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// IGrantService defines the interface for temporary access grant operations
type IGrantService interface {
	GrantAccess(ctx context.Context, grantedBy, userID, fileID string, durationMinutes int) (*model.TemporaryAccess, error)
	ListGrantsForUser(ctx context.Context, userID string) ([]*model.TemporaryAccess, error)
}

// GrantService issues temporary access grants. Grants are create-only;
// there is no revocation, they simply lapse when their expiry passes.
type GrantService struct {
	grantDAO        *dao.GrantDAO
	userDAO         *dao.UserDAO
	fileDAO         *dao.FileDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IGrantService = &GrantService{}

// NewGrantService creates a new instance of GrantService
func NewGrantService(
	grantDAO *dao.GrantDAO,
	userDAO *dao.UserDAO,
	fileDAO *dao.FileDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *GrantService {
	return &GrantService{
		grantDAO:        grantDAO,
		userDAO:         userDAO,
		fileDAO:         fileDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

// GrantAccess creates a grant for the user/file pair expiring durationMinutes
// from now. Both the subject and the file must exist; duplicate overlapping
// grants are allowed and harmless since the access check only asks whether
// any of them is still active.
func (s *GrantService) GrantAccess(ctx context.Context, grantedBy, userID, fileID string, durationMinutes int) (*model.TemporaryAccess, error) {
	if err := s.validationUtil.ValidateGrantDuration(durationMinutes); err != nil {
		logger.Warn("Rejected grant with invalid duration",
			zap.Int("durationMinutes", durationMinutes),
			zap.String("userID", userID))
		return nil, echo_errors.ErrInvalidGrantDuration
	}

	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.fileDAO.GetFile(ctx, fileID); err != nil {
		return nil, err
	}

	grant := model.TemporaryAccess{
		UserID:    userID,
		FileID:    fileID,
		ExpiresAt: time.Now().Add(time.Duration(durationMinutes) * time.Minute),
		GrantedBy: grantedBy,
		CreatedAt: time.Now(),
	}

	grantID, err := s.grantDAO.CreateGrant(ctx, grant)
	if err != nil {
		return nil, err
	}
	grant.ID = grantID

	s.eventBus.Publish(ctx, "grant.created", grant)
	if err := s.notificationSvc.NotifyGrantCreated(ctx, grant); err != nil {
		logger.Warn("Failed to send grant notification", zap.Error(err), zap.String("grantID", grantID))
	}
	return &grant, nil
}

func (s *GrantService) ListGrantsForUser(ctx context.Context, userID string) ([]*model.TemporaryAccess, error) {
	return s.grantDAO.ListGrantsForUser(ctx, userID)
}
