// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyFileChange(ctx context.Context, changeType string, file model.AcademicFile) error {
	switch changeType {
	case "uploaded":
		logger.Info("NOTIFICATION: New file uploaded",
			zap.String("fileID", file.ID),
			zap.String("fileName", file.FileName),
			zap.String("sensitivity", string(file.Sensitivity)))
	case "deleted":
		logger.Info("NOTIFICATION: File deleted",
			zap.String("fileID", file.ID),
			zap.String("fileName", file.FileName))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

// NotifyAlert pushes a detector alert to the admin console channel. For now
// it lands in the structured log; a message queue client can slot in here.
func (n *NotificationService) NotifyAlert(ctx context.Context, alert model.Alert) error {
	logger.Warn("NOTIFICATION: Suspicious activity alert",
		zap.String("alertID", alert.ID),
		zap.String("userID", alert.UserID),
		zap.String("severity", string(alert.Severity)),
		zap.String("reason", alert.Reason))
	return nil
}

func (n *NotificationService) NotifyGrantCreated(ctx context.Context, grant model.TemporaryAccess) error {
	logger.Info("NOTIFICATION: Temporary access granted",
		zap.String("userID", grant.UserID),
		zap.String("fileID", grant.FileID),
		zap.Time("expiresAt", grant.ExpiresAt))
	return nil
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	logger.Info("Notifying user change",
		zap.String("changeType", changeType),
		zap.String("userID", user.ID),
		zap.String("userName", user.Name))
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	return nil
}
