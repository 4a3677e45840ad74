// api/service/alert_service.go
package service

import (
	"context"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// IAlertService defines the interface for alert operations
type IAlertService interface {
	ListAlerts(ctx context.Context, limit, offset int) ([]*model.Alert, error)
	Summary(ctx context.Context) (*model.AlertSummary, error)
	MarkReviewed(ctx context.Context, alertID string) (*model.Alert, error)
	DeleteAlert(ctx context.Context, alertID string) error
}

type AlertService struct {
	alertDAO *dao.AlertDAO
}

var _ IAlertService = &AlertService{}

func NewAlertService(alertDAO *dao.AlertDAO) *AlertService {
	return &AlertService{alertDAO: alertDAO}
}

func (s *AlertService) ListAlerts(ctx context.Context, limit, offset int) ([]*model.Alert, error) {
	return s.alertDAO.ListAlerts(ctx, limit, offset)
}

// Summary aggregates alert counts by severity plus the number of distinct
// flagged users. Alert volume stays small enough to fold in memory.
func (s *AlertService) Summary(ctx context.Context) (*model.AlertSummary, error) {
	alerts, err := s.alertDAO.ListAlerts(ctx, 10000, 0)
	if err != nil {
		return nil, err
	}

	summary := &model.AlertSummary{}
	seen := make(map[string]struct{})
	for _, alert := range alerts {
		switch alert.Severity {
		case model.SeverityHigh:
			summary.High++
		case model.SeverityMedium:
			summary.Medium++
		case model.SeverityLow:
			summary.Low++
		}
		seen[alert.UserID] = struct{}{}
	}
	summary.UniqueUsers = len(seen)
	return summary, nil
}

func (s *AlertService) MarkReviewed(ctx context.Context, alertID string) (*model.Alert, error) {
	return s.alertDAO.MarkReviewed(ctx, alertID)
}

func (s *AlertService) DeleteAlert(ctx context.Context, alertID string) error {
	return s.alertDAO.DeleteAlert(ctx, alertID)
}
