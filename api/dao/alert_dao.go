// api/dao/alert_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	helper_util "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util/helper"
)

type AlertDAO struct {
	Driver neo4j.Driver
}

func NewAlertDAO(driver neo4j.Driver) *AlertDAO {
	return &AlertDAO{Driver: driver}
}

func (dao *AlertDAO) CreateAlert(ctx context.Context, alert model.Alert) (string, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (a:Alert {id: $id})
        SET a += $props
        RETURN a.id as id
        `
		params := map[string]interface{}{
			"id": alert.ID,
			"props": map[string]interface{}{
				"userID":    alert.UserID,
				"reason":    alert.Reason,
				"severity":  string(alert.Severity),
				"reviewed":  alert.Reviewed,
				"createdAt": helper_util.FormatTime(alert.CreatedAt),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		return nil, echo_errors.ErrInternalServer
	})

	if err != nil {
		logger.Error("Failed to create alert",
			zap.Error(err),
			zap.String("userID", alert.UserID),
			zap.String("severity", string(alert.Severity)))
		return "", err
	}

	alertID := result.(string)
	logger.Info("Alert created",
		zap.String("alertID", alertID),
		zap.String("userID", alert.UserID),
		zap.String("severity", string(alert.Severity)))
	return alertID, nil
}

func (dao *AlertDAO) ListAlerts(ctx context.Context, limit, offset int) ([]*model.Alert, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	if limit <= 0 {
		limit = 100
	}

	query := `
    MATCH (a:Alert)
    RETURN a
    ORDER BY a.createdAt DESC
    SKIP $offset
    LIMIT $limit
    `
	result, err := session.Run(query, map[string]interface{}{"offset": offset, "limit": limit})
	if err != nil {
		logger.Error("Failed to execute list alerts query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var alerts []*model.Alert
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		alerts = append(alerts, mapNodeToAlert(node))
	}

	return alerts, nil
}

func (dao *AlertDAO) MarkReviewed(ctx context.Context, alertID string) (*model.Alert, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	var updated *model.Alert
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (a:Alert {id: $id})
        SET a.reviewed = true
        RETURN a
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": alertID})
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			updated = mapNodeToAlert(node)
			return nil, nil
		}

		return nil, echo_errors.ErrAlertNotFound
	})

	if err != nil {
		logger.Error("Failed to mark alert reviewed", zap.Error(err), zap.String("alertID", alertID))
		return nil, err
	}

	logger.Info("Alert marked as reviewed", zap.String("alertID", alertID))
	return updated, nil
}

func (dao *AlertDAO) DeleteAlert(ctx context.Context, alertID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (a:Alert {id: $id})
        DETACH DELETE a
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": alertID})
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		summary, err := result.Consume()
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if summary.Counters().NodesDeleted() == 0 {
			return nil, echo_errors.ErrAlertNotFound
		}

		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete alert", zap.Error(err), zap.String("alertID", alertID))
		return err
	}

	logger.Info("Alert deleted", zap.String("alertID", alertID))
	return nil
}

func mapNodeToAlert(node neo4j.Node) *model.Alert {
	props := node.Props
	alert := &model.Alert{}

	alert.ID, _ = props["id"].(string)
	alert.UserID, _ = props["userID"].(string)
	alert.Reason, _ = props["reason"].(string)
	alert.Reviewed, _ = props["reviewed"].(bool)

	severity, _ := props["severity"].(string)
	alert.Severity = model.Severity(severity)

	if createdAt, ok := props["createdAt"].(string); ok {
		alert.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}

	return alert
}
