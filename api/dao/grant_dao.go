// api/dao/grant_dao.go
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

// GrantDAO persists temporary access grants as HAS_GRANT relationships
// between users and files. Grants are create-only; expired relationships are
// left in place and filtered out by time comparison at query time.
type GrantDAO struct {
	Driver neo4j.Driver
}

func NewGrantDAO(driver neo4j.Driver) *GrantDAO {
	return &GrantDAO{Driver: driver}
}

func (dao *GrantDAO) CreateGrant(ctx context.Context, grant model.TemporaryAccess) (string, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if grant.ID == "" {
		grant.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:User {id: $userID})
        MATCH (f:AcademicFile {id: $fileID})
        CREATE (u)-[g:HAS_GRANT {id: $id, expiresAt: $expiresAt, grantedBy: $grantedBy, createdAt: $createdAt}]->(f)
        RETURN g.id as id
        `
		params := map[string]interface{}{
			"id":        grant.ID,
			"userID":    grant.UserID,
			"fileID":    grant.FileID,
			"expiresAt": helper_util.FormatTime(grant.ExpiresAt),
			"grantedBy": grant.GrantedBy,
			"createdAt": helper_util.FormatTime(time.Now()),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		// MATCH found no user or no file, so nothing was created.
		return nil, echo_errors.ErrFileNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create grant",
			zap.Error(err),
			zap.String("userID", grant.UserID),
			zap.String("fileID", grant.FileID),
			zap.Duration("duration", duration))
		return "", err
	}

	grantID := result.(string)
	logger.Info("Temporary access granted",
		zap.String("grantID", grantID),
		zap.String("userID", grant.UserID),
		zap.String("fileID", grant.FileID),
		zap.Time("expiresAt", grant.ExpiresAt),
		zap.Duration("duration", duration))
	return grantID, nil
}

// HasActiveGrant reports whether at least one grant for the pair expires
// strictly after now. Always hits the store; results must not be cached.
func (dao *GrantDAO) HasActiveGrant(ctx context.Context, userID, fileID string, now time.Time) (bool, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:User {id: $userID})-[g:HAS_GRANT]->(f:AcademicFile {id: $fileID})
    WHERE g.expiresAt > $now
    RETURN count(g) > 0 as active
    `
	params := map[string]interface{}{
		"userID": userID,
		"fileID": fileID,
		"now":    helper_util.FormatTime(now),
	}

	result, err := session.Run(query, params)
	if err != nil {
		logger.Error("Failed to execute active grant query",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("fileID", fileID))
		return false, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		return result.Record().Values[0].(bool), nil
	}

	return false, nil
}

func (dao *GrantDAO) ListGrantsForUser(ctx context.Context, userID string) ([]*model.TemporaryAccess, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:User {id: $userID})-[g:HAS_GRANT]->(f:AcademicFile)
    RETURN g, f.id as fileID, u.id as userID
    ORDER BY g.createdAt DESC
    `
	result, err := session.Run(query, map[string]interface{}{"userID": userID})
	if err != nil {
		logger.Error("Failed to execute list grants query", zap.Error(err), zap.String("userID", userID))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var grants []*model.TemporaryAccess
	for result.Next() {
		record := result.Record()
		rel := record.Values[0].(neo4j.Relationship)
		grant := mapRelationshipToGrant(rel)
		grant.FileID = record.Values[1].(string)
		grant.UserID = record.Values[2].(string)
		grants = append(grants, grant)
	}

	return grants, nil
}

func mapRelationshipToGrant(rel neo4j.Relationship) *model.TemporaryAccess {
	props := rel.Props
	grant := &model.TemporaryAccess{}

	grant.ID, _ = props["id"].(string)
	grant.GrantedBy, _ = props["grantedBy"].(string)

	if expiresAt, ok := props["expiresAt"].(string); ok {
		grant.ExpiresAt, _ = helper_util.ParseTime(expiresAt)
	}
	if createdAt, ok := props["createdAt"].(string); ok {
		grant.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}

	return grant
}
