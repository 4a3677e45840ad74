// api/dao/user_dao.go
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

type UserDAO struct {
	Driver neo4j.Driver
}

func NewUserDAO(driver neo4j.Driver) *UserDAO {
	dao := &UserDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_user_id IF NOT EXISTS
        FOR (u:User) REQUIRE u.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (string, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		existing, err := transaction.Run(`MATCH (u:User {email: $email}) RETURN u.id`, map[string]interface{}{"email": user.Email})
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}
		if existing.Next() {
			return nil, echo_errors.ErrUserConflict
		}

		query := `
        CREATE (u:User {id: $id, email: $email})
        SET u += $props
        RETURN u.id as id
        `
		now := helper_util.FormatTime(time.Now())
		params := map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"props": map[string]interface{}{
				"name":         user.Name,
				"passwordHash": user.PasswordHash,
				"role":         string(user.Role),
				"departmentID": user.DepartmentID,
				"facultyID":    user.FacultyID,
				"studentID":    user.StudentID,
				"year":         user.Year,
				"createdAt":    now,
				"updatedAt":    now,
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

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.Duration("duration", duration))
		return "", err
	}

	userID := result.(string)
	logger.Info("User created successfully",
		zap.String("userID", userID),
		zap.Duration("duration", duration))
	return userID, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:User {id: $id})
    RETURN u
    `
	result, err := session.Run(query, map[string]interface{}{"id": userID})
	if err != nil {
		logger.Error("Failed to execute get user query",
			zap.Error(err),
			zap.String("userID", userID))
		return nil, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToUser(node)
	}

	return nil, echo_errors.ErrUserNotFound
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:User {email: $email})
    RETURN u
    `
	result, err := session.Run(query, map[string]interface{}{"email": email})
	if err != nil {
		logger.Error("Failed to execute get user by email query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToUser(node)
	}

	return nil, echo_errors.ErrUserNotFound
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	if limit <= 0 {
		limit = 100
	}

	query := `
    MATCH (u:User)
    RETURN u
    ORDER BY u.createdAt DESC
    SKIP $offset
    LIMIT $limit
    `
	result, err := session.Run(query, map[string]interface{}{"offset": offset, "limit": limit})
	if err != nil {
		logger.Error("Failed to execute list users query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var users []*model.User
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		user, err := mapNodeToUser(node)
		if err != nil {
			return nil, echo_errors.ErrInternalServer
		}
		users = append(users, user)
	}

	return users, nil
}

func (dao *UserDAO) UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	var updatedUser *model.User
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:User {id: $id})
        SET u.role = $role, u.updatedAt = $now
        RETURN u
        `
		params := map[string]interface{}{
			"id":   userID,
			"role": string(role),
			"now":  helper_util.FormatTime(time.Now()),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			updatedUser, err = mapNodeToUser(node)
			if err != nil {
				return nil, echo_errors.ErrInternalServer
			}
			return nil, nil
		}

		return nil, echo_errors.ErrUserNotFound
	})

	if err != nil {
		logger.Error("Failed to update user role",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("role", string(role)))
		return nil, err
	}

	logger.Info("User role updated",
		zap.String("userID", userID),
		zap.String("role", string(role)))
	return updatedUser, nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:User {id: $id})
        DETACH DELETE u
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": userID})
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		summary, err := result.Consume()
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if summary.Counters().NodesDeleted() == 0 {
			return nil, echo_errors.ErrUserNotFound
		}

		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err), zap.String("userID", userID))
		return err
	}

	logger.Info("User deleted successfully", zap.String("userID", userID))
	return nil
}

func (dao *UserDAO) CountUsers(ctx context.Context) (int, error) {
	return dao.countUsers(ctx, "")
}

func (dao *UserDAO) CountUsersByRole(ctx context.Context, role model.Role) (int, error) {
	return dao.countUsers(ctx, string(role))
}

func (dao *UserDAO) countUsers(ctx context.Context, role string) (int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:User)
    WHERE $role = '' OR u.role = $role
    RETURN count(u) as count
    `
	result, err := session.Run(query, map[string]interface{}{"role": role})
	if err != nil {
		return 0, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		return int(result.Record().Values[0].(int64)), nil
	}

	return 0, echo_errors.ErrDatabaseOperation
}

func mapNodeToUser(node neo4j.Node) (*model.User, error) {
	props := node.Props
	user := &model.User{}

	user.ID = props["id"].(string)
	user.Email = props["email"].(string)
	user.Name, _ = props["name"].(string)
	user.PasswordHash, _ = props["passwordHash"].(string)
	user.DepartmentID, _ = props["departmentID"].(string)
	user.FacultyID, _ = props["facultyID"].(string)
	user.StudentID, _ = props["studentID"].(string)

	role, _ := props["role"].(string)
	user.Role = model.Role(role)

	if year, ok := props["year"].(int64); ok {
		user.Year = int(year)
	}

	if createdAt, ok := props["createdAt"].(string); ok {
		user.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		user.UpdatedAt, _ = helper_util.ParseTime(updatedAt)
	}

	return user, nil
}
