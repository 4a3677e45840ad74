// api/dao/department_dao.go
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

type DepartmentDAO struct {
	Driver neo4j.Driver
}

func NewDepartmentDAO(driver neo4j.Driver) *DepartmentDAO {
	return &DepartmentDAO{Driver: driver}
}

// CreateDepartment is idempotent on name: an existing department with the
// same name is returned rather than duplicated.
func (dao *DepartmentDAO) CreateDepartment(ctx context.Context, department model.Department) (string, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if department.ID == "" {
		department.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (d:Department {name: $name})
        ON CREATE SET d.id = $id, d.createdAt = $createdAt
        RETURN d.id as id
        `
		params := map[string]interface{}{
			"id":        department.ID,
			"name":      department.Name,
			"createdAt": helper_util.FormatTime(time.Now()),
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
		logger.Error("Failed to create department", zap.Error(err), zap.String("name", department.Name))
		return "", err
	}

	return result.(string), nil
}

func (dao *DepartmentDAO) GetDepartmentByName(ctx context.Context, name string) (*model.Department, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (d:Department {name: $name})
    RETURN d
    `
	result, err := session.Run(query, map[string]interface{}{"name": name})
	if err != nil {
		logger.Error("Failed to execute get department query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToDepartment(node), nil
	}

	return nil, echo_errors.ErrDepartmentNotFound
}

func (dao *DepartmentDAO) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (d:Department)
    RETURN d
    ORDER BY d.name
    `
	result, err := session.Run(query, nil)
	if err != nil {
		logger.Error("Failed to execute list departments query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var departments []*model.Department
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		departments = append(departments, mapNodeToDepartment(node))
	}

	return departments, nil
}

func mapNodeToDepartment(node neo4j.Node) *model.Department {
	props := node.Props
	department := &model.Department{}

	department.ID, _ = props["id"].(string)
	department.Name, _ = props["name"].(string)
	if createdAt, ok := props["createdAt"].(string); ok {
		department.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}

	return department
}
