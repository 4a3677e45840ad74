// api/dao/file_dao.go
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

type FileDAO struct {
	Driver neo4j.Driver
}

func NewFileDAO(driver neo4j.Driver) *FileDAO {
	dao := &FileDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for AcademicFile", zap.Error(err))
	}
	return dao
}

func (dao *FileDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_file_id IF NOT EXISTS
        FOR (f:AcademicFile) REQUIRE f.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

func (dao *FileDAO) CreateFile(ctx context.Context, file model.AcademicFile) (string, error) {
	start := time.Now()
	logger.Info("Creating new file record", zap.String("fileName", file.FileName))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if file.ID == "" {
		file.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (f:AcademicFile {id: $id})
        SET f += $props
        RETURN f.id as id
        `
		now := helper_util.FormatTime(time.Now())
		params := map[string]interface{}{
			"id": file.ID,
			"props": map[string]interface{}{
				"fileName":      file.FileName,
				"storagePath":   file.StoragePath,
				"department":    file.Department,
				"year":          file.Year,
				"semester":      file.Semester,
				"subject":       file.Subject,
				"unit":          file.Unit,
				"category":      string(file.Category),
				"sensitivity":   string(file.Sensitivity),
				"fileSize":      file.FileSize,
				"downloadCount": int64(0),
				"uploadedBy":    file.UploadedBy,
				"createdAt":     now,
				"updatedAt":     now,
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
		logger.Error("Failed to create file record",
			zap.Error(err),
			zap.String("fileName", file.FileName),
			zap.Duration("duration", duration))
		return "", err
	}

	fileID := result.(string)
	logger.Info("File record created successfully",
		zap.String("fileID", fileID),
		zap.Duration("duration", duration))
	return fileID, nil
}

func (dao *FileDAO) GetFile(ctx context.Context, fileID string) (*model.AcademicFile, error) {
	start := time.Now()

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile {id: $id})
    RETURN f
    `
	result, err := session.Run(query, map[string]interface{}{"id": fileID})
	if err != nil {
		logger.Error("Failed to execute get file query",
			zap.Error(err),
			zap.String("fileID", fileID),
			zap.Duration("duration", time.Since(start)))
		return nil, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		file, err := mapNodeToFile(node)
		if err != nil {
			logger.Error("Failed to map file node to struct",
				zap.Error(err),
				zap.String("fileID", fileID))
			return nil, echo_errors.ErrInternalServer
		}
		return file, nil
	}

	logger.Warn("File not found",
		zap.String("fileID", fileID),
		zap.Duration("duration", time.Since(start)))
	return nil, echo_errors.ErrFileNotFound
}

// IncrementDownloadCount bumps the counter by one in a single Cypher
// statement so concurrent downloads never lose an update. Returns the new
// counter value.
func (dao *FileDAO) IncrementDownloadCount(ctx context.Context, fileID string) (int64, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (f:AcademicFile {id: $id})
        SET f.downloadCount = coalesce(f.downloadCount, 0) + 1,
            f.updatedAt = $now
        RETURN f.downloadCount as downloadCount
        `
		params := map[string]interface{}{
			"id":  fileID,
			"now": helper_util.FormatTime(time.Now()),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		return nil, echo_errors.ErrFileNotFound
	})

	if err != nil {
		logger.Error("Failed to increment download count",
			zap.Error(err),
			zap.String("fileID", fileID))
		return 0, err
	}

	return result.(int64), nil
}

func (dao *FileDAO) DeleteFile(ctx context.Context, fileID string) error {
	start := time.Now()
	logger.Info("Deleting file record", zap.String("fileID", fileID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (f:AcademicFile {id: $id})
        DETACH DELETE f
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": fileID})
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		summary, err := result.Consume()
		if err != nil {
			return nil, echo_errors.ErrDatabaseOperation
		}

		if summary.Counters().NodesDeleted() == 0 {
			return nil, echo_errors.ErrFileNotFound
		}

		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete file record",
			zap.Error(err),
			zap.String("fileID", fileID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("File record deleted successfully",
		zap.String("fileID", fileID),
		zap.Duration("duration", duration))
	return nil
}

func (dao *FileDAO) ListFiles(ctx context.Context, criteria model.FileSearchCriteria) ([]*model.AcademicFile, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile)
    WHERE ($sensitivities = [] OR f.sensitivity IN $sensitivities)
      AND ($department = '' OR f.department = $department)
      AND ($uploadedBy = '' OR f.uploadedBy = $uploadedBy)
    RETURN f
    ORDER BY f.createdAt DESC
    SKIP $offset
    LIMIT $limit
    `
	sensitivities := make([]interface{}, len(criteria.Sensitivities))
	for i, s := range criteria.Sensitivities {
		sensitivities[i] = string(s)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	params := map[string]interface{}{
		"sensitivities": sensitivities,
		"department":    criteria.Department,
		"uploadedBy":    criteria.UploadedBy,
		"offset":        criteria.Offset,
		"limit":         limit,
	}

	result, err := session.Run(query, params)
	if err != nil {
		logger.Error("Failed to execute list files query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var files []*model.AcademicFile
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		file, err := mapNodeToFile(node)
		if err != nil {
			return nil, echo_errors.ErrInternalServer
		}
		files = append(files, file)
	}

	return files, nil
}

func (dao *FileDAO) TopDownloaded(ctx context.Context, limit int) ([]*model.AcademicFile, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile)
    RETURN f
    ORDER BY f.downloadCount DESC
    LIMIT $limit
    `
	result, err := session.Run(query, map[string]interface{}{"limit": limit})
	if err != nil {
		logger.Error("Failed to execute top downloaded query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	var files []*model.AcademicFile
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		file, err := mapNodeToFile(node)
		if err != nil {
			return nil, echo_errors.ErrInternalServer
		}
		files = append(files, file)
	}

	return files, nil
}

func (dao *FileDAO) CountFiles(ctx context.Context) (int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.Run(`MATCH (f:AcademicFile) RETURN count(f) as count`, nil)
	if err != nil {
		return 0, echo_errors.ErrDatabaseOperation
	}

	if result.Next() {
		return int(result.Record().Values[0].(int64)), nil
	}

	return 0, echo_errors.ErrDatabaseOperation
}

// CategoryDistribution groups file counts by category. When uploadedBy is
// non-empty the distribution covers only that uploader's files.
func (dao *FileDAO) CategoryDistribution(ctx context.Context, uploadedBy string) (map[string]int, error) {
	return dao.groupedCount(ctx, "f.category", uploadedBy)
}

// DepartmentDistribution groups file counts by department.
func (dao *FileDAO) DepartmentDistribution(ctx context.Context, uploadedBy string) (map[string]int, error) {
	return dao.groupedCount(ctx, "f.department", uploadedBy)
}

func (dao *FileDAO) groupedCount(ctx context.Context, field, uploadedBy string) (map[string]int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile)
    WHERE $uploadedBy = '' OR f.uploadedBy = $uploadedBy
    RETURN ` + field + ` as key, count(f) as count
    ORDER BY count DESC
    `
	result, err := session.Run(query, map[string]interface{}{"uploadedBy": uploadedBy})
	if err != nil {
		logger.Error("Failed to execute grouped count query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	counts := make(map[string]int)
	for result.Next() {
		record := result.Record()
		key, _ := record.Values[0].(string)
		counts[key] = int(record.Values[1].(int64))
	}

	return counts, nil
}

// CategoriesByIDs resolves file IDs to their category in one round-trip.
// IDs with no matching file are simply absent from the result.
func (dao *FileDAO) CategoriesByIDs(ctx context.Context, fileIDs []string) (map[string]string, error) {
	if len(fileIDs) == 0 {
		return map[string]string{}, nil
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile)
    WHERE f.id IN $fileIDs
    RETURN f.id as id, f.category as category
    `
	result, err := session.Run(query, map[string]interface{}{"fileIDs": fileIDs})
	if err != nil {
		logger.Error("Failed to execute categories by ids query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	categories := make(map[string]string)
	for result.Next() {
		record := result.Record()
		id, _ := record.Values[0].(string)
		category, _ := record.Values[1].(string)
		categories[id] = category
	}

	return categories, nil
}

// MonthlyUploads groups upload counts by calendar month (1-12). Creation
// timestamps are stored as RFC3339 strings, so the month is the substring
// at offset 5.
func (dao *FileDAO) MonthlyUploads(ctx context.Context, uploadedBy string) (map[int]int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile)
    WHERE $uploadedBy = '' OR f.uploadedBy = $uploadedBy
    RETURN toInteger(substring(f.createdAt, 5, 2)) as month, count(f) as count
    ORDER BY month
    `
	result, err := session.Run(query, map[string]interface{}{"uploadedBy": uploadedBy})
	if err != nil {
		logger.Error("Failed to execute monthly uploads query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	counts := make(map[int]int)
	for result.Next() {
		record := result.Record()
		counts[int(record.Values[0].(int64))] = int(record.Values[1].(int64))
	}

	return counts, nil
}

// UploaderStats aggregates one uploader's files for the faculty dashboard.
type UploaderStats struct {
	TotalFiles     int   `json:"total_files"`
	TotalDownloads int64 `json:"total_downloads"`
	PublicFiles    int   `json:"public_files"`
	InternalFiles  int   `json:"internal_files"`
}

func (dao *FileDAO) StatsByUploader(ctx context.Context, uploadedBy string) (*UploaderStats, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (f:AcademicFile {uploadedBy: $uploadedBy})
    RETURN count(f) as totalFiles,
           sum(coalesce(f.downloadCount, 0)) as totalDownloads,
           sum(CASE WHEN f.sensitivity = 'PUBLIC' THEN 1 ELSE 0 END) as publicFiles,
           sum(CASE WHEN f.sensitivity = 'INTERNAL' THEN 1 ELSE 0 END) as internalFiles
    `
	result, err := session.Run(query, map[string]interface{}{"uploadedBy": uploadedBy})
	if err != nil {
		logger.Error("Failed to execute uploader stats query", zap.Error(err))
		return nil, echo_errors.ErrDatabaseOperation
	}

	stats := &UploaderStats{}
	if result.Next() {
		record := result.Record()
		stats.TotalFiles = int(record.Values[0].(int64))
		stats.TotalDownloads = record.Values[1].(int64)
		stats.PublicFiles = int(record.Values[2].(int64))
		stats.InternalFiles = int(record.Values[3].(int64))
	}

	return stats, nil
}

func mapNodeToFile(node neo4j.Node) (*model.AcademicFile, error) {
	props := node.Props
	file := &model.AcademicFile{}

	file.ID = props["id"].(string)
	file.FileName = props["fileName"].(string)
	file.StoragePath, _ = props["storagePath"].(string)
	file.Department, _ = props["department"].(string)
	file.Subject, _ = props["subject"].(string)
	file.Unit, _ = props["unit"].(string)
	file.UploadedBy = props["uploadedBy"].(string)

	if year, ok := props["year"].(int64); ok {
		file.Year = int(year)
	}
	if semester, ok := props["semester"].(int64); ok {
		file.Semester = int(semester)
	}
	if size, ok := props["fileSize"].(int64); ok {
		file.FileSize = size
	}
	if count, ok := props["downloadCount"].(int64); ok {
		file.DownloadCount = count
	}

	category, _ := props["category"].(string)
	file.Category = model.Category(category)
	sensitivity, _ := props["sensitivity"].(string)
	file.Sensitivity = model.Sensitivity(sensitivity)

	if createdAt, ok := props["createdAt"].(string); ok {
		file.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		file.UpdatedAt, _ = helper_util.ParseTime(updatedAt)
	}

	return file, nil
}
