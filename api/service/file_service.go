// api/service/file_service.go
package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/metrics"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/storage"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// FileStore is the slice of the file DAO the file flows need. Satisfied by
// dao.FileDAO.
type FileStore interface {
	CreateFile(ctx context.Context, file model.AcademicFile) (string, error)
	GetFile(ctx context.Context, fileID string) (*model.AcademicFile, error)
	IncrementDownloadCount(ctx context.Context, fileID string) (int64, error)
	DeleteFile(ctx context.Context, fileID string) error
	ListFiles(ctx context.Context, criteria model.FileSearchCriteria) ([]*model.AcademicFile, error)
}

// FileCache is the slice of the entity cache the file flows need. Satisfied
// by util.CacheService.
type FileCache interface {
	SetFile(ctx context.Context, file model.AcademicFile) error
	DeleteFile(ctx context.Context, fileID string) error
}

// IFileService defines the interface for file operations
type IFileService interface {
	Upload(ctx context.Context, caller access.Caller, file model.AcademicFile, payload io.Reader, ip string) (*model.AcademicFile, error)
	ListFiles(ctx context.Context, caller access.Caller, department string, limit, offset int) ([]*model.AcademicFile, error)
	View(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, error)
	Download(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, io.ReadCloser, error)
	Delete(ctx context.Context, caller access.Caller, fileID, ip string) error
}

// FileService orchestrates the file operation flows: authorization via the
// access engine, the primary effect, then the ledger write and (for
// downloads) the burst detector. Ledger and detector failures after a
// successful primary effect are reported through telemetry, never to the
// user.
type FileService struct {
	fileDAO         FileStore
	engine          *access.Engine
	detector        *access.Detector
	ledgerSvc       ledger.Service
	blobs           storage.BlobStore
	validationUtil  *util.ValidationUtil
	cacheService    FileCache
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IFileService = &FileService{}

// NewFileService creates a new instance of FileService
func NewFileService(
	fileDAO FileStore,
	engine *access.Engine,
	detector *access.Detector,
	ledgerSvc ledger.Service,
	blobs storage.BlobStore,
	validationUtil *util.ValidationUtil,
	cacheService FileCache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *FileService {
	return &FileService{
		fileDAO:         fileDAO,
		engine:          engine,
		detector:        detector,
		ledgerSvc:       ledgerSvc,
		blobs:           blobs,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

// Upload stores the payload, persists the metadata record, and records an
// UPLOAD ledger entry. Only admins and faculty may upload; the caller
// becomes the owner.
func (s *FileService) Upload(ctx context.Context, caller access.Caller, file model.AcademicFile, payload io.Reader, ip string) (*model.AcademicFile, error) {
	if caller.Role != model.RoleAdmin && caller.Role != model.RoleFaculty {
		metrics.AccessDeniedTotal.WithLabelValues("upload").Inc()
		return nil, echo_errors.ErrAccessDenied
	}

	file.UploadedBy = caller.ID
	if err := s.validationUtil.ValidateFile(file); err != nil {
		logger.Warn("Rejected invalid upload metadata", zap.Error(err), zap.String("userID", caller.ID))
		return nil, echo_errors.ErrInvalidFileData
	}

	path, size, err := s.blobs.Save(file.FileName, payload)
	if err != nil {
		metrics.FileOperationsTotal.WithLabelValues("upload", "error").Inc()
		return nil, err
	}
	file.StoragePath = path
	file.FileSize = size

	fileID, err := s.fileDAO.CreateFile(ctx, file)
	if err != nil {
		// The metadata write failed, so the payload must not linger.
		if removeErr := s.blobs.Remove(path); removeErr != nil {
			logger.Error("Failed to clean up orphaned payload", zap.Error(removeErr), zap.String("path", path))
		}
		metrics.FileOperationsTotal.WithLabelValues("upload", "error").Inc()
		return nil, err
	}
	file.ID = fileID

	s.recordEntry(ctx, caller.ID, fileID, model.ActionUpload, ip)
	metrics.FileOperationsTotal.WithLabelValues("upload", "success").Inc()

	s.eventBus.Publish(ctx, "file.uploaded", file)
	if err := s.notificationSvc.NotifyFileChange(ctx, "uploaded", file); err != nil {
		logger.Warn("Failed to send upload notification", zap.Error(err), zap.String("fileID", fileID))
	}

	created, err := s.fileDAO.GetFile(ctx, fileID)
	if err != nil {
		return &file, nil
	}
	if err := s.cacheService.SetFile(ctx, *created); err != nil {
		logger.Warn("Failed to cache uploaded file", zap.Error(err), zap.String("fileID", fileID))
	}
	return created, nil
}

// ListFiles returns the files the caller's role may browse, scoped by the
// same sensitivity table the per-file read decision uses.
func (s *FileService) ListFiles(ctx context.Context, caller access.Caller, department string, limit, offset int) ([]*model.AcademicFile, error) {
	sensitivities, err := access.ReadableSensitivities(caller.Role)
	if err != nil {
		return nil, err
	}

	return s.fileDAO.ListFiles(ctx, model.FileSearchCriteria{
		Sensitivities: sensitivities,
		Department:    department,
		Limit:         limit,
		Offset:        offset,
	})
}

// View authorizes a read and records a VIEW entry. Views never increment
// the download counter and never run the burst detector.
func (s *FileService) View(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, error) {
	file, err := s.engine.AuthorizeRead(ctx, caller, fileID, time.Now())
	if err != nil {
		s.countDenied("view", err)
		return nil, err
	}

	s.recordEntry(ctx, caller.ID, fileID, model.ActionView, ip)
	metrics.FileOperationsTotal.WithLabelValues("view", "success").Inc()
	return file, nil
}

// Download authorizes the read, opens the payload, bumps the download
// counter atomically, records a DOWNLOAD entry, and runs the burst
// detector over the ledger. The caller owns closing the returned reader.
func (s *FileService) Download(ctx context.Context, caller access.Caller, fileID, ip string) (*model.AcademicFile, io.ReadCloser, error) {
	file, err := s.engine.AuthorizeRead(ctx, caller, fileID, time.Now())
	if err != nil {
		s.countDenied("download", err)
		return nil, nil, err
	}

	payload, err := s.blobs.Open(file.StoragePath)
	if err != nil {
		metrics.FileOperationsTotal.WithLabelValues("download", "error").Inc()
		return nil, nil, err
	}

	count, err := s.fileDAO.IncrementDownloadCount(ctx, fileID)
	if err != nil {
		payload.Close()
		metrics.FileOperationsTotal.WithLabelValues("download", "error").Inc()
		return nil, nil, err
	}
	file.DownloadCount = count

	// The download has already succeeded at this point; ledger and
	// detector problems stay server-side.
	if s.recordEntry(ctx, caller.ID, fileID, model.ActionDownload, ip) {
		s.runDetector(ctx, caller.ID)
	}

	if err := s.cacheService.DeleteFile(ctx, fileID); err != nil {
		logger.Debug("Failed to invalidate file cache", zap.Error(err), zap.String("fileID", fileID))
	}

	metrics.FileOperationsTotal.WithLabelValues("download", "success").Inc()
	return file, payload, nil
}

// Delete authorizes via the ownership rule, removes the payload and the
// metadata record, and records a DELETE entry.
func (s *FileService) Delete(ctx context.Context, caller access.Caller, fileID, ip string) error {
	file, err := s.engine.AuthorizeDelete(ctx, caller, fileID)
	if err != nil {
		s.countDenied("delete", err)
		return err
	}

	if err := s.blobs.Remove(file.StoragePath); err != nil {
		logger.Error("Failed to remove payload, keeping metadata record",
			zap.Error(err),
			zap.String("fileID", fileID))
		metrics.FileOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	if err := s.fileDAO.DeleteFile(ctx, fileID); err != nil {
		metrics.FileOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	s.recordEntry(ctx, caller.ID, fileID, model.ActionDelete, ip)

	if err := s.cacheService.DeleteFile(ctx, fileID); err != nil {
		logger.Debug("Failed to invalidate file cache", zap.Error(err), zap.String("fileID", fileID))
	}

	metrics.FileOperationsTotal.WithLabelValues("delete", "success").Inc()
	s.eventBus.Publish(ctx, "file.deleted", *file)
	if err := s.notificationSvc.NotifyFileChange(ctx, "deleted", *file); err != nil {
		logger.Warn("Failed to send delete notification", zap.Error(err), zap.String("fileID", fileID))
	}
	return nil
}

// recordEntry appends a ledger entry for an effect that already happened.
// Returns whether the write succeeded; on failure the error is logged and
// counted but never propagated to the caller.
func (s *FileService) recordEntry(ctx context.Context, userID, fileID string, action model.Action, ip string) bool {
	entry := ledger.Entry{
		Timestamp: time.Now(),
		UserID:    userID,
		FileID:    fileID,
		Action:    action,
		IPAddress: ip,
	}
	if err := s.ledgerSvc.Record(ctx, entry); err != nil {
		metrics.LedgerWriteFailuresTotal.Inc()
		logger.Error("Activity ledger write failed after primary effect",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("fileID", fileID),
			zap.String("action", string(action)))
		return false
	}
	return true
}

func (s *FileService) runDetector(ctx context.Context, userID string) {
	flagged, err := s.detector.InspectDownload(ctx, userID, time.Now())
	if err != nil {
		logger.Error("Download burst inspection failed", zap.Error(err), zap.String("userID", userID))
		return
	}
	if flagged {
		metrics.AlertsEmittedTotal.Inc()
		s.eventBus.Publish(ctx, "alert.created", userID)
		alert := model.Alert{UserID: userID, Reason: access.BurstReason, Severity: model.SeverityHigh}
		if err := s.notificationSvc.NotifyAlert(ctx, alert); err != nil {
			logger.Warn("Failed to push alert notification", zap.Error(err), zap.String("userID", userID))
		}
	}
}

func (s *FileService) countDenied(operation string, err error) {
	if err == echo_errors.ErrAccessDenied {
		metrics.AccessDeniedTotal.WithLabelValues(operation).Inc()
	}
}
