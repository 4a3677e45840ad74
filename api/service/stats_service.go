// api/service/stats_service.go
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// IStatsService defines the interface for dashboard aggregation
type IStatsService interface {
	AdminDashboard(ctx context.Context) (*AdminDashboard, error)
	FacultyDashboard(ctx context.Context, facultyID string) (*FacultyDashboard, error)
	StudentDashboard(ctx context.Context, studentID string) (*StudentDashboard, error)
	ActivityLog(ctx context.Context, filter ledger.QueryFilter) ([]ledger.Entry, int, error)
}

// UserStatsStore is the slice of the user DAO the dashboards need. Satisfied
// by dao.UserDAO.
type UserStatsStore interface {
	CountUsers(ctx context.Context) (int, error)
	CountUsersByRole(ctx context.Context, role model.Role) (int, error)
}

// FileStatsStore is the slice of the file DAO the dashboards need. Satisfied
// by dao.FileDAO.
type FileStatsStore interface {
	CountFiles(ctx context.Context) (int, error)
	TopDownloaded(ctx context.Context, limit int) ([]*model.AcademicFile, error)
	CategoryDistribution(ctx context.Context, uploadedBy string) (map[string]int, error)
	DepartmentDistribution(ctx context.Context, uploadedBy string) (map[string]int, error)
	MonthlyUploads(ctx context.Context, uploadedBy string) (map[int]int, error)
	StatsByUploader(ctx context.Context, uploadedBy string) (*dao.UploaderStats, error)
	ListFiles(ctx context.Context, criteria model.FileSearchCriteria) ([]*model.AcademicFile, error)
	CategoriesByIDs(ctx context.Context, fileIDs []string) (map[string]string, error)
}

// AdminDashboard is the portal-wide aggregate view.
type AdminDashboard struct {
	TotalUsers             int                   `json:"total_users"`
	UsersByRole            map[string]int        `json:"users_by_role"`
	TotalFiles             int                   `json:"total_files"`
	TopDownloaded          []*model.AcademicFile `json:"top_downloaded"`
	CategoryDistribution   map[string]int        `json:"category_distribution"`
	DepartmentDistribution map[string]int        `json:"department_distribution"`
	MonthlyUploads         map[int]int           `json:"monthly_uploads"`
	Alerts                 *model.AlertSummary   `json:"alerts"`
	RecentActivity         []ledger.Entry        `json:"recent_activity"`
}

// FacultyDashboard aggregates one faculty member's uploads.
type FacultyDashboard struct {
	Stats                *dao.UploaderStats    `json:"stats"`
	CategoryDistribution map[string]int        `json:"category_distribution"`
	MonthlyUploads       map[int]int           `json:"monthly_uploads"`
	RecentUploads        []*model.AcademicFile `json:"recent_uploads"`
}

// StudentDashboard summarizes a student's own recent activity.
type StudentDashboard struct {
	RecentActivity    []ledger.Entry `json:"recent_activity"`
	ViewCount         int            `json:"view_count"`
	DownloadCount     int            `json:"download_count"`
	DownloadsThisWeek int            `json:"downloads_this_week"`
	UniqueFiles       int            `json:"unique_files"`
	TopCategory       string         `json:"top_category"`
	DailyActivity     map[string]int `json:"daily_activity"`
}

// StatsService builds the dashboard aggregates from the entity store and
// the activity ledger.
type StatsService struct {
	userDAO   UserStatsStore
	fileDAO   FileStatsStore
	alertSvc  IAlertService
	ledgerSvc ledger.Service
}

var _ IStatsService = &StatsService{}

func NewStatsService(userDAO UserStatsStore, fileDAO FileStatsStore, alertSvc IAlertService, ledgerSvc ledger.Service) *StatsService {
	return &StatsService{
		userDAO:   userDAO,
		fileDAO:   fileDAO,
		alertSvc:  alertSvc,
		ledgerSvc: ledgerSvc,
	}
}

// AdminDashboard fans the independent aggregate queries out in parallel and
// fails as a whole if any of them fails. Each goroutine writes its own
// field or slot; the role map is only assembled after Wait.
func (s *StatsService) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	dashboard := &AdminDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.userDAO.CountUsers(gctx)
		dashboard.TotalUsers = total
		return err
	})
	roles := []model.Role{model.RoleAdmin, model.RoleFaculty, model.RoleStudent}
	roleCounts := make([]int, len(roles))
	for i, role := range roles {
		i, role := i, role
		g.Go(func() error {
			count, err := s.userDAO.CountUsersByRole(gctx, role)
			if err != nil {
				return err
			}
			roleCounts[i] = count
			return nil
		})
	}
	g.Go(func() error {
		total, err := s.fileDAO.CountFiles(gctx)
		dashboard.TotalFiles = total
		return err
	})
	g.Go(func() error {
		top, err := s.fileDAO.TopDownloaded(gctx, 5)
		dashboard.TopDownloaded = top
		return err
	})
	g.Go(func() error {
		dist, err := s.fileDAO.CategoryDistribution(gctx, "")
		dashboard.CategoryDistribution = dist
		return err
	})
	g.Go(func() error {
		dist, err := s.fileDAO.DepartmentDistribution(gctx, "")
		dashboard.DepartmentDistribution = dist
		return err
	})
	g.Go(func() error {
		monthly, err := s.fileDAO.MonthlyUploads(gctx, "")
		dashboard.MonthlyUploads = monthly
		return err
	})
	g.Go(func() error {
		summary, err := s.alertSvc.Summary(gctx)
		dashboard.Alerts = summary
		return err
	})
	g.Go(func() error {
		entries, _, err := s.ledgerSvc.Query(gctx, ledger.QueryFilter{Limit: 20})
		dashboard.RecentActivity = entries
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.UsersByRole = make(map[string]int, len(roles))
	for i, role := range roles {
		dashboard.UsersByRole[string(role)] = roleCounts[i]
	}
	return dashboard, nil
}

func (s *StatsService) FacultyDashboard(ctx context.Context, facultyID string) (*FacultyDashboard, error) {
	dashboard := &FacultyDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.fileDAO.StatsByUploader(gctx, facultyID)
		dashboard.Stats = stats
		return err
	})
	g.Go(func() error {
		dist, err := s.fileDAO.CategoryDistribution(gctx, facultyID)
		dashboard.CategoryDistribution = dist
		return err
	})
	g.Go(func() error {
		monthly, err := s.fileDAO.MonthlyUploads(gctx, facultyID)
		dashboard.MonthlyUploads = monthly
		return err
	})
	g.Go(func() error {
		files, err := s.fileDAO.ListFiles(gctx, model.FileSearchCriteria{UploadedBy: facultyID, Limit: 10})
		dashboard.RecentUploads = files
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// StudentDashboard folds the student's own ledger entries for the last 30
// days into view/download counts, a per-day activity grid and the number of
// distinct files touched.
func (s *StatsService) StudentDashboard(ctx context.Context, studentID string) (*StudentDashboard, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -30)
	weekAgo := now.AddDate(0, 0, -7)
	actions := []model.Action{model.ActionView, model.ActionDownload}

	entries, err := s.ledgerSvc.ListSince(ctx, studentID, actions, since)
	if err != nil {
		return nil, err
	}

	dashboard := &StudentDashboard{DailyActivity: make(map[string]int)}
	files := make(map[string]struct{})
	for _, entry := range entries {
		switch entry.Action {
		case model.ActionView:
			dashboard.ViewCount++
		case model.ActionDownload:
			dashboard.DownloadCount++
			if entry.Timestamp.After(weekAgo) {
				dashboard.DownloadsThisWeek++
			}
		}
		files[entry.FileID] = struct{}{}
		dashboard.DailyActivity[entry.Timestamp.Format("2006-01-02")]++
	}
	dashboard.UniqueFiles = len(files)
	dashboard.TopCategory = s.topCategory(ctx, files)

	if len(entries) > 20 {
		entries = entries[:20]
	}
	dashboard.RecentActivity = entries
	return dashboard, nil
}

// topCategory resolves the touched files to their category and picks the
// most frequent one. A resolution failure degrades to an empty category
// rather than failing the dashboard.
func (s *StatsService) topCategory(ctx context.Context, files map[string]struct{}) string {
	if len(files) == 0 {
		return ""
	}

	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}

	categories, err := s.fileDAO.CategoriesByIDs(ctx, ids)
	if err != nil {
		return ""
	}

	counts := make(map[string]int)
	top, best := "", 0
	for _, category := range categories {
		counts[category]++
		if counts[category] > best {
			top, best = category, counts[category]
		}
	}
	return top
}

func (s *StatsService) ActivityLog(ctx context.Context, filter ledger.QueryFilter) ([]ledger.Entry, int, error) {
	return s.ledgerSvc.Query(ctx, filter)
}
