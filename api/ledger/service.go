// api/ledger/service.go
package ledger

import (
	"context"
	"time"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// Service is the activity ledger: the append-only evidence source for audit
// views and the download-burst detector.
type Service interface {
	// Record appends one entry. Callers invoke it after the primary effect
	// has already happened; a failure here must not be reported as a
	// failure of that effect.
	Record(ctx context.Context, entry Entry) error

	// CountSince counts a subject's entries for one action with timestamp
	// at or after since.
	CountSince(ctx context.Context, userID string, action model.Action, since time.Time) (int, error)

	// Recent returns the subject's most recent entries for the given
	// actions, newest first.
	Recent(ctx context.Context, userID string, actions []model.Action, limit int) ([]Entry, error)

	// ListSince returns all of a subject's entries for the given actions
	// with timestamp at or after since, newest first.
	ListSince(ctx context.Context, userID string, actions []model.Action, since time.Time) ([]Entry, error)

	// Query lists entries for the admin log console with filtering and
	// pagination; returns the page and the total match count.
	Query(ctx context.Context, filter QueryFilter) ([]Entry, int, error)
}

type service struct {
	repo    Repository
	timeout time.Duration
}

// NewService wraps the repository and bounds every round-trip with timeout.
// A non-positive timeout leaves calls unbounded.
func NewService(repo Repository, timeout time.Duration) Service {
	return &service{repo: repo, timeout: timeout}
}

func (s *service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Record(ctx, entry)
}

func (s *service) CountSince(ctx context.Context, userID string, action model.Action, since time.Time) (int, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.CountSince(ctx, userID, action, since)
}

func (s *service) Recent(ctx context.Context, userID string, actions []model.Action, limit int) ([]Entry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Recent(ctx, userID, actions, limit)
}

func (s *service) ListSince(ctx context.Context, userID string, actions []model.Action, since time.Time) ([]Entry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.ListSince(ctx, userID, actions, since)
}

func (s *service) Query(ctx context.Context, filter QueryFilter) ([]Entry, int, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.Query(ctx, filter)
}
