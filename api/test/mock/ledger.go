// test/mock/ledger.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// MockLedgerService is a mock implementation of ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Record(ctx context.Context, entry ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerService) CountSince(ctx context.Context, userID string, action model.Action, since time.Time) (int, error) {
	args := m.Called(ctx, userID, action, since)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) Recent(ctx context.Context, userID string, actions []model.Action, limit int) ([]ledger.Entry, error) {
	args := m.Called(ctx, userID, actions, limit)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockLedgerService) ListSince(ctx context.Context, userID string, actions []model.Action, since time.Time) ([]ledger.Entry, error) {
	args := m.Called(ctx, userID, actions, since)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockLedgerService) Query(ctx context.Context, filter ledger.QueryFilter) ([]ledger.Entry, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Entry), args.Int(1), args.Error(2)
}
