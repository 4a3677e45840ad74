// api/access/detector_test.go
package access_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/test/mock"
)

const detectorWindow = 2 * time.Minute

func newDetector(ledgerSvc *mock.MockLedgerService, alerts *mock.MockAlertSink) *access.Detector {
	return access.NewDetector(ledgerSvc, alerts, detectorWindow, access.FixedThreshold(5))
}

func TestInspectDownload_BelowThreshold(t *testing.T) {
	ledgerSvc := new(mock.MockLedgerService)
	alerts := new(mock.MockAlertSink)
	detector := newDetector(ledgerSvc, alerts)

	now := time.Now()
	ledgerSvc.On("CountSince", testify_mock.Anything, "stu-1", model.ActionDownload, now.Add(-detectorWindow)).Return(4, nil)

	flagged, err := detector.InspectDownload(context.Background(), "stu-1", now)
	assert.NoError(t, err)
	assert.False(t, flagged)
	alerts.AssertNotCalled(t, "CreateAlert", testify_mock.Anything, testify_mock.Anything)
}

func TestInspectDownload_AtThreshold(t *testing.T) {
	ledgerSvc := new(mock.MockLedgerService)
	alerts := new(mock.MockAlertSink)
	detector := newDetector(ledgerSvc, alerts)

	now := time.Now()
	ledgerSvc.On("CountSince", testify_mock.Anything, "stu-1", model.ActionDownload, now.Add(-detectorWindow)).Return(5, nil)
	alerts.On("CreateAlert", testify_mock.Anything, testify_mock.MatchedBy(func(alert model.Alert) bool {
		return alert.UserID == "stu-1" &&
			alert.Severity == model.SeverityHigh &&
			alert.Reason == access.BurstReason &&
			!alert.Reviewed
	})).Return("alert-1", nil)

	flagged, err := detector.InspectDownload(context.Background(), "stu-1", now)
	assert.NoError(t, err)
	assert.True(t, flagged)
	alerts.AssertExpectations(t)
}

// The detector does not debounce: a sustained burst alerts on the 5th
// download and again on the 6th.
func TestInspectDownload_SustainedBurstAlertsAgain(t *testing.T) {
	ledgerSvc := new(mock.MockLedgerService)
	alerts := new(mock.MockAlertSink)
	detector := newDetector(ledgerSvc, alerts)

	now := time.Now()
	ledgerSvc.On("CountSince", testify_mock.Anything, "stu-1", model.ActionDownload, testify_mock.Anything).Return(5, nil).Once()
	ledgerSvc.On("CountSince", testify_mock.Anything, "stu-1", model.ActionDownload, testify_mock.Anything).Return(6, nil).Once()
	alerts.On("CreateAlert", testify_mock.Anything, testify_mock.Anything).Return("alert-1", nil).Twice()

	flagged, err := detector.InspectDownload(context.Background(), "stu-1", now)
	assert.NoError(t, err)
	assert.True(t, flagged)

	flagged, err = detector.InspectDownload(context.Background(), "stu-1", now.Add(10*time.Second))
	assert.NoError(t, err)
	assert.True(t, flagged)

	alerts.AssertNumberOfCalls(t, "CreateAlert", 2)
}

func TestInspectDownload_LedgerFailure(t *testing.T) {
	ledgerSvc := new(mock.MockLedgerService)
	alerts := new(mock.MockAlertSink)
	detector := newDetector(ledgerSvc, alerts)

	ledgerSvc.On("CountSince", testify_mock.Anything, "stu-1", model.ActionDownload, testify_mock.Anything).Return(0, assert.AnError)

	flagged, err := detector.InspectDownload(context.Background(), "stu-1", time.Now())
	assert.Error(t, err)
	assert.False(t, flagged)
	alerts.AssertNotCalled(t, "CreateAlert", testify_mock.Anything, testify_mock.Anything)
}

func TestFixedThreshold(t *testing.T) {
	threshold := access.FixedThreshold(5)
	assert.False(t, threshold.Exceeded(4))
	assert.True(t, threshold.Exceeded(5))
	assert.True(t, threshold.Exceeded(6))
}
