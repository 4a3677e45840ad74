// api/access/detector.go
package access

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
)

// BurstReason is the fixed reason attached to every download-burst alert.
const BurstReason = "Unusual download activity detected"

// ThresholdPolicy decides whether a windowed download count is suspicious.
// It is an interface so a debounced policy can replace the fixed one
// without touching the detector's callers.
type ThresholdPolicy interface {
	Exceeded(count int) bool
}

// FixedThreshold flags any count at or above the limit. With the observed
// behavior a sustained burst alerts on every download, not just the first
// one past the line.
type FixedThreshold int

func (t FixedThreshold) Exceeded(count int) bool {
	return count >= int(t)
}

// AlertSink persists alerts emitted by the detector.
type AlertSink interface {
	CreateAlert(ctx context.Context, alert model.Alert) (string, error)
}

// Detector runs the sliding-window rate check over the activity ledger.
// There is no persisted window state: the count is recomputed from the
// ledger on every download. It runs only for DOWNLOAD events, downstream of
// a successful authorization, and never influences the decision itself.
type Detector struct {
	ledger    ledger.Service
	alerts    AlertSink
	window    time.Duration
	threshold ThresholdPolicy
}

func NewDetector(ledgerSvc ledger.Service, alerts AlertSink, window time.Duration, threshold ThresholdPolicy) *Detector {
	return &Detector{
		ledger:    ledgerSvc,
		alerts:    alerts,
		window:    window,
		threshold: threshold,
	}
}

// InspectDownload counts the subject's downloads inside the window ending at
// now and emits one HIGH alert if the threshold policy fires. The triggering
// download is expected to be recorded in the ledger before this call.
// Returns whether an alert was created.
func (d *Detector) InspectDownload(ctx context.Context, userID string, now time.Time) (bool, error) {
	since := now.Add(-d.window)
	count, err := d.ledger.CountSince(ctx, userID, model.ActionDownload, since)
	if err != nil {
		return false, err
	}

	if !d.threshold.Exceeded(count) {
		return false, nil
	}

	alert := model.Alert{
		UserID:    userID,
		Reason:    BurstReason,
		Severity:  model.SeverityHigh,
		CreatedAt: now,
	}
	if _, err := d.alerts.CreateAlert(ctx, alert); err != nil {
		return false, err
	}

	logger.Warn("Download burst alert created",
		zap.String("userID", userID),
		zap.Int("count", count),
		zap.Duration("window", d.window))
	return true, nil
}
