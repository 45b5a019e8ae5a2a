package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carbontrack-api/internal/alert"
	alertMemory "carbontrack-api/internal/alert/repository/memory"
	"carbontrack-api/internal/model"
	recordRepo "carbontrack-api/internal/record/repository"
	recordMemory "carbontrack-api/internal/record/repository/memory"
	recordUC "carbontrack-api/internal/record/usecase"
	pkgLog "carbontrack-api/pkg/log"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string // severities in send order
	fail bool
}

func (f *fakeNotifier) SendEmissionAlert(_ context.Context, _ string, _ float64, severity string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, severity)
	return nil
}

func (f *fakeNotifier) count(severity string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.sent {
		if s == severity {
			n++
		}
	}
	return n
}

// recordStore is the memory record repository plus its test-only seeding.
type recordStore interface {
	recordRepo.Repository
	Seed(model.EmissionRecord) model.EmissionRecord
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func newFixture() (*implUsecase, recordStore, *fakeNotifier) {
	l := testLogger()
	records := recordMemory.New()
	notifier := &fakeNotifier{}
	auc := New(l, alertMemory.New(), recordUC.New(l, records), notifier, nil)
	return auc, records, notifier
}

func seed(records recordStore, ownerID string, co2 float64) {
	records.Seed(model.EmissionRecord{
		OwnerID:        ownerID,
		SourceCategory: model.SourceDeviceUsage,
		CO2Kg:          co2,
		CreatedAt:      time.Now().UTC(),
	})
}

func TestEvaluate_ThresholdScenario(t *testing.T) {
	ctx := context.Background()
	uc, records, notifier := newFixture()
	ip := alert.EvaluateInput{OwnerID: "u1", OwnerEmail: "u1@example.com"}

	// 9.5 kg, below everything.
	seed(records, "u1", 9.5)
	out, err := uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.False(t, out.FirstFired)
	require.False(t, out.CriticalFired)
	require.InDelta(t, 9.5, out.LifetimeTotal, 1e-9)
	require.Equal(t, model.DefaultFirstThreshold, out.FirstThreshold)
	require.Equal(t, model.DefaultCriticalThreshold, out.CriticalThreshold)

	// +1.0 kg crosses the first threshold exactly once.
	seed(records, "u1", 1.0)
	out, err = uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.True(t, out.FirstFired)
	require.False(t, out.CriticalFired)

	out, err = uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.False(t, out.FirstFired, "first threshold must not re-fire")

	// +5.0 kg crosses critical; it re-fires on every call.
	seed(records, "u1", 5.0)
	out, err = uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.False(t, out.FirstFired)
	require.True(t, out.CriticalFired)

	out, err = uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.True(t, out.CriticalFired)

	require.Equal(t, 1, notifier.count(alert.SeverityFirstThreshold))
	require.Equal(t, 2, notifier.count(alert.SeverityCritical))
}

func TestEvaluate_KillSwitch(t *testing.T) {
	ctx := context.Background()
	uc, records, notifier := newFixture()

	enabled := false
	_, err := uc.UpdateSettings(ctx, model.Scope{UserID: "admin", Role: model.RoleAdmin},
		alert.UpdateSettingsInput{Enabled: &enabled})
	require.NoError(t, err)

	seed(records, "u1", 100)
	out, err := uc.Evaluate(ctx, alert.EvaluateInput{OwnerID: "u1", OwnerEmail: "u1@example.com"})
	require.NoError(t, err)
	require.False(t, out.FirstFired)
	require.False(t, out.CriticalFired)
	require.Empty(t, notifier.sent)
}

func TestEvaluate_LatchDoesNotReset(t *testing.T) {
	ctx := context.Background()
	uc, records, _ := newFixture()
	ip := alert.EvaluateInput{OwnerID: "u1", OwnerEmail: "u1@example.com"}

	rec := records.Seed(model.EmissionRecord{
		OwnerID: "u1", SourceCategory: model.SourceDeviceUsage,
		CO2Kg: 12, CreatedAt: time.Now().UTC(),
	})

	out, err := uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.True(t, out.FirstFired)

	// Dropping back under the threshold keeps the latch set.
	require.NoError(t, records.Delete(ctx, rec.ID))
	seed(records, "u1", 11)

	out, err = uc.Evaluate(ctx, ip)
	require.NoError(t, err)
	require.False(t, out.FirstFired)
}

func TestEvaluate_NotifierFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	uc, records, notifier := newFixture()
	notifier.fail = true

	seed(records, "u1", 20)
	out, err := uc.Evaluate(ctx, alert.EvaluateInput{OwnerID: "u1", OwnerEmail: "u1@example.com"})
	require.NoError(t, err, "a failed notification must not fail the evaluation")
	require.True(t, out.FirstFired)
	require.True(t, out.CriticalFired)
}

func TestEvaluate_MissingOwner(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Evaluate(context.Background(), alert.EvaluateInput{})
	require.ErrorIs(t, err, alert.ErrMissingOwner)

	_, err = uc.Evaluate(context.Background(), alert.EvaluateInput{OwnerID: "u1"})
	require.ErrorIs(t, err, alert.ErrMissingOwner)
}

func TestEvaluate_ConcurrentFirstFiresOnce(t *testing.T) {
	ctx := context.Background()
	uc, records, notifier := newFixture()
	seed(records, "u1", 12)

	const n = 16
	var wg sync.WaitGroup
	fired := make(chan bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.Evaluate(ctx, alert.EvaluateInput{OwnerID: "u1", OwnerEmail: "u1@example.com"})
			if err == nil {
				fired <- out.FirstFired
			}
		}()
	}
	wg.Wait()
	close(fired)

	firstCount := 0
	for f := range fired {
		if f {
			firstCount++
		}
	}
	require.Equal(t, 1, firstCount, "exactly one evaluation wins the latch")
	require.Equal(t, 1, notifier.count(alert.SeverityFirstThreshold))
}
