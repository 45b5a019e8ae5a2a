package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	recordMemory "carbontrack-api/internal/record/repository/memory"
	recordUC "carbontrack-api/internal/record/usecase"
	"carbontrack-api/internal/telemetry"
	pkgLog "carbontrack-api/pkg/log"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent int
	fail bool
}

func (f *fakeNotifier) SendEmissionAlert(_ context.Context, _ string, _ float64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp: connection refused")
	}
	f.sent++
	return nil
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func newFixture() (*implUsecase, *fakeNotifier) {
	l := testLogger()
	notifier := &fakeNotifier{}
	uc := New(l, recordUC.New(l, recordMemory.New()), notifier, nil)
	return uc, notifier
}

func TestIngest_PersistsSample(t *testing.T) {
	uc, notifier := newFixture()

	o, err := uc.Ingest(context.Background(), telemetry.IngestInput{
		UserID:         "u1",
		UserEmail:      "u1@example.com",
		CPULoad:        37.5,
		BatteryPercent: 80,
		CO2Kg:          0.0004,
	})
	require.NoError(t, err)
	require.Equal(t, "Emission logged successfully", o.Message)
	require.False(t, o.SpikeFired)
	require.Zero(t, notifier.sent)
}

func TestIngest_MissingUser(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Ingest(context.Background(), telemetry.IngestInput{CO2Kg: 0.5})
	require.ErrorIs(t, err, telemetry.ErrMissingFields)
}

func TestIngest_SpikeRefiresEveryTime(t *testing.T) {
	uc, notifier := newFixture()
	ip := telemetry.IngestInput{
		UserID:    "u1",
		UserEmail: "u1@example.com",
		CO2Kg:     1.5,
	}

	// No latch on the widget path; each sample over the limit alerts again.
	for i := 0; i < 3; i++ {
		o, err := uc.Ingest(context.Background(), ip)
		require.NoError(t, err)
		require.True(t, o.SpikeFired)
	}
	require.Equal(t, 3, notifier.sent)
}

func TestIngest_NoEmailNoAlert(t *testing.T) {
	uc, notifier := newFixture()

	o, err := uc.Ingest(context.Background(), telemetry.IngestInput{UserID: "u1", CO2Kg: 2})
	require.NoError(t, err)
	require.False(t, o.SpikeFired, "no recipient, nothing to send")
	require.Zero(t, notifier.sent)
}

func TestIngest_ClampsBadValues(t *testing.T) {
	uc, notifier := newFixture()

	o, err := uc.Ingest(context.Background(), telemetry.IngestInput{
		UserID:    "u1",
		UserEmail: "u1@example.com",
		CO2Kg:     -7,
	})
	require.NoError(t, err)
	require.Zero(t, o.CurrentEmission)
	require.False(t, o.SpikeFired)
	require.Zero(t, notifier.sent)
}

func TestIngest_NotifierFailureSwallowed(t *testing.T) {
	uc, notifier := newFixture()
	notifier.fail = true

	o, err := uc.Ingest(context.Background(), telemetry.IngestInput{
		UserID:    "u1",
		UserEmail: "u1@example.com",
		CO2Kg:     3,
	})
	require.NoError(t, err)
	require.True(t, o.SpikeFired)
}

func TestEstimatePerMinute(t *testing.T) {
	// 50% load, discharging: (25 + 22.5 + 5) W for one minute.
	want := (52.5 / 1000) * 0.475 / 60
	require.InDelta(t, want, EstimatePerMinute(50, false), 1e-12)

	// Charging drops the drain penalty.
	wantCharging := (47.5 / 1000) * 0.475 / 60
	require.InDelta(t, wantCharging, EstimatePerMinute(50, true), 1e-12)

	// Higher load always estimates more carbon.
	require.Greater(t, EstimatePerMinute(90, false), EstimatePerMinute(10, false))
}
