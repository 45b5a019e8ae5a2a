package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/prediction"
	recordMemory "carbontrack-api/internal/record/repository/memory"
	recordUC "carbontrack-api/internal/record/usecase"
	pkgLog "carbontrack-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func newFixture() (*implUsecase, interface {
	Seed(model.EmissionRecord) model.EmissionRecord
}) {
	l := testLogger()
	repo := recordMemory.New()
	return New(l, recordUC.New(l, repo)), repo
}

func TestForecast_WeekOfSteadyEmissions(t *testing.T) {
	uc, repo := newFixture()

	// 2.0 kg on each of the last 7 days.
	now := time.Now().UTC()
	for i := 0; i < 7; i++ {
		repo.Seed(model.EmissionRecord{
			OwnerID:        "u1",
			SourceCategory: model.SourceDeviceUsage,
			CO2Kg:          2.0,
			CreatedAt:      now.Add(-time.Duration(i*24) * time.Hour).Add(time.Minute),
		})
	}

	o, err := uc.Forecast(context.Background(), "u1")
	require.NoError(t, err)
	require.InDelta(t, 2.0, o.DailyAvg, 1e-9)
	require.InDelta(t, 2.0, o.Tomorrow, 1e-9)
	require.InDelta(t, 14.0, o.Next7Days, 1e-9)
	require.InDelta(t, 14.0, o.TotalOverall, 1e-9)
	// (20-14)/2 = 3 days, (30-14)/2 = 8 days.
	require.InDelta(t, 3.0, o.DaysTo20Kg, 1e-9)
	require.InDelta(t, 8.0, o.DaysTo30Kg, 1e-9)
}

func TestForecast_ZeroRateIsUnreachable(t *testing.T) {
	uc, _ := newFixture()

	o, err := uc.Forecast(context.Background(), "idle-user")
	require.NoError(t, err)
	require.True(t, math.IsInf(o.DaysTo20Kg, 1), "zero daily average must yield +Inf, not a division error")
	require.True(t, math.IsInf(o.DaysTo30Kg, 1))
}

func TestForecast_ThresholdAlreadyPassed(t *testing.T) {
	uc, repo := newFixture()

	repo.Seed(model.EmissionRecord{
		OwnerID:        "u1",
		SourceCategory: model.SourceDeviceUsage,
		CO2Kg:          28.0,
		CreatedAt:      time.Now().UTC(),
	})

	o, err := uc.Forecast(context.Background(), "u1")
	require.NoError(t, err)
	// Negative days surface as-is; the client reads non-positive as
	// "already reached".
	require.Less(t, o.DaysTo20Kg, 0.0)
	require.Greater(t, o.DaysTo30Kg, 0.0)
}

func TestForecast_MissingOwner(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Forecast(context.Background(), "")
	require.ErrorIs(t, err, prediction.ErrMissingOwner)
}

func TestTrend(t *testing.T) {
	base := time.Now().UTC().Add(-10 * 24 * time.Hour)

	tests := []struct {
		name          string
		values        []float64
		wantPredicted *float64
		wantDirection string
		wantAdvisory  string
	}{
		{
			name:          "insufficient data",
			values:        []float64{5},
			wantPredicted: nil,
			wantDirection: prediction.TrendStable,
			wantAdvisory:  prediction.AdvisoryInsufficientData,
		},
		{
			// deltas 3, 3 -> avg 3 > 2; next = 11 + 3
			name:          "increasing",
			values:        []float64{5, 8, 11},
			wantPredicted: ptr(14.0),
			wantDirection: prediction.TrendIncreasing,
			wantAdvisory:  prediction.AdvisoryIncreasing,
		},
		{
			// deltas -2, -2 -> avg -2 < -1; next = 6 - 2
			name:          "decreasing",
			values:        []float64{10, 8, 6},
			wantPredicted: ptr(4.0),
			wantDirection: prediction.TrendDecreasing,
			wantAdvisory:  prediction.AdvisoryDecreasing,
		},
		{
			// deltas 1, -1 -> avg 0; next = 5
			name:          "stable",
			values:        []float64{5, 6, 5},
			wantPredicted: ptr(5.0),
			wantDirection: prediction.TrendStable,
			wantAdvisory:  prediction.AdvisoryStable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newFixture()
			for i, v := range tc.values {
				repo.Seed(model.EmissionRecord{
					OwnerID:        "u1",
					SourceCategory: model.SourceDeviceUsage,
					CO2Kg:          v,
					CreatedAt:      base.Add(time.Duration(i) * 24 * time.Hour),
				})
			}

			o, err := uc.Trend(context.Background(), "u1")
			require.NoError(t, err)
			require.Equal(t, tc.wantDirection, o.Direction)
			require.Equal(t, tc.wantAdvisory, o.Advisory)
			if tc.wantPredicted == nil {
				require.Nil(t, o.Predicted)
			} else {
				require.NotNil(t, o.Predicted)
				require.InDelta(t, *tc.wantPredicted, *o.Predicted, 1e-9)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
