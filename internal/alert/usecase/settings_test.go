package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/model"
)

func TestGetSettings_CreatesDefaults(t *testing.T) {
	uc, _, _ := newFixture()

	cfg, err := uc.GetSettings(context.Background())
	require.NoError(t, err)
	require.True(t, cfg.Enabled)
	require.Equal(t, model.DefaultFirstThreshold, cfg.FirstThreshold)
	require.Equal(t, model.DefaultCriticalThreshold, cfg.CriticalThreshold)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newFixture()
	admin := model.Scope{UserID: "admin", Role: model.RoleAdmin}

	first := 12.0
	cfg, err := uc.UpdateSettings(ctx, admin, alert.UpdateSettingsInput{FirstThreshold: &first})
	require.NoError(t, err)
	require.Equal(t, 12.0, cfg.FirstThreshold)
	require.Equal(t, model.DefaultCriticalThreshold, cfg.CriticalThreshold)
	require.True(t, cfg.Enabled)
}

func TestUpdateSettings_RejectsBadThresholds(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newFixture()
	admin := model.Scope{UserID: "admin", Role: model.RoleAdmin}

	tests := []struct {
		name     string
		first    *float64
		critical *float64
		wantErr  error
	}{
		{
			name:     "critical below first",
			critical: ptr(5.0),
			wantErr:  alert.ErrThresholdOrder,
		},
		{
			name:    "zero first",
			first:   ptr(0.0),
			wantErr: alert.ErrNonPositiveThreshold,
		},
		{
			name:     "negative critical",
			critical: ptr(-3.0),
			wantErr:  alert.ErrNonPositiveThreshold,
		},
		{
			name:     "first raised above critical",
			first:    ptr(50.0),
			critical: nil,
			wantErr:  alert.ErrThresholdOrder,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpdateSettings(ctx, admin, alert.UpdateSettingsInput{
				FirstThreshold:    tc.first,
				CriticalThreshold: tc.critical,
			})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	// A rejected update leaves the config untouched.
	cfg, err := uc.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, model.DefaultFirstThreshold, cfg.FirstThreshold)
	require.Equal(t, model.DefaultCriticalThreshold, cfg.CriticalThreshold)
}

func ptr(v float64) *float64 { return &v }
