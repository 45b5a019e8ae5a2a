package usecase

import (
	"context"

	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/alert/repository"
	"carbontrack-api/internal/model"
)

func (uc *implUsecase) GetSettings(ctx context.Context) (model.ThresholdConfig, error) {
	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.GetSettings.repo.GetConfig: %v", err)
		return model.ThresholdConfig{}, err
	}

	return cfg, nil
}

func (uc *implUsecase) UpdateSettings(ctx context.Context, sc model.Scope, ip alert.UpdateSettingsInput) (model.ThresholdConfig, error) {
	cur, err := uc.repo.GetConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.UpdateSettings.repo.GetConfig: %v", err)
		return model.ThresholdConfig{}, err
	}

	// Validate the thresholds as they would be after the partial update.
	first := cur.FirstThreshold
	if ip.FirstThreshold != nil {
		first = *ip.FirstThreshold
	}
	critical := cur.CriticalThreshold
	if ip.CriticalThreshold != nil {
		critical = *ip.CriticalThreshold
	}

	if first <= 0 || critical <= 0 {
		return model.ThresholdConfig{}, alert.ErrNonPositiveThreshold
	}
	if critical < first {
		return model.ThresholdConfig{}, alert.ErrThresholdOrder
	}

	cfg, err := uc.repo.SetConfig(ctx, repository.SetConfigOption{
		Enabled:           ip.Enabled,
		FirstThreshold:    ip.FirstThreshold,
		CriticalThreshold: ip.CriticalThreshold,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.UpdateSettings.repo.SetConfig: %v", err)
		return model.ThresholdConfig{}, err
	}

	uc.l.Infof(ctx, "internal.alert.usecase.UpdateSettings: thresholds updated by %s (first=%.2f critical=%.2f enabled=%t)",
		sc.UserID, cfg.FirstThreshold, cfg.CriticalThreshold, cfg.Enabled)

	return cfg, nil
}
