package postgre

import (
	"context"
	"time"

	"github.com/friendsofgo/errors"

	"carbontrack-api/internal/alert/repository"
	"carbontrack-api/internal/model"
)

// The configuration lives in a single fixed row. The CHECK (id = 1)
// constraint in the schema keeps it that way.
const ensureConfigQuery = `
	INSERT INTO threshold_configs (id, enabled, first_threshold, critical_threshold, updated_at)
	VALUES (1, $1, $2, $3, $4)
	ON CONFLICT (id) DO NOTHING`

func (repo *implRepository) ensureConfig(ctx context.Context) error {
	def := model.DefaultThresholdConfig()
	_, err := repo.db.ExecContext(ctx, ensureConfigQuery,
		def.Enabled, def.FirstThreshold, def.CriticalThreshold, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "alert.repository.postgre.ensureConfig")
	}

	return nil
}

func (repo *implRepository) GetConfig(ctx context.Context) (model.ThresholdConfig, error) {
	if err := repo.ensureConfig(ctx); err != nil {
		return model.ThresholdConfig{}, err
	}

	var cfg model.ThresholdConfig
	err := repo.db.GetContext(ctx, &cfg,
		`SELECT enabled, first_threshold, critical_threshold, updated_at
		 FROM threshold_configs WHERE id = 1`)
	if err != nil {
		return model.ThresholdConfig{}, errors.Wrap(err, "alert.repository.postgre.GetConfig")
	}

	return cfg, nil
}

func (repo *implRepository) SetConfig(ctx context.Context, opt repository.SetConfigOption) (model.ThresholdConfig, error) {
	if err := repo.ensureConfig(ctx); err != nil {
		return model.ThresholdConfig{}, err
	}

	var cfg model.ThresholdConfig
	err := repo.db.GetContext(ctx, &cfg, `
		UPDATE threshold_configs SET
			enabled = COALESCE($1, enabled),
			first_threshold = COALESCE($2, first_threshold),
			critical_threshold = COALESCE($3, critical_threshold),
			updated_at = $4
		WHERE id = 1
		RETURNING enabled, first_threshold, critical_threshold, updated_at`,
		opt.Enabled, opt.FirstThreshold, opt.CriticalThreshold, time.Now().UTC())
	if err != nil {
		return model.ThresholdConfig{}, errors.Wrap(err, "alert.repository.postgre.SetConfig")
	}

	return cfg, nil
}
