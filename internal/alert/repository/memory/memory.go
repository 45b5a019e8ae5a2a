// Package memory provides an in-memory alert repository used by tests and
// local development without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"carbontrack-api/internal/alert/repository"
	"carbontrack-api/internal/model"
)

type implRepository struct {
	mu     sync.Mutex
	config *model.ThresholdConfig
	states map[string]model.UserAlertState
}

var _ repository.Repository = &implRepository{}

func New() *implRepository {
	return &implRepository{
		states: make(map[string]model.UserAlertState),
	}
}

func (repo *implRepository) GetConfig(_ context.Context) (model.ThresholdConfig, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.config == nil {
		cfg := model.DefaultThresholdConfig()
		cfg.UpdatedAt = time.Now().UTC()
		repo.config = &cfg
	}

	return *repo.config, nil
}

func (repo *implRepository) SetConfig(_ context.Context, opt repository.SetConfigOption) (model.ThresholdConfig, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.config == nil {
		cfg := model.DefaultThresholdConfig()
		repo.config = &cfg
	}

	if opt.Enabled != nil {
		repo.config.Enabled = *opt.Enabled
	}
	if opt.FirstThreshold != nil {
		repo.config.FirstThreshold = *opt.FirstThreshold
	}
	if opt.CriticalThreshold != nil {
		repo.config.CriticalThreshold = *opt.CriticalThreshold
	}
	repo.config.UpdatedAt = time.Now().UTC()

	return *repo.config, nil
}

func (repo *implRepository) GetOrCreateState(_ context.Context, ownerID string) (model.UserAlertState, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	st, ok := repo.states[ownerID]
	if !ok {
		now := time.Now().UTC()
		st = model.UserAlertState{
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		repo.states[ownerID] = st
	}

	return st, nil
}

func (repo *implRepository) MarkFirstSent(_ context.Context, ownerID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	st, ok := repo.states[ownerID]
	if !ok || st.FirstThresholdSent {
		return false, nil
	}

	st.FirstThresholdSent = true
	st.UpdatedAt = time.Now().UTC()
	repo.states[ownerID] = st

	return true, nil
}

func (repo *implRepository) Touch(_ context.Context, ownerID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if st, ok := repo.states[ownerID]; ok {
		st.UpdatedAt = time.Now().UTC()
		repo.states[ownerID] = st
	}

	return nil
}
