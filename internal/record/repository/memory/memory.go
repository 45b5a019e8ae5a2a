// Package memory provides an in-memory record repository used by tests and
// local development without a database.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/record/repository"
	pkgPostgres "carbontrack-api/pkg/postgre"
)

type implRepository struct {
	mu      sync.RWMutex
	records []model.EmissionRecord
}

var _ repository.Repository = &implRepository{}

func New() *implRepository {
	return &implRepository{}
}

func (repo *implRepository) Create(_ context.Context, opt repository.CreateRecordOption) (model.EmissionRecord, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	rec := model.EmissionRecord{
		ID:             pkgPostgres.NewUUID(),
		OwnerID:        opt.OwnerID,
		SourceCategory: opt.SourceCategory,
		CO2Kg:          opt.CO2Kg,
		DeviceType:     opt.DeviceType,
		PowerRating:    opt.PowerRating,
		UsageHours:     opt.UsageHours,
		Efficiency:     opt.Efficiency,
		CPULoad:        opt.CPULoad,
		BatteryPercent: opt.BatteryPercent,
		CreatedAt:      time.Now().UTC(),
	}
	repo.records = append(repo.records, rec)

	return rec, nil
}

// Seed inserts a record with an explicit timestamp. Test helper.
func (repo *implRepository) Seed(rec model.EmissionRecord) model.EmissionRecord {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if rec.ID == "" {
		rec.ID = pkgPostgres.NewUUID()
	}
	repo.records = append(repo.records, rec)

	return rec
}

func (repo *implRepository) Detail(_ context.Context, id string) (model.EmissionRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, rec := range repo.records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return model.EmissionRecord{}, sql.ErrNoRows
}

func (repo *implRepository) List(_ context.Context, opt repository.ListRecordOption) ([]model.EmissionRecord, int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := []model.EmissionRecord{}
	for _, rec := range repo.records {
		if rec.OwnerID != opt.OwnerID {
			continue
		}
		if opt.Category != "" && rec.SourceCategory != opt.Category {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if opt.PaginateQuery.Limit > 0 {
		offset := opt.PaginateQuery.Offset()
		if offset >= total {
			return []model.EmissionRecord{}, total, nil
		}
		end := offset + opt.PaginateQuery.Limit
		if end > total {
			end = total
		}
		matched = matched[offset:end]
	}

	return matched, total, nil
}

func (repo *implRepository) ListAsc(_ context.Context, ownerID string) ([]model.EmissionRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matched := []model.EmissionRecord{}
	for _, rec := range repo.records {
		if rec.OwnerID == ownerID {
			matched = append(matched, rec)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched, nil
}

func (repo *implRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, rec := range repo.records {
		if rec.ID == id {
			repo.records = append(repo.records[:i], repo.records[i+1:]...)
			return nil
		}
	}

	return nil
}

func (repo *implRepository) SumAll(_ context.Context, ownerID string) (float64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var total float64
	for _, rec := range repo.records {
		if rec.OwnerID == ownerID {
			total += rec.CO2Kg
		}
	}

	return total, nil
}

func (repo *implRepository) SumSince(_ context.Context, ownerID string, since time.Time) (float64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var total float64
	for _, rec := range repo.records {
		if rec.OwnerID == ownerID && !rec.CreatedAt.Before(since) {
			total += rec.CO2Kg
		}
	}

	return total, nil
}
