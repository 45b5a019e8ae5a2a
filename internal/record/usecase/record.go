package usecase

import (
	"context"
	"database/sql"
	"math"

	"github.com/friendsofgo/errors"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/record"
	"carbontrack-api/internal/record/repository"
	"carbontrack-api/pkg/paginator"
)

func (uc *implUsecase) Calculate(ctx context.Context, sc model.Scope, ip record.CalculateInput) (record.RecordOutput, error) {
	if ip.PowerRating <= 0 || ip.UsageHours <= 0 ||
		math.IsNaN(ip.PowerRating) || math.IsNaN(ip.UsageHours) {
		return record.RecordOutput{}, record.ErrInvalidInput
	}

	co2 := deviceEmission(ip.PowerRating, ip.UsageHours)

	rec, err := uc.repo.Create(ctx, repository.CreateRecordOption{
		OwnerID:        sc.UserID,
		SourceCategory: model.SourceDeviceUsage,
		CO2Kg:          co2,
		DeviceType:     ip.DeviceType,
		PowerRating:    ip.PowerRating,
		UsageHours:     ip.UsageHours,
		Efficiency:     efficiencyRating(co2, ip.UsageHours),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.Calculate.repo.Create: %v", err)
		return record.RecordOutput{}, err
	}

	return record.RecordOutput{Record: rec}, nil
}

func (uc *implUsecase) LogWaste(ctx context.Context, sc model.Scope, ip record.WasteInput) (record.RecordOutput, error) {
	if _, ok := wasteBaseFactors[ip.WasteType]; !ok {
		return record.RecordOutput{}, record.ErrInvalidWasteType
	}
	if ip.Amount <= 0 || math.IsNaN(ip.Amount) {
		return record.RecordOutput{}, record.ErrInvalidAmount
	}

	amountKg := ip.Amount
	if ip.Unit == "Tons" {
		amountKg *= 1000
	}

	rec, err := uc.repo.Create(ctx, repository.CreateRecordOption{
		OwnerID:        sc.UserID,
		SourceCategory: model.SourceWasteDisposal,
		CO2Kg:          wasteEmission(ip.WasteType, ip.TreatmentType, amountKg),
		DeviceType:     ip.WasteType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.LogWaste.repo.Create: %v", err)
		return record.RecordOutput{}, err
	}

	return record.RecordOutput{Record: rec}, nil
}

func (uc *implUsecase) Ingest(ctx context.Context, ip record.IngestInput) (record.RecordOutput, error) {
	rec, err := uc.repo.Create(ctx, repository.CreateRecordOption{
		OwnerID:        ip.UserID,
		SourceCategory: model.SourceAmbientTelemetry,
		CO2Kg:          clampEmission(ip.CO2Kg),
		CPULoad:        ip.CPULoad,
		BatteryPercent: ip.BatteryPercent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.Ingest.repo.Create: %v", err)
		return record.RecordOutput{}, err
	}

	return record.RecordOutput{Record: rec}, nil
}

func (uc *implUsecase) History(ctx context.Context, sc model.Scope, ip record.HistoryInput) (record.HistoryOutput, error) {
	ip.PaginateQuery.Adjust()

	recs, total, err := uc.repo.List(ctx, repository.ListRecordOption{
		OwnerID:       sc.UserID,
		Category:      model.SourceCategory(ip.Category),
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.History.repo.List: %v", err)
		return record.HistoryOutput{}, err
	}

	return record.HistoryOutput{
		Records: recs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(recs)),
			PerPage:     ip.PaginateQuery.Limit,
			CurrentPage: ip.PaginateQuery.Page,
		},
	}, nil
}

func (uc *implUsecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	rec, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "internal.record.usecase.Delete.repo.Detail: %v", err)
		return err
	}

	if rec.OwnerID != sc.UserID && !sc.IsAdmin() {
		return record.ErrNotOwner
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}

func (uc *implUsecase) Aggregate(ctx context.Context, ownerID string) (model.EmissionAggregate, error) {
	lifetime, err := uc.repo.SumAll(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.Aggregate.repo.SumAll: %v", err)
		return model.EmissionAggregate{}, err
	}

	since := uc.now().UTC().AddDate(0, 0, -7)
	last7, err := uc.repo.SumSince(ctx, ownerID, since)
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.Aggregate.repo.SumSince: %v", err)
		return model.EmissionAggregate{}, err
	}

	return model.EmissionAggregate{
		LifetimeTotal:  lifetime,
		Last7DaysTotal: last7,
		DailyAverage:   last7 / 7,
	}, nil
}

func (uc *implUsecase) ListAscending(ctx context.Context, ownerID string) ([]model.EmissionRecord, error) {
	recs, err := uc.repo.ListAsc(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.record.usecase.ListAscending.repo.ListAsc: %v", err)
		return nil, err
	}

	return recs, nil
}
