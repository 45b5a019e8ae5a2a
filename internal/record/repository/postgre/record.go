package postgre

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/record/repository"
	pkgPostgres "carbontrack-api/pkg/postgre"
)

const createRecordQuery = `
	INSERT INTO emission_records (
		id, owner_id, source_category, co2_kg,
		device_type, power_rating, usage_hours, efficiency,
		cpu_load, battery_percent, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING *`

func (repo *implRepository) Create(ctx context.Context, opt repository.CreateRecordOption) (model.EmissionRecord, error) {
	var rec model.EmissionRecord
	err := repo.db.GetContext(ctx, &rec, createRecordQuery,
		pkgPostgres.NewUUID(),
		opt.OwnerID,
		opt.SourceCategory,
		opt.CO2Kg,
		opt.DeviceType,
		opt.PowerRating,
		opt.UsageHours,
		opt.Efficiency,
		opt.CPULoad,
		opt.BatteryPercent,
		time.Now().UTC(),
	)
	if err != nil {
		return model.EmissionRecord{}, errors.Wrap(err, "record.repository.postgre.Create")
	}

	return rec, nil
}

func (repo *implRepository) Detail(ctx context.Context, id string) (model.EmissionRecord, error) {
	var rec model.EmissionRecord
	err := repo.db.GetContext(ctx, &rec,
		`SELECT * FROM emission_records WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.EmissionRecord{}, sql.ErrNoRows
		}
		return model.EmissionRecord{}, errors.Wrap(err, "record.repository.postgre.Detail")
	}

	return rec, nil
}

func (repo *implRepository) List(ctx context.Context, opt repository.ListRecordOption) ([]model.EmissionRecord, int64, error) {
	query := `SELECT * FROM emission_records WHERE owner_id = $1`
	countQuery := `SELECT COUNT(*) FROM emission_records WHERE owner_id = $1`
	args := []any{opt.OwnerID}

	if opt.Category != "" {
		query += ` AND source_category = $2`
		countQuery += ` AND source_category = $2`
		args = append(args, opt.Category)
	}

	var total int64
	if err := repo.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, errors.Wrap(err, "record.repository.postgre.List.count")
	}

	query += ` ORDER BY created_at DESC`
	if opt.PaginateQuery.Limit > 0 {
		query += ` LIMIT ` + strconv.FormatInt(opt.PaginateQuery.Limit, 10) +
			` OFFSET ` + strconv.FormatInt(opt.PaginateQuery.Offset(), 10)
	}

	recs := []model.EmissionRecord{}
	if err := repo.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, 0, errors.Wrap(err, "record.repository.postgre.List")
	}

	return recs, total, nil
}

func (repo *implRepository) ListAsc(ctx context.Context, ownerID string) ([]model.EmissionRecord, error) {
	recs := []model.EmissionRecord{}
	err := repo.db.SelectContext(ctx, &recs,
		`SELECT * FROM emission_records WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "record.repository.postgre.ListAsc")
	}

	return recs, nil
}

func (repo *implRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx,
		`DELETE FROM emission_records WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "record.repository.postgre.Delete")
	}

	return nil
}

func (repo *implRepository) SumAll(ctx context.Context, ownerID string) (float64, error) {
	var total float64
	err := repo.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(co2_kg), 0) FROM emission_records WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "record.repository.postgre.SumAll")
	}

	return total, nil
}

func (repo *implRepository) SumSince(ctx context.Context, ownerID string, since time.Time) (float64, error) {
	var total float64
	err := repo.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(co2_kg), 0) FROM emission_records WHERE owner_id = $1 AND created_at >= $2`,
		ownerID, since)
	if err != nil {
		return 0, errors.Wrap(err, "record.repository.postgre.SumSince")
	}

	return total, nil
}
