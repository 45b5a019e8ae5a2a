package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/record"
	recordMemory "carbontrack-api/internal/record/repository/memory"
	pkgLog "carbontrack-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func TestCalculate(t *testing.T) {
	ctx := context.Background()
	uc := New(testLogger(), recordMemory.New())
	sc := model.Scope{UserID: "u1"}

	tests := []struct {
		name           string
		power, hours   float64
		wantCO2        float64
		wantEfficiency int
	}{
		// 100W * 10h = 1 kWh -> 0.82 kg over 10h -> 0.082 kg/h -> rating 5
		{"laptop light use", 100, 10, 0.82, 5},
		// 500W * 8h = 4 kWh -> 3.28 kg over 8h -> 0.41 kg/h -> rating 4
		{"desktop workday", 500, 8, 3.28, 4},
		// 1000W * 1h -> 0.82 kg/h -> rating 3
		{"heater hour", 1000, 1, 0.82, 3},
		// 2000W * 2h -> 3.28 kg, 1.64 kg/h -> rating 2
		{"server burst", 2000, 2, 3.28, 2},
		// 3000W * 5h -> 12.3 kg, 2.46 kg/h -> rating 1
		{"rig marathon", 3000, 5, 12.3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := uc.Calculate(ctx, sc, record.CalculateInput{
				DeviceType:  "Laptop",
				PowerRating: tc.power,
				UsageHours:  tc.hours,
			})
			require.NoError(t, err)
			require.InDelta(t, tc.wantCO2, o.Record.CO2Kg, 1e-9)
			require.Equal(t, tc.wantEfficiency, o.Record.Efficiency)
			require.Equal(t, model.SourceDeviceUsage, o.Record.SourceCategory)
			require.Equal(t, "u1", o.Record.OwnerID)
		})
	}
}

func TestCalculate_RejectsNonPositiveInput(t *testing.T) {
	ctx := context.Background()
	uc := New(testLogger(), recordMemory.New())
	sc := model.Scope{UserID: "u1"}

	for _, ip := range []record.CalculateInput{
		{PowerRating: 0, UsageHours: 5},
		{PowerRating: -100, UsageHours: 5},
		{PowerRating: 100, UsageHours: 0},
		{PowerRating: 100, UsageHours: -1},
	} {
		_, err := uc.Calculate(ctx, sc, ip)
		require.ErrorIs(t, err, record.ErrInvalidInput)
	}
}

func TestLogWaste(t *testing.T) {
	ctx := context.Background()
	uc := New(testLogger(), recordMemory.New())
	sc := model.Scope{UserID: "u1"}

	tests := []struct {
		name    string
		ip      record.WasteInput
		wantCO2 float64
	}{
		// 200 * 2 * 0.8
		{"recycled laptops", record.WasteInput{WasteType: "Laptop", TreatmentType: "Recycled", Amount: 2, Unit: "Kg"}, 320},
		// 8 * 0.5 * 1.2
		{"disposed battery", record.WasteInput{WasteType: "Battery", TreatmentType: "Disposed", Amount: 0.5, Unit: "Kg"}, 4.8},
		// tons convert to kg: 2 * 1000 * 0.4
		{"reused cable by the ton", record.WasteInput{WasteType: "Cable", TreatmentType: "Reused", Amount: 1, Unit: "Tons"}, 800},
		// unknown treatment falls back to modifier 1
		{"unknown treatment", record.WasteInput{WasteType: "Monitor", TreatmentType: "Shredded", Amount: 1, Unit: "Kg"}, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := uc.LogWaste(ctx, sc, tc.ip)
			require.NoError(t, err)
			require.InDelta(t, tc.wantCO2, o.Record.CO2Kg, 1e-9)
			require.Equal(t, model.SourceWasteDisposal, o.Record.SourceCategory)
		})
	}

	_, err := uc.LogWaste(ctx, sc, record.WasteInput{WasteType: "Fridge", TreatmentType: "Recycled", Amount: 1, Unit: "Kg"})
	require.ErrorIs(t, err, record.ErrInvalidWasteType)

	_, err = uc.LogWaste(ctx, sc, record.WasteInput{WasteType: "Laptop", TreatmentType: "Recycled", Amount: 0, Unit: "Kg"})
	require.ErrorIs(t, err, record.ErrInvalidAmount)
}

func TestAggregate_WindowBoundary(t *testing.T) {
	ctx := context.Background()
	repo := recordMemory.New()
	uc := New(testLogger(), repo)

	now := time.Now().UTC()
	uc.now = func() time.Time { return now }

	seed := func(co2 float64, at time.Time) {
		repo.Seed(model.EmissionRecord{
			OwnerID:        "u1",
			SourceCategory: model.SourceDeviceUsage,
			CO2Kg:          co2,
			CreatedAt:      at,
		})
	}

	seed(1.0, now)                                       // inside
	seed(2.0, now.AddDate(0, 0, -7))                     // exactly on the boundary, included
	seed(4.0, now.AddDate(0, 0, -7).Add(-1*time.Second)) // one second outside, excluded
	seed(8.0, now.AddDate(0, 0, -30))                    // far outside

	agg, err := uc.Aggregate(ctx, "u1")
	require.NoError(t, err)
	require.InDelta(t, 15.0, agg.LifetimeTotal, 1e-9)
	require.InDelta(t, 3.0, agg.Last7DaysTotal, 1e-9)
	// A sparse week still divides by a full 7 days.
	require.InDelta(t, 3.0/7.0, agg.DailyAverage, 1e-9)
}

func TestAggregate_EmptyUser(t *testing.T) {
	uc := New(testLogger(), recordMemory.New())

	agg, err := uc.Aggregate(context.Background(), "nobody")
	require.NoError(t, err)
	require.Zero(t, agg.LifetimeTotal)
	require.Zero(t, agg.Last7DaysTotal)
	require.Zero(t, agg.DailyAverage)
}

func TestDelete_OwnershipCheck(t *testing.T) {
	ctx := context.Background()
	repo := recordMemory.New()
	uc := New(testLogger(), repo)

	rec := repo.Seed(model.EmissionRecord{
		OwnerID: "u1", SourceCategory: model.SourceDeviceUsage,
		CO2Kg: 1, CreatedAt: time.Now().UTC(),
	})

	err := uc.Delete(ctx, model.Scope{UserID: "intruder"}, rec.ID)
	require.ErrorIs(t, err, record.ErrNotOwner)

	// Admins may delete anyone's records.
	require.NoError(t, uc.Delete(ctx, model.Scope{UserID: "ops", Role: model.RoleAdmin}, rec.ID))

	err = uc.Delete(ctx, model.Scope{UserID: "u1"}, rec.ID)
	require.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestHistory_PaginatesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := recordMemory.New()
	uc := New(testLogger(), repo)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		repo.Seed(model.EmissionRecord{
			OwnerID:        "u1",
			SourceCategory: model.SourceDeviceUsage,
			CO2Kg:          float64(i + 1),
			CreatedAt:      now.Add(time.Duration(i) * time.Minute),
		})
	}

	o, err := uc.History(ctx, model.Scope{UserID: "u1"}, record.HistoryInput{})
	require.NoError(t, err)
	require.Len(t, o.Records, 5)
	require.Equal(t, int64(5), o.Paginator.Total)
	require.Equal(t, 5.0, o.Records[0].CO2Kg, "newest record first")
}

func TestClampEmission(t *testing.T) {
	ctx := context.Background()
	uc := New(testLogger(), recordMemory.New())

	o, err := uc.Ingest(ctx, record.IngestInput{UserID: "u1", CO2Kg: -3})
	require.NoError(t, err)
	require.Zero(t, o.Record.CO2Kg)

	o, err = uc.Ingest(ctx, record.IngestInput{UserID: "u1", CO2Kg: 0.123456})
	require.NoError(t, err)
	require.InDelta(t, 0.123, o.Record.CO2Kg, 1e-9)
}
