package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/record"
	"carbontrack-api/internal/telemetry"
)

func (uc *implUsecase) Ingest(ctx context.Context, ip telemetry.IngestInput) (telemetry.IngestOutput, error) {
	if ip.UserID == "" {
		return telemetry.IngestOutput{}, telemetry.ErrMissingFields
	}

	o, err := uc.recordUC.Ingest(ctx, record.IngestInput{
		UserID:         ip.UserID,
		CO2Kg:          ip.CO2Kg,
		CPULoad:        ip.CPULoad,
		BatteryPercent: ip.BatteryPercent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.telemetry.usecase.Ingest.recordUC.Ingest: %v", err)
		return telemetry.IngestOutput{}, err
	}

	out := telemetry.IngestOutput{
		Message:         "Emission logged successfully",
		CurrentEmission: o.Record.CO2Kg,
	}

	// No latch here. The widget path re-alerts on every sample at or
	// above the limit; only the email needs a recipient.
	spike := alert.SpikePolicy{Threshold: telemetry.SpikeThresholdKg}
	if ip.UserEmail != "" && spike.ShouldFire(o.Record.CO2Kg, false) {
		out.SpikeFired = true
		uc.notifySpike(ctx, ip, o.Record.CO2Kg)
	}

	return out, nil
}

// notifySpike is best-effort; the sample is already persisted and a lost
// alert never fails the request.
func (uc *implUsecase) notifySpike(ctx context.Context, ip telemetry.IngestInput, co2Kg float64) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if uc.notifier != nil {
		if err := uc.notifier.SendEmissionAlert(nctx, ip.UserEmail, co2Kg, alert.SeveritySpike); err != nil {
			uc.l.Warnf(ctx, "internal.telemetry.usecase.notifySpike.SendEmissionAlert: %v", err)
		}
	}

	if uc.redis != nil {
		payload, _ := json.Marshal(map[string]any{
			"severity": alert.SeveritySpike,
			"totalKg":  co2Kg,
			"firedAt":  time.Now().UTC().Format(time.RFC3339),
			"ownerId":  ip.UserID,
		})
		channel := fmt.Sprintf("alerts:user:%s", ip.UserID)
		if err := uc.redis.Publish(nctx, channel, payload); err != nil {
			uc.l.Warnf(ctx, "internal.telemetry.usecase.notifySpike.redis.Publish: %v", err)
		}
	}
}
