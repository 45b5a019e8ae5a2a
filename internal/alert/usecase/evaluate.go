package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carbontrack-api/internal/alert"
)

func (uc *implUsecase) Evaluate(ctx context.Context, ip alert.EvaluateInput) (alert.EvaluateOutput, error) {
	if ip.OwnerID == "" || ip.OwnerEmail == "" {
		return alert.EvaluateOutput{}, alert.ErrMissingOwner
	}

	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.repo.GetConfig: %v", err)
		return alert.EvaluateOutput{}, err
	}

	out := alert.EvaluateOutput{
		FirstThreshold:    cfg.FirstThreshold,
		CriticalThreshold: cfg.CriticalThreshold,
	}

	// Global kill switch, nothing runs while alerting is off.
	if !cfg.Enabled {
		return out, nil
	}

	agg, err := uc.recordUC.Aggregate(ctx, ip.OwnerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.recordUC.Aggregate: %v", err)
		return alert.EvaluateOutput{}, err
	}
	out.LifetimeTotal = agg.LifetimeTotal

	st, err := uc.repo.GetOrCreateState(ctx, ip.OwnerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.repo.GetOrCreateState: %v", err)
		return alert.EvaluateOutput{}, err
	}

	latched := alert.LatchedThresholdPolicy{Threshold: cfg.FirstThreshold}
	recurring := alert.RecurringThresholdPolicy{Threshold: cfg.CriticalThreshold}

	if latched.ShouldFire(agg.LifetimeTotal, st.FirstThresholdSent) {
		// The conditional update runs before the email goes out. Under a
		// concurrent evaluation only one caller wins the flip, so the
		// first-threshold email is sent at most once per user. If the
		// write itself fails the evaluation fails with it rather than
		// reporting a transition that was never persisted.
		transitioned, err := uc.repo.MarkFirstSent(ctx, ip.OwnerID)
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.repo.MarkFirstSent: %v", err)
			return alert.EvaluateOutput{}, err
		}

		if transitioned {
			out.FirstFired = true
			uc.notify(ctx, ip, agg.LifetimeTotal, latched.Severity())
		}
	} else if err := uc.repo.Touch(ctx, ip.OwnerID); err != nil {
		// Timestamp refresh only, nothing user-visible depends on it.
		uc.l.Warnf(ctx, "internal.alert.usecase.Evaluate.repo.Touch: %v", err)
	}

	if recurring.ShouldFire(agg.LifetimeTotal, false) {
		out.CriticalFired = true
		uc.notify(ctx, ip, agg.LifetimeTotal, recurring.Severity())
	}

	return out, nil
}

// notify delivers one alert over email and the Redis live feed. Failures are
// logged and swallowed; a lost notification never fails the evaluation.
func (uc *implUsecase) notify(ctx context.Context, ip alert.EvaluateInput, totalKg float64, severity string) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if uc.notifier != nil {
		if err := uc.notifier.SendEmissionAlert(nctx, ip.OwnerEmail, totalKg, severity); err != nil {
			uc.l.Warnf(ctx, "internal.alert.usecase.notify.SendEmissionAlert: %v", err)
		}
	}

	if uc.redis != nil {
		payload, _ := json.Marshal(map[string]any{
			"severity":  severity,
			"totalKg":   totalKg,
			"firedAt":   time.Now().UTC().Format(time.RFC3339),
			"ownerId":   ip.OwnerID,
			"ownerMail": ip.OwnerEmail,
		})
		channel := fmt.Sprintf("alerts:user:%s", ip.OwnerID)
		if err := uc.redis.Publish(nctx, channel, payload); err != nil {
			uc.l.Warnf(ctx, "internal.alert.usecase.notify.redis.Publish: %v", err)
		}
	}
}
