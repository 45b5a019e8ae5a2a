package postgre

import (
	"context"
	"time"

	"github.com/friendsofgo/errors"

	"carbontrack-api/internal/model"
)

func (repo *implRepository) GetOrCreateState(ctx context.Context, ownerID string) (model.UserAlertState, error) {
	now := time.Now().UTC()
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO user_alert_states (owner_id, first_threshold_sent, created_at, updated_at)
		VALUES ($1, FALSE, $2, $2)
		ON CONFLICT (owner_id) DO NOTHING`,
		ownerID, now)
	if err != nil {
		return model.UserAlertState{}, errors.Wrap(err, "alert.repository.postgre.GetOrCreateState.insert")
	}

	var st model.UserAlertState
	err = repo.db.GetContext(ctx, &st,
		`SELECT owner_id, first_threshold_sent, created_at, updated_at
		 FROM user_alert_states WHERE owner_id = $1`, ownerID)
	if err != nil {
		return model.UserAlertState{}, errors.Wrap(err, "alert.repository.postgre.GetOrCreateState.select")
	}

	return st, nil
}

// MarkFirstSent is the compare-and-set behind the one-shot latch. Two
// concurrent evaluations both reach here but only one sees a row affected.
func (repo *implRepository) MarkFirstSent(ctx context.Context, ownerID string) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `
		UPDATE user_alert_states
		SET first_threshold_sent = TRUE, updated_at = $2
		WHERE owner_id = $1 AND NOT first_threshold_sent`,
		ownerID, time.Now().UTC())
	if err != nil {
		return false, errors.Wrap(err, "alert.repository.postgre.MarkFirstSent")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "alert.repository.postgre.MarkFirstSent.RowsAffected")
	}

	return affected == 1, nil
}

func (repo *implRepository) Touch(ctx context.Context, ownerID string) error {
	_, err := repo.db.ExecContext(ctx,
		`UPDATE user_alert_states SET updated_at = $2 WHERE owner_id = $1`,
		ownerID, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "alert.repository.postgre.Touch")
	}

	return nil
}
