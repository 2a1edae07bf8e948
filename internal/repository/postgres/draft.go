package postgres

import (
	"context"
	"database/sql"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

type draftRepository struct {
	db *sql.DB
}

func NewDraftRepository(db *sql.DB) repository.DraftRepository {
	return &draftRepository{db: db}
}

// Upsert keeps the one-active-draft-per-user invariant in the database: a
// second draft for the same user replaces the first.
func (r *draftRepository) Upsert(ctx context.Context, d *domain.Draft) error {
	query := `INSERT INTO drafts (id, user_id, event_id, invitation_code, payload, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id) DO UPDATE SET
	              event_id = EXCLUDED.event_id,
	              invitation_code = EXCLUDED.invitation_code,
	              payload = EXCLUDED.payload,
	              updated_on = EXCLUDED.updated_on`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, d.ID, d.UserID, d.EventID, d.InvitationCode, d.Payload, now, now)
	return err
}

func (r *draftRepository) GetByUser(ctx context.Context, userID int32) (*domain.Draft, error) {
	d := &domain.Draft{}
	query := `SELECT id, user_id, event_id, invitation_code, payload, created_on, updated_on FROM drafts WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&d.ID, &d.UserID, &d.EventID, &d.InvitationCode, &d.Payload, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *draftRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = $1`, id)
	return err
}

// DeleteExpired removes drafts untouched since cutoff. Called by the
// scheduled TTL sweep, never implicitly on access.
func (r *draftRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE updated_on < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
