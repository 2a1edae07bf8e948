package postgres

import (
	"context"
	"database/sql"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
)

type approvalRepository struct {
	db *sql.DB
}

func NewApprovalRepository(db *sql.DB) repository.ApprovalRepository {
	return &approvalRepository{db: db}
}

// Create appends one audit row. The table carries a uniqueness constraint on
// (participant_id, step_id, user_id, created_at); there is no UPDATE or
// DELETE path anywhere in this repository.
func (r *approvalRepository) Create(ctx context.Context, a *domain.Approval) error {
	logger.DatabaseCall("INSERT", "approvals", "participant_id", a.ParticipantID, "action", a.Action, "result", a.Result)
	query := `INSERT INTO approvals (participant_id, step_id, user_id, action, result, remarks, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, a.ParticipantID, a.StepID, a.UserID, a.Action, a.Result, a.Remarks, time.Now()).Scan(&a.ID, &a.CreatedAt)
	logger.DatabaseResult("INSERT", err, "approval_id", a.ID)
	return err
}

func (r *approvalRepository) ListByParticipant(ctx context.Context, participantID int32) ([]domain.Approval, error) {
	query := `SELECT id, participant_id, step_id, user_id, action, result, remarks, created_at
	          FROM approvals WHERE participant_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var approvals []domain.Approval
	for rows.Next() {
		var a domain.Approval
		if err := rows.Scan(&a.ID, &a.ParticipantID, &a.StepID, &a.UserID, &a.Action, &a.Result, &a.Remarks, &a.CreatedAt); err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, rows.Err()
}
