package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
	"accreditation-backend/internal/workflow"
)

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) repository.ParticipantRepository {
	return &participantRepository{db: db}
}

const participantColumns = `id, event_id, registration_code, first_name, last_name, email, organization, participant_type_id, invitation_id, current_step_id, status, access_level, created_on, updated_on`

func scanParticipant(row interface{ Scan(...any) error }) (*domain.Participant, error) {
	p := &domain.Participant{}
	err := row.Scan(&p.ID, &p.EventID, &p.RegistrationCode, &p.FirstName, &p.LastName, &p.Email, &p.Organization, &p.ParticipantTypeID, &p.InvitationID, &p.CurrentStepID, &p.Status, &p.AccessLevel, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO participants (event_id, registration_code, first_name, last_name, email, organization, participant_type_id, invitation_id, current_step_id, status, access_level, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.EventID, p.RegistrationCode, p.FirstName, p.LastName, p.Email, p.Organization, p.ParticipantTypeID, p.InvitationID, p.CurrentStepID, p.Status, p.AccessLevel, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *participantRepository) GetByID(ctx context.Context, id int32) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return scanParticipant(r.db.QueryRowContext(ctx, query, id))
}

func (r *participantRepository) GetByCode(ctx context.Context, code string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE registration_code = $1`
	return scanParticipant(r.db.QueryRowContext(ctx, query, code))
}

func (r *participantRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM participants WHERE registration_code = $1)`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *participantRepository) UpdateProgress(ctx context.Context, id int32, stepID *int32, status domain.ParticipantStatus) error {
	logger.DatabaseCall("UPDATE", "participants", "participant_id", id, "status", status)
	query := `UPDATE participants SET current_step_id = $1, status = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, stepID, status, time.Now(), id)
	logger.DatabaseResult("UPDATE", err, "participant_id", id)
	return err
}

func (r *participantRepository) ListByEvent(ctx context.Context, eventID int32, status string, page, pageSize int32) ([]domain.Participant, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + participantColumns + ` FROM participants WHERE event_id = $1`

	args := []interface{}{eventID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, 0, err
		}
		participants = append(participants, *p)
	}
	return participants, count, rows.Err()
}

func (r *participantRepository) CountByTypeAndOrganization(ctx context.Context, eventID, participantTypeID int32, organization string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM participants WHERE event_id = $1 AND participant_type_id = $2 AND organization = $3 AND status NOT IN ('CANCELLED', 'REJECTED')`
	err := r.db.QueryRowContext(ctx, query, eventID, participantTypeID, organization).Scan(&count)
	return count, err
}

func (r *participantRepository) CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM participants WHERE event_id = $1 AND organization = $2 AND status NOT IN ('CANCELLED', 'REJECTED')`
	err := r.db.QueryRowContext(ctx, query, eventID, organization).Scan(&count)
	return count, err
}

// AdmitParticipant closes the quota race: the counts the form-level quota
// evaluation already did are re-run and the insert committed inside one
// serializable transaction, so two concurrent registrations against a
// remaining slot of one cannot both land.
func (r *participantRepository) AdmitParticipant(ctx context.Context, p *domain.Participant, maxQuota *int32, constraint *domain.Constraint) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if maxQuota != nil {
		var total int32
		query := `SELECT count(*) FROM participants WHERE event_id = $1 AND organization = $2 AND status NOT IN ('CANCELLED', 'REJECTED')`
		if err := tx.QueryRowContext(ctx, query, p.EventID, p.Organization).Scan(&total); err != nil {
			return err
		}
		if total >= *maxQuota {
			return repository.ErrQuotaExceeded
		}
	}

	if constraint != nil && constraint.Name != workflow.ConstraintNameClosedSession {
		var used int32
		query := `SELECT count(*) FROM participants WHERE event_id = $1 AND participant_type_id = $2 AND organization = $3 AND status NOT IN ('CANCELLED', 'REJECTED')`
		if err := tx.QueryRowContext(ctx, query, p.EventID, constraint.ParticipantTypeID, p.Organization).Scan(&used); err != nil {
			return err
		}
		if used >= constraint.Quota {
			return repository.ErrQuotaExceeded
		}
	}

	query := `INSERT INTO participants (event_id, registration_code, first_name, last_name, email, organization, participant_type_id, invitation_id, current_step_id, status, access_level, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, p.EventID, p.RegistrationCode, p.FirstName, p.LastName, p.Email, p.Organization, p.ParticipantTypeID, p.InvitationID, p.CurrentStepID, p.Status, p.AccessLevel, time.Now(), time.Now()).Scan(&p.ID); err != nil {
		return err
	}

	return tx.Commit()
}
