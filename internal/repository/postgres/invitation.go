package postgres

import (
	"context"
	"database/sql"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (event_id, code, organization, email, participant_type_id, maximum_quota, restriction_id, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, inv.EventID, inv.Code, inv.Organization, inv.Email, inv.ParticipantTypeID, inv.MaximumQuota, inv.RestrictionID, inv.CreatedBy, time.Now()).Scan(&inv.ID)
}

func (r *invitationRepository) GetByID(ctx context.Context, id int32) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	query := `SELECT id, event_id, code, organization, email, participant_type_id, maximum_quota, restriction_id, created_by, created_on
	          FROM invitations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.EventID, &inv.Code, &inv.Organization, &inv.Email, &inv.ParticipantTypeID, &inv.MaximumQuota, &inv.RestrictionID, &inv.CreatedBy, &inv.CreatedOn)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	query := `SELECT id, event_id, code, organization, email, participant_type_id, maximum_quota, restriction_id, created_by, created_on
	          FROM invitations WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&inv.ID, &inv.EventID, &inv.Code, &inv.Organization, &inv.Email, &inv.ParticipantTypeID, &inv.MaximumQuota, &inv.RestrictionID, &inv.CreatedBy, &inv.CreatedOn)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error) {
	query := `SELECT id, event_id, code, organization, email, participant_type_id, maximum_quota, restriction_id, created_by, created_on
	          FROM invitations WHERE event_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.Code, &inv.Organization, &inv.Email, &inv.ParticipantTypeID, &inv.MaximumQuota, &inv.RestrictionID, &inv.CreatedBy, &inv.CreatedOn); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) GetRestriction(ctx context.Context, restrictionID int32) (*domain.Restriction, error) {
	res := &domain.Restriction{}
	query := `SELECT id, event_id, name FROM restrictions WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, restrictionID).Scan(&res.ID, &res.EventID, &res.Name); err != nil {
		return nil, err
	}

	cq := `SELECT id, restriction_id, name, participant_type_id, access_level, quota FROM constraints WHERE restriction_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, cq, restrictionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Constraint
		if err := rows.Scan(&c.ID, &c.RestrictionID, &c.Name, &c.ParticipantTypeID, &c.AccessLevel, &c.Quota); err != nil {
			return nil, err
		}
		res.Constraints = append(res.Constraints, c)
	}
	return res, rows.Err()
}

func (r *invitationRepository) CreateRestriction(ctx context.Context, res *domain.Restriction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO restrictions (event_id, name) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, res.EventID, res.Name).Scan(&res.ID); err != nil {
		return err
	}

	for i := range res.Constraints {
		res.Constraints[i].RestrictionID = res.ID
		cq := `INSERT INTO constraints (restriction_id, name, participant_type_id, access_level, quota) VALUES ($1, $2, $3, $4, $5) RETURNING id`
		if err := tx.QueryRowContext(ctx, cq, res.ID, res.Constraints[i].Name, res.Constraints[i].ParticipantTypeID, res.Constraints[i].AccessLevel, res.Constraints[i].Quota).Scan(&res.Constraints[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
