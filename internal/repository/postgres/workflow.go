package postgres

import (
	"context"
	"database/sql"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

type workflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) repository.WorkflowRepository {
	return &workflowRepository{db: db}
}

// Create inserts the workflow and its steps, then links the next-step chain
// in declaration order. Runs in one transaction so a half-linked chain is
// never visible.
func (r *workflowRepository) Create(ctx context.Context, wf *domain.Workflow, steps []domain.Step) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO workflows (event_id, participant_type_id, name) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, wf.EventID, wf.ParticipantTypeID, wf.Name).Scan(&wf.ID); err != nil {
		return err
	}

	ids := make([]int32, len(steps))
	for i := range steps {
		steps[i].WorkflowID = wf.ID
		steps[i].OrderIndex = int32(i)
		q := `INSERT INTO steps (workflow_id, order_index, name, action, role) VALUES ($1, $2, $3, $4, $5) RETURNING id`
		if err := tx.QueryRowContext(ctx, q, wf.ID, steps[i].OrderIndex, steps[i].Name, steps[i].Action, steps[i].Role).Scan(&ids[i]); err != nil {
			return err
		}
		steps[i].ID = ids[i]
	}

	for i := 0; i < len(steps)-1; i++ {
		q := `UPDATE steps SET next_step_id = $1 WHERE id = $2`
		if _, err := tx.ExecContext(ctx, q, ids[i+1], ids[i]); err != nil {
			return err
		}
		steps[i].NextStepID = &ids[i+1]
	}

	if len(ids) > 0 {
		q := `UPDATE workflows SET first_step_id = $1 WHERE id = $2`
		if _, err := tx.ExecContext(ctx, q, ids[0], wf.ID); err != nil {
			return err
		}
		wf.FirstStepID = &ids[0]
	}

	return tx.Commit()
}

func (r *workflowRepository) GetByID(ctx context.Context, id int32) (*domain.Workflow, error) {
	wf := &domain.Workflow{}
	query := `SELECT id, event_id, participant_type_id, name, first_step_id FROM workflows WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&wf.ID, &wf.EventID, &wf.ParticipantTypeID, &wf.Name, &wf.FirstStepID)
	if err != nil {
		return nil, err
	}
	return wf, nil
}

func (r *workflowRepository) GetByEventAndType(ctx context.Context, eventID, participantTypeID int32) (*domain.Workflow, error) {
	wf := &domain.Workflow{}
	query := `SELECT id, event_id, participant_type_id, name, first_step_id FROM workflows WHERE event_id = $1 AND participant_type_id = $2`
	err := r.db.QueryRowContext(ctx, query, eventID, participantTypeID).Scan(&wf.ID, &wf.EventID, &wf.ParticipantTypeID, &wf.Name, &wf.FirstStepID)
	if err != nil {
		return nil, err
	}
	return wf, nil
}

func (r *workflowRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Workflow, error) {
	query := `SELECT id, event_id, participant_type_id, name, first_step_id FROM workflows WHERE event_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []domain.Workflow
	for rows.Next() {
		var wf domain.Workflow
		if err := rows.Scan(&wf.ID, &wf.EventID, &wf.ParticipantTypeID, &wf.Name, &wf.FirstStepID); err != nil {
			return nil, err
		}
		workflows = append(workflows, wf)
	}
	return workflows, rows.Err()
}

const stepColumns = `id, workflow_id, order_index, name, action, role, next_step_id`

func scanStep(row interface{ Scan(...any) error }) (*domain.Step, error) {
	s := &domain.Step{}
	err := row.Scan(&s.ID, &s.WorkflowID, &s.OrderIndex, &s.Name, &s.Action, &s.Role, &s.NextStepID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *workflowRepository) GetStep(ctx context.Context, stepID int32) (*domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE id = $1`
	return scanStep(r.db.QueryRowContext(ctx, query, stepID))
}

func (r *workflowRepository) GetStepByName(ctx context.Context, workflowID int32, name string) (*domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE workflow_id = $1 AND name = $2`
	return scanStep(r.db.QueryRowContext(ctx, query, workflowID, name))
}

func (r *workflowRepository) GetStepByNameAndAction(ctx context.Context, workflowID int32, name string, action domain.Action) (*domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE workflow_id = $1 AND name = $2 AND action = $3`
	return scanStep(r.db.QueryRowContext(ctx, query, workflowID, name, action))
}

func (r *workflowRepository) ListSteps(ctx context.Context, workflowID int32) ([]domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE workflow_id = $1 ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, workflowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []domain.Step
	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		steps = append(steps, *s)
	}
	return steps, rows.Err()
}
