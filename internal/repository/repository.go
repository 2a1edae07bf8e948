package repository

import (
	"context"
	"errors"
	"time"

	"accreditation-backend/internal/domain"
)

// ErrQuotaExceeded is returned by AdmitParticipant when the serialized quota
// recheck fails inside the registration transaction.
var ErrQuotaExceeded = errors.New("registration quota exceeded")

type ParticipantRepository interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id int32) (*domain.Participant, error)
	GetByCode(ctx context.Context, code string) (*domain.Participant, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// UpdateProgress writes current_step_id and status. The workflow engine
	// is the only caller; nothing else may mutate these columns.
	UpdateProgress(ctx context.Context, id int32, stepID *int32, status domain.ParticipantStatus) error
	ListByEvent(ctx context.Context, eventID int32, status string, page, pageSize int32) ([]domain.Participant, int32, error)

	// Count aggregations for the quota evaluator.
	CountByTypeAndOrganization(ctx context.Context, eventID, participantTypeID int32, organization string) (int32, error)
	CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error)

	// AdmitParticipant re-runs the quota counts and inserts the participant
	// inside one serializable transaction. maxQuota and constraint may be
	// nil (no cap on that axis). Returns ErrQuotaExceeded when either cap
	// is already reached at commit time.
	AdmitParticipant(ctx context.Context, p *domain.Participant, maxQuota *int32, constraint *domain.Constraint) error
}

type WorkflowRepository interface {
	Create(ctx context.Context, wf *domain.Workflow, steps []domain.Step) error
	GetByID(ctx context.Context, id int32) (*domain.Workflow, error)
	GetByEventAndType(ctx context.Context, eventID, participantTypeID int32) (*domain.Workflow, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Workflow, error)

	GetStep(ctx context.Context, stepID int32) (*domain.Step, error)
	// Name lookups are scoped to a single workflow so duplicate step names
	// across workflows cannot collide.
	GetStepByName(ctx context.Context, workflowID int32, name string) (*domain.Step, error)
	GetStepByNameAndAction(ctx context.Context, workflowID int32, name string, action domain.Action) (*domain.Step, error)
	ListSteps(ctx context.Context, workflowID int32) ([]domain.Step, error)
}

type ApprovalRepository interface {
	// Create appends one audit row. There is no update or delete.
	Create(ctx context.Context, a *domain.Approval) error
	ListByParticipant(ctx context.Context, participantID int32) ([]domain.Approval, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id int32) (*domain.Invitation, error)
	GetByCode(ctx context.Context, code string) (*domain.Invitation, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error)
	GetRestriction(ctx context.Context, restrictionID int32) (*domain.Restriction, error)
	CreateRestriction(ctx context.Context, r *domain.Restriction) error
}

type ParticipantTypeRepository interface {
	Create(ctx context.Context, pt *domain.ParticipantType) error
	GetByID(ctx context.Context, id int32) (*domain.ParticipantType, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.ParticipantType, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

type DraftRepository interface {
	Upsert(ctx context.Context, d *domain.Draft) error
	GetByUser(ctx context.Context, userID int32) (*domain.Draft, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type WishlistRepository interface {
	Create(ctx context.Context, w *domain.WishlistEntry) error
	CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
