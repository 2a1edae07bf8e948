package postgres

import (
	"database/sql"

	"accreditation-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles all repositories over one connection pool.
type Store struct {
	db *sql.DB
	repository.ParticipantRepository
	repository.WorkflowRepository
	repository.ApprovalRepository
	repository.InvitationRepository
	repository.ParticipantTypeRepository
	repository.EventRepository
	repository.DraftRepository
	repository.WishlistRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		ParticipantRepository:     NewParticipantRepository(db),
		WorkflowRepository:        NewWorkflowRepository(db),
		ApprovalRepository:        NewApprovalRepository(db),
		InvitationRepository:      NewInvitationRepository(db),
		ParticipantTypeRepository: NewParticipantTypeRepository(db),
		EventRepository:           NewEventRepository(db),
		DraftRepository:           NewDraftRepository(db),
		WishlistRepository:        NewWishlistRepository(db),
		UserRepository:            NewUserRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
	}
}
