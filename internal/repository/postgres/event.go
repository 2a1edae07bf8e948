package postgres

import (
	"context"
	"database/sql"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, ev *domain.Event) error {
	query := `INSERT INTO events (name, prefix, venue, start_date, end_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, ev.Name, ev.Prefix, ev.Venue, ev.StartDate, ev.EndDate, time.Now()).Scan(&ev.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	ev := &domain.Event{}
	query := `SELECT id, name, prefix, venue, start_date, end_date, created_on FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ev.ID, &ev.Name, &ev.Prefix, &ev.Venue, &ev.StartDate, &ev.EndDate, &ev.CreatedOn)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, name, prefix, venue, start_date, end_date, created_on FROM events ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Prefix, &ev.Venue, &ev.StartDate, &ev.EndDate, &ev.CreatedOn); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

type participantTypeRepository struct {
	db *sql.DB
}

func NewParticipantTypeRepository(db *sql.DB) repository.ParticipantTypeRepository {
	return &participantTypeRepository{db: db}
}

func (r *participantTypeRepository) Create(ctx context.Context, pt *domain.ParticipantType) error {
	query := `INSERT INTO participant_types (event_id, name, prefix, priority, quota_exempt)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, pt.EventID, pt.Name, pt.Prefix, pt.Priority, pt.QuotaExempt).Scan(&pt.ID)
}

func (r *participantTypeRepository) GetByID(ctx context.Context, id int32) (*domain.ParticipantType, error) {
	pt := &domain.ParticipantType{}
	query := `SELECT id, event_id, name, prefix, priority, quota_exempt FROM participant_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&pt.ID, &pt.EventID, &pt.Name, &pt.Prefix, &pt.Priority, &pt.QuotaExempt)
	if err != nil {
		return nil, err
	}
	return pt, nil
}

func (r *participantTypeRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.ParticipantType, error) {
	query := `SELECT id, event_id, name, prefix, priority, quota_exempt FROM participant_types WHERE event_id = $1 ORDER BY priority, id`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ParticipantType
	for rows.Next() {
		var pt domain.ParticipantType
		if err := rows.Scan(&pt.ID, &pt.EventID, &pt.Name, &pt.Prefix, &pt.Priority, &pt.QuotaExempt); err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

type wishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, w *domain.WishlistEntry) error {
	query := `INSERT INTO wishlist_entries (event_id, organization, email, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, w.EventID, w.Organization, w.Email, time.Now()).Scan(&w.ID)
}

func (r *wishlistRepository) CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM wishlist_entries WHERE event_id = $1 AND organization = $2`
	err := r.db.QueryRowContext(ctx, query, eventID, organization).Scan(&count)
	return count, err
}
