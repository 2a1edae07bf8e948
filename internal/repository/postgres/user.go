package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, name, password_hash, roles, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	u.CreatedOn = now
	u.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, pq.Array(rolesToStrings(u.Roles)), now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var roles pq.StringArray
	query := `SELECT id, email, name, password_hash, roles, created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &roles, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	u.Roles = stringsToRoles(roles)
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	var roles pq.StringArray
	query := `SELECT id, email, name, password_hash, roles, created_on, updated_on FROM users WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &roles, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	u.Roles = stringsToRoles(roles)
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, name=$2, roles=$3, updated_on=$4 WHERE id=$5`
	u.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, pq.Array(rolesToStrings(u.Roles)), u.UpdatedOn, u.ID)
	return err
}

func rolesToStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func stringsToRoles(in []string) []domain.Role {
	out := make([]domain.Role, len(in))
	for i, s := range in {
		out[i] = domain.Role(s)
	}
	return out
}
