package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ThellaPrasanthi/complain-system/internal/domain"
)

// ErrUserNotFound is returned when no credential record matches.
var ErrUserNotFound = errors.New("user not found")

// UserStore defines credential lookup. Implementations are interchangeable:
// a seeded in-memory set or a persisted table.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type userStore struct {
	pool *pgxpool.Pool
}

// NewUserStore returns a Postgres-backed implementation.
func NewUserStore(pool *pgxpool.Pool) UserStore {
	return &userStore{pool: pool}
}

func (r *userStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT username, password, role
        FROM users WHERE username=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.Password,
		&user.Role,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserStore returns an in-memory store seeded with the given users.
func NewMemoryUserStore(users ...domain.User) UserStore {
	store := &memoryUserStore{users: make(map[string]domain.User, len(users))}
	for _, user := range users {
		store.users[user.Username] = user
	}
	return store
}

func (s *memoryUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}
