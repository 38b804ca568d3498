package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payswift/auth-service/internal/domain"
)

// MemoryUserRepository is an in-memory user store used in tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewMemoryUserRepository builds an empty in-memory store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.MobileNumber == user.MobileNumber || existing.Email == user.Email {
			return ErrDuplicateIdentity
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.MobileNumber == identifier || user.Email == identifier {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// SetStatus flips an account's status, standing in for the external
// activation process.
func (r *MemoryUserRepository) SetStatus(id string, status domain.UserStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return false
	}
	user.Status = status
	user.UpdatedAt = time.Now().UTC()
	return true
}
