// internal/repositories/memory/user_repo.go
// Repo user in-memory (mode demo / tanpa DB). Dibuat eksplisit di app.New,
// bukan variabel global.

package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"alphawell/internal/fixtures"
	"alphawell/internal/models"
	"alphawell/internal/repositories"
	"alphawell/internal/util"
)

type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // email (lowercase) -> id
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// NewUserRepoFromFixtures menyemai akun demo; password di-hash bcrypt saat startup.
func NewUserRepoFromFixtures(users []fixtures.DemoUser, cost int) (*UserRepo, error) {
	r := NewUserRepo()
	for _, du := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash demo user %s: %w", du.Email, err)
		}
		u := models.User{
			ID:           util.NewID(),
			Name:         du.Name,
			Email:        du.Email,
			Role:         models.ParseRole(du.Role),
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		}
		if err := r.Create(context.Background(), u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *UserRepo) Create(_ context.Context, u models.User) error {
	key := normEmail(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return fmt.Errorf("user %s: %w", u.Email, repositories.ErrDuplicate)
	}
	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normEmail(email)]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func normEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
