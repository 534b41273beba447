// internal/repositories/repositories.go
// Kontrak repo (user & riwayat keputusan); implementasi: memory & mysql

package repositories

import (
	"context"
	"errors"

	"alphawell/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type UserRepository interface {
	Create(ctx context.Context, u models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

type DecisionFilter struct {
	Verdicts []string // optional: IN (...)
	Limit    int
}

type DecisionRepository interface {
	List(ctx context.Context, f DecisionFilter) ([]models.Decision, error)
}
