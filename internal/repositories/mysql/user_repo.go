// internal/repositories/mysql/user_repo.go
// Repo user di MySQL
//
// Asumsi skema:
//   users(id CHAR(36) PK, name VARCHAR, email VARCHAR UNIQUE, role VARCHAR,
//         password_hash VARCHAR, created_at DATETIME)
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	drv "github.com/go-sql-driver/mysql"

	"alphawell/internal/models"
	"alphawell/internal/repositories"
)

// kode error MySQL untuk duplicate key
const errDupEntry = 1062

type UserRepo struct{ DB *sql.DB }

func (r *UserRepo) Create(ctx context.Context, u models.User) error {
	const q = `
		INSERT INTO users (id, name, email, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, q,
		u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), string(u.Role), u.PasswordHash, u.CreatedAt)
	if err != nil {
		var me *drv.MySQLError
		if errors.As(err, &me) && me.Number == errDupEntry {
			return fmt.Errorf("user %s: %w", u.Email, repositories.ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const q = `
		SELECT id, name, email, role, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, strings.ToLower(strings.TrimSpace(email))))
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (models.User, error) {
	const q = `
		SELECT id, name, email, role, password_hash, created_at
		FROM users
		WHERE id = ?
		LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, id))
}

func (r *UserRepo) scanOne(row *sql.Row) (models.User, error) {
	var (
		u    models.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, repositories.ErrNotFound
		}
		return models.User{}, fmt.Errorf("scan user: %w", err)
	}
	u.Role = models.ParseRole(role)
	return u, nil
}
