// internal/repositories/mysql/repo_test.go
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	drv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/models"
	"alphawell/internal/repositories"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var userCols = []string{"id", "name", "email", "role", "password_hash", "created_at"}

func TestUserCreateDuplicateMapsToErrDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := &UserRepo{DB: db}
	u := models.User{ID: "u1", Name: "Ana", Email: " Ana@X.co ", Role: models.RoleOperator, PasswordHash: "h", CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u1", "Ana", "ana@x.co", string(models.RoleOperator), "h", sqlmock.AnyArg()).
		WillReturnError(&drv.MySQLError{Number: errDupEntry, Message: "Duplicate entry"})
	err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("connection reset"))
	err = repo.Create(context.Background(), u)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrDuplicate)
	assert.Contains(t, err.Error(), "insert user")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFind(t *testing.T) {
	db, mock := newMock(t)
	repo := &UserRepo{DB: db}
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = ? LIMIT 1")).
		WithArgs("ana@x.co").
		WillReturnRows(sqlmock.NewRows(userCols))
	_, err := repo.FindByEmail(context.Background(), "  ANA@x.co")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ? LIMIT 1")).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u2", "Budi", "budi@x.co", "ANALYST", "h", created))
	u, err := repo.FindByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, "budi@x.co", u.Email)
	assert.Equal(t, models.RoleAnalyst, u.Role)
	assert.True(t, created.Equal(u.CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

var decisionCols = []string{"id", "name", "decided_on", "formation", "verdict",
	"npv_musd", "irr_pct", "eur_bbl", "carbon_intensity", "total_co2_t"}

func TestDecisionListVerdictFilter(t *testing.T) {
	db, mock := newMock(t)
	repo := &DecisionRepo{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND verdict IN (?,?) ORDER BY decided_on DESC LIMIT ?")).
		WithArgs("Drill", "High Risk", int64(100)).
		WillReturnRows(sqlmock.NewRows(decisionCols).
			AddRow("d1", "Eagle 1H", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "WOLFCAMP", "Drill", 12.4, 31.0, 410000.0, 38.2, 52000.0))

	got, err := repo.List(context.Background(), repositories.DecisionFilter{Verdicts: []string{"Drill", "High Risk"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-05", got[0].Date)
	assert.Equal(t, "Drill", got[0].Verdict)
	assert.Equal(t, 12.4, got[0].NPV)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionListLimitBounds(t *testing.T) {
	db, mock := newMock(t)
	repo := &DecisionRepo{DB: db}

	for _, tc := range []struct {
		limit int
		want  int64
	}{{0, 100}, {1000, 100}, {25, 25}} {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 ORDER BY decided_on DESC LIMIT ?")).
			WithArgs(tc.want).
			WillReturnRows(sqlmock.NewRows(decisionCols))
		got, err := repo.List(context.Background(), repositories.DecisionFilter{Limit: tc.limit})
		require.NoError(t, err)
		assert.Empty(t, got)
	}

	mock.ExpectQuery("FROM decision_history").WillReturnError(errors.New("boom"))
	_, err := repo.List(context.Background(), repositories.DecisionFilter{})
	assert.ErrorContains(t, err, "query decision_history")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionUpsert(t *testing.T) {
	db, mock := newMock(t)
	repo := &DecisionRepo{DB: db}
	d := models.Decision{ID: "d1", Name: "Eagle 1H", Date: "2024-03-05", Formation: "WOLFCAMP",
		Verdict: "Drill", NPV: 12.4, IRR: 31, EUR: 410000, CarbonIntensity: 38.2, TotalCO2: 52000}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO decision_history")).
		WithArgs("d1", "Eagle 1H", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "WOLFCAMP", "Drill",
			12.4, 31.0, 410000.0, 38.2, 52000.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Upsert(context.Background(), d))

	// tanggal invalid ditolak sebelum menyentuh DB
	d.Date = "05/03/2024"
	assert.ErrorContains(t, repo.Upsert(context.Background(), d), "bad date")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS decision_history")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, EnsureSchema(context.Background(), db))

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnError(errors.New("denied"))
	assert.ErrorContains(t, EnsureSchema(context.Background(), db), "ensure schema")

	assert.NoError(t, mock.ExpectationsWereMet())
}
