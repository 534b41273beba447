// internal/repositories/mysql/schema.go
// DDL + seed data demo (dipakai oleh `forecast seed`)

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"alphawell/internal/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36)     NOT NULL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		role          VARCHAR(32)  NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at    DATETIME     NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS decision_history (
		id               VARCHAR(64)  NOT NULL PRIMARY KEY,
		name             VARCHAR(255) NOT NULL,
		decided_on       DATE         NOT NULL,
		formation        VARCHAR(128) NOT NULL,
		verdict          VARCHAR(32)  NOT NULL,
		npv_musd         DOUBLE       NOT NULL,
		irr_pct          DOUBLE       NOT NULL,
		eur_bbl          DOUBLE       NOT NULL,
		carbon_intensity DOUBLE       NOT NULL,
		total_co2_t      DOUBLE       NOT NULL,
		INDEX idx_decided_on (decided_on)
	)`,
}

// EnsureSchema membuat tabel kalau belum ada.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Upsert menulis satu keputusan (id sama = update).
func (r *DecisionRepo) Upsert(ctx context.Context, d models.Decision) error {
	on, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return fmt.Errorf("decision %s: bad date %q: %w", d.ID, d.Date, err)
	}
	const q = `
		INSERT INTO decision_history
			(id, name, decided_on, formation, verdict, npv_musd, irr_pct, eur_bbl, carbon_intensity, total_co2_t)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), decided_on = VALUES(decided_on), formation = VALUES(formation),
			verdict = VALUES(verdict), npv_musd = VALUES(npv_musd), irr_pct = VALUES(irr_pct),
			eur_bbl = VALUES(eur_bbl), carbon_intensity = VALUES(carbon_intensity), total_co2_t = VALUES(total_co2_t)`
	if _, err := r.DB.ExecContext(ctx, q, d.ID, d.Name, on, d.Formation, d.Verdict,
		d.NPV, d.IRR, d.EUR, d.CarbonIntensity, d.TotalCO2); err != nil {
		return fmt.Errorf("upsert decision %s: %w", d.ID, err)
	}
	return nil
}
