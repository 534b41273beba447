// internal/repositories/mysql/decision_repo.go
// Repo riwayat keputusan drilling
//
// Asumsi skema:
//   decision_history(id VARCHAR PK, name VARCHAR, decided_on DATE, formation VARCHAR,
//                    verdict VARCHAR, npv_musd DOUBLE, irr_pct DOUBLE, eur_bbl DOUBLE,
//                    carbon_intensity DOUBLE, total_co2_t DOUBLE)
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"alphawell/internal/models"
	"alphawell/internal/repositories"
)

type DecisionRepo struct{ DB *sql.DB }

func (r *DecisionRepo) List(ctx context.Context, f repositories.DecisionFilter) ([]models.Decision, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 100
	}

	var sb strings.Builder
	var args []any
	sb.WriteString(`
		SELECT id, name, decided_on, formation, verdict, npv_musd, irr_pct, eur_bbl, carbon_intensity, total_co2_t
		FROM decision_history
		WHERE 1=1`)

	if len(f.Verdicts) > 0 {
		sb.WriteString(` AND verdict IN (` + placeholders(len(f.Verdicts)) + `)`)
		for _, v := range f.Verdicts {
			args = append(args, v)
		}
	}
	sb.WriteString(` ORDER BY decided_on DESC LIMIT ?`)
	args = append(args, f.Limit)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query decision_history: %w", err)
	}
	defer rows.Close()

	var out []models.Decision
	for rows.Next() {
		var (
			d  models.Decision
			on time.Time
		)
		if err := rows.Scan(&d.ID, &d.Name, &on, &d.Formation, &d.Verdict,
			&d.NPV, &d.IRR, &d.EUR, &d.CarbonIntensity, &d.TotalCO2); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.Date = on.Format("2006-01-02")
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}
