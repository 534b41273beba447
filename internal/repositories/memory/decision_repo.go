// internal/repositories/memory/decision_repo.go
package memory

import (
	"context"

	"alphawell/internal/models"
	"alphawell/internal/repositories"
)

// DecisionRepo membaca riwayat keputusan dari fixture (read-only).
type DecisionRepo struct {
	items []models.Decision
}

func NewDecisionRepo(items []models.Decision) *DecisionRepo {
	cp := make([]models.Decision, len(items))
	copy(cp, items)
	return &DecisionRepo{items: cp}
}

func (r *DecisionRepo) List(_ context.Context, f repositories.DecisionFilter) ([]models.Decision, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 100
	}
	allow := map[string]bool{}
	for _, v := range f.Verdicts {
		allow[v] = true
	}

	out := make([]models.Decision, 0, len(r.items))
	for _, d := range r.items {
		if len(allow) > 0 && !allow[d.Verdict] {
			continue
		}
		out = append(out, d)
		if len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}
