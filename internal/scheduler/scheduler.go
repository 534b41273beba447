// internal/scheduler/scheduler.go
// Job terjadwal: pruning refresh token yang sudah di-revoke dan expired

package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pruner dipenuhi oleh *auth.Manager.
type Pruner interface {
	PruneRevoked() int
}

type Scheduler struct {
	cron   *cron.Cron
	pruner Pruner
	expr   string
	logger *zap.Logger
}

// NewScheduler: expr memakai parser standar robfig/cron (5 field atau "@every 1h").
func NewScheduler(expr string, pruner Pruner, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if expr == "" {
		expr = "@every 1h"
	}
	return &Scheduler{cron: cron.New(), pruner: pruner, expr: expr, logger: logger}
}

// Start mendaftarkan job lalu menjalankan cron; ekspresi invalid dikembalikan sebagai error.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.expr, s.PruneTokens); err != nil {
		return fmt.Errorf("schedule token prune %q: %w", s.expr, err)
	}
	s.logger.Info("starting scheduler", zap.String("prune_expr", s.expr))
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) PruneTokens() {
	n := s.pruner.PruneRevoked()
	if n > 0 {
		s.logger.Info("pruned revoked refresh tokens", zap.Int("count", n))
	}
}
