// internal/scheduler/scheduler_test.go

package scheduler_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"alphawell/internal/scheduler"
)

type countingPruner struct{ calls atomic.Int32 }

func (p *countingPruner) PruneRevoked() int {
	p.calls.Add(1)
	return 2
}

func TestStartRejectsInvalidCronExpr(t *testing.T) {
	s := scheduler.NewScheduler("not a cron", &countingPruner{}, nil)
	assert.Error(t, s.Start())
}

func TestPruneTokens(t *testing.T) {
	p := &countingPruner{}
	s := scheduler.NewScheduler("", p, nil)
	assert.NoError(t, s.Start())
	s.PruneTokens()
	s.Stop()
	assert.Equal(t, int32(1), p.calls.Load())
}
