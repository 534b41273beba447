// internal/fixtures/fixtures_test.go

package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/fixtures"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := fixtures.Load()
	require.NoError(t, err)
	assert.Len(t, s.Users, 3)
	assert.Len(t, s.NeighborWells, 6)
	assert.Len(t, s.Decisions, 3)

	assert.Equal(t, "W-2847", s.NeighborWells[0].ID)
	assert.InDelta(t, 8.5, s.NeighborWells[0].NPV, 1e-9)
	assert.Equal(t, "Evaluate Further", s.Decisions[1].Verdict)
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	a, err := fixtures.Load()
	require.NoError(t, err)
	a.NeighborWells[0].NPV = -1

	b, err := fixtures.Load()
	require.NoError(t, err)
	assert.InDelta(t, 8.5, b.NeighborWells[0].NPV, 1e-9)
}

func TestParseInvalid(t *testing.T) {
	_, err := fixtures.Parse([]byte("users: [::"))
	assert.Error(t, err)
}
