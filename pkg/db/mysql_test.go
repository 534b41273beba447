// pkg/db/mysql_test.go

package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSNForcesParseTime(t *testing.T) {
	out, err := NormalizeDSN("user:pass@tcp(localhost:3306)/alphawell")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "parseTime=true"), out)
}

func TestNormalizeDSNInvalid(t *testing.T) {
	_, err := NormalizeDSN("::not a dsn")
	assert.Error(t, err)
}
