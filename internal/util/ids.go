// internal/util/ids.go
// Generator ID untuk request, user, run analisis & refresh token

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}
