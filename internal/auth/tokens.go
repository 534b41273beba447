// internal/auth/tokens.go
// Penerbitan & verifikasi JWT (access + refresh) untuk user AlphaWell

package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"alphawell/internal/models"
	"alphawell/internal/util"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevoked      = errors.New("token revoked")
)

type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresAt int64  `json:"expires_at"` // epoch detik (access)
}

// Manager menandatangani token HS256 dan menyimpan jti refresh yang sudah di-revoke.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      util.Clock

	mu      sync.RWMutex
	revoked map[string]time.Time // jti -> expiry asli
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration, clock util.Clock) *Manager {
	if clock == nil {
		clock = util.RealClock{}
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		clock:      clock,
		revoked:    make(map[string]time.Time),
	}
}

// Issue membuat pasangan access + refresh untuk user.
func (m *Manager) Issue(u models.User) (Pair, error) {
	now := m.clock.Now()
	accessExp := now.Add(m.accessTTL)

	access, err := m.sign(Claims{
		Email: u.Email,
		Role:  string(u.Role),
		Type:  TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExp),
		},
	})
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.sign(Claims{
		Type: TypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewID(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		},
	})
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh, ExpiresAt: accessExp.Unix()}, nil
}

// ParseAccess memvalidasi access token dan mengembalikan claims-nya.
func (m *Manager) ParseAccess(token string) (*Claims, error) {
	return m.parse(token, TypeAccess)
}

// ParseRefresh memvalidasi refresh token (termasuk cek revoke).
func (m *Manager) ParseRefresh(token string) (*Claims, error) {
	c, err := m.parse(token, TypeRefresh)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	_, revoked := m.revoked[c.ID]
	m.mu.RUnlock()
	if revoked {
		return nil, ErrRevoked
	}
	return c, nil
}

// Revoke menandai refresh token tidak berlaku lagi (logout).
func (m *Manager) Revoke(token string) error {
	c, err := m.ParseRefresh(token)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.revoked[c.ID] = c.ExpiresAt.Time
	m.mu.Unlock()
	return nil
}

// PruneRevoked membuang jti yang token aslinya sudah expired; mengembalikan jumlah yang dibuang.
func (m *Manager) PruneRevoked() int {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for jti, exp := range m.revoked {
		if !exp.After(now) {
			delete(m.revoked, jti)
			n++
		}
	}
	return n
}

// RevokedCount dipakai metrics & test.
func (m *Manager) RevokedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.revoked)
}

func (m *Manager) sign(c Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", c.Type, err)
	}
	return s, nil
}

func (m *Manager) parse(tokenStr, typ string) (*Claims, error) {
	c := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if c.Type != typ || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
