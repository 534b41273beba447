// internal/models/models.go
// Entitas di luar pipeline forecast: user, offset well, riwayat keputusan

package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleInvestor Role = "investor"
	RoleOperator Role = "operator"
	RoleAnalyst  Role = "analyst"
)

// ParseRole menerima "INVESTOR"/"investor"; kosong atau tidak dikenal = investor.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOperator:
		return RoleOperator
	case RoleAnalyst:
		return RoleAnalyst
	default:
		return RoleInvestor
	}
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NeighborWell adalah offset well untuk benchmark spasial.
type NeighborWell struct {
	ID              string  `json:"id" yaml:"id"`
	Latitude        float64 `json:"lat" yaml:"lat"`
	Longitude       float64 `json:"lng" yaml:"lng"`
	EUR             float64 `json:"eur" yaml:"eur"` // bbl
	NPV             float64 `json:"npv" yaml:"npv"` // $M
	Formation       string  `json:"formation" yaml:"formation"`
	CarbonIntensity float64 `json:"carbonIntensity" yaml:"carbonIntensity"` // g CO2e/BOE
	Status          string  `json:"status" yaml:"status"`
	Distance        float64 `json:"distance" yaml:"distance"` // mi
}

// Decision adalah riwayat keputusan drilling sebelumnya (read-only).
type Decision struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Date            string  `json:"date" yaml:"date"` // YYYY-MM-DD
	Formation       string  `json:"formation" yaml:"formation"`
	Verdict         string  `json:"verdict" yaml:"verdict"`
	NPV             float64 `json:"npv" yaml:"npv"`
	IRR             float64 `json:"irr" yaml:"irr"`
	EUR             float64 `json:"eur" yaml:"eur"`
	CarbonIntensity float64 `json:"carbonIntensity" yaml:"carbonIntensity"`
	TotalCO2        float64 `json:"totalCO2" yaml:"totalCO2"`
}
