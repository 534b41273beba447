// internal/fixtures/fixtures.go
// Fixture demo (user, offset wells, riwayat keputusan) dari YAML ter-embed.
// Nilai dikembalikan sebagai salinan; tidak ada slice global yang bisa dimutasi.

package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"alphawell/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type DemoUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`
}

type Set struct {
	Users         []DemoUser            `yaml:"users"`
	NeighborWells []models.NeighborWell `yaml:"neighbor_wells"`
	Decisions     []models.Decision     `yaml:"decisions"`
}

// Load mem-parse fixture embedded. Setiap panggilan mengembalikan Set baru.
func Load() (*Set, error) {
	return Parse(fixturesYAML)
}

// Parse mem-parse fixture dari bytes YAML (dipakai juga untuk file override).
func Parse(b []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &s, nil
}
