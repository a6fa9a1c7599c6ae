/*
 * attributes.go, part of golion.
 *
 *
 * Copyright 2026 The golion authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package lion

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Version is the golion version written to the attributes of each run.
const Version = "0.3.0"

// Neighbour holds the settings of the LAMMPS neighbour lists.
type Neighbour struct {
	Skin float64 `yaml:"skin"`
	List string  `yaml:"list"`
}

// Rigid records the species that move as rigid bodies.
type Rigid struct {
	Exists bool  `yaml:"exists"`
	Groups []int `yaml:"groups,omitempty"`
}

// Attributes are the settings and the metadata of a Simulation.
type Attributes struct {
	Name          string            `yaml:"name"`
	Directory     string            `yaml:"directory"`
	Executable    string            `yaml:"executable"`
	GPU           int               `yaml:"gpu,omitempty"`
	ThermoStyles  []string          `yaml:"thermo_styles"`
	ThermoSteps   int               `yaml:"thermo_steps"`
	Timestep      float64           `yaml:"timestep"`
	Domain        [3]float64        `yaml:"domain,flow"`
	Neighbour     Neighbour         `yaml:"neighbour"`
	CoulombCutoff float64           `yaml:"coulomb_cutoff"`
	Version       string            `yaml:"version"`
	Rigid         Rigid             `yaml:"rigid"`
	RunID         string            `yaml:"run_id"`
	Time          time.Time         `yaml:"time,omitempty"`
	OutputFiles   []string          `yaml:"output_files,omitempty"`
	Extra         map[string]string `yaml:"extra,omitempty"`
}

// DefaultAttributes returns the attributes of a new simulation with the
// given name. The directory is left empty.
func DefaultAttributes(name string) Attributes {
	return Attributes{
		Name:          Slugify(name),
		Executable:    "lmp",
		ThermoStyles:  []string{"step", "cpu"},
		ThermoSteps:   10000,
		Timestep:      1e-6,
		Domain:        [3]float64{1e-3, 1e-3, 1e-3},
		Neighbour:     Neighbour{Skin: 1, List: "nsq"},
		CoulombCutoff: 10,
		Version:       Version,
		RunID:         uuid.NewString(),
	}
}

// Slugify lowercases name and replaces blanks with underscores.
// An empty name gives "golion".
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "golion"
	}
	return strings.Join(strings.Fields(name), "_")
}

func (A *Attributes) check() error {
	if A.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %g", A.Timestep)
	}
	if A.ThermoSteps <= 0 {
		return fmt.Errorf("thermo steps must be positive, got %d", A.ThermoSteps)
	}
	for i, d := range A.Domain {
		if d <= 0 {
			return fmt.Errorf("domain half-length %d must be positive, got %g", i, d)
		}
	}
	if A.Neighbour.List == "" {
		return fmt.Errorf("empty neighbour list style")
	}
	if A.CoulombCutoff <= 0 {
		return fmt.Errorf("coulomb cutoff must be positive, got %g", A.CoulombCutoff)
	}
	return nil
}

// Save writes the attributes as YAML to path.
func (A *Attributes) Save(path string) error {
	b, err := yaml.Marshal(A)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("save attributes: %w", err)
	}
	return nil
}

// LoadAttributes reads attributes written by Save.
func LoadAttributes(path string) (*Attributes, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load attributes: %w", err)
	}
	A := new(Attributes)
	if err := yaml.Unmarshal(b, A); err != nil {
		return nil, fmt.Errorf("parse attributes %s: %w", path, err)
	}
	return A, nil
}
