/*
 * recipe.go, part of golion.
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

// Package recipe describes golion simulations in YAML files.
//
// A recipe has a name, optional overrides of the simulation attributes
// and an ordered list of steps. Each step has a single key naming the
// item it adds to the simulation:
//
//	name: chain
//	seed: 42
//	attributes:
//	  thermo_steps: 1000
//	steps:
//	  - ioncloud: {name: ca, mass: 40, charge: 1, radius: 1e-4, number: 5}
//	  - linearpaultrap: {ions: ca, radius: 3.75e-3, length: 2.75e-3, kappa: 0.244, frequency: 3.85e6, a: -0.001, q: 0.3}
//	  - langevinbath: {temperature: 3e-4, damping: 2e-5}
//	  - dump: {file: positions.txt, variables: [x, y, z]}
//	  - evolve: 30000
//
// Ion species, and items whose outputs are dumped, are referred to by
// their recipe name. In the variables of dump and timeaverage steps,
// "@name" expands to all the outputs of the named item.
package recipe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	lion "github.com/iontrap/golion"
)

// Recipe is a YAML description of a simulation. It can be instanced with
// Load or Parse, or by hand, in which case the Check method should be
// called before Build.
type Recipe struct {
	Name       string    `yaml:"name"`
	Seed       *int64    `yaml:"seed,omitempty"`
	Attributes Overrides `yaml:"attributes,omitempty"`
	Steps      []Step    `yaml:"steps"`

	//the file the recipe was read from, if any.
	path string
}

// Overrides replace the default attributes of the simulation. Unset
// fields keep their defaults.
type Overrides struct {
	Executable    *string           `yaml:"executable,omitempty"`
	GPU           *int              `yaml:"gpu,omitempty"`
	Timestep      *float64          `yaml:"timestep,omitempty"`
	ThermoSteps   *int              `yaml:"thermo_steps,omitempty"`
	ThermoStyles  []string          `yaml:"thermo_styles,omitempty"`
	Domain        *[3]float64       `yaml:"domain,omitempty"`
	CoulombCutoff *float64          `yaml:"coulomb_cutoff,omitempty"`
	Neighbour     *lion.Neighbour   `yaml:"neighbour,omitempty"`
	Extra         map[string]string `yaml:"extra,omitempty"`
}

func (o Overrides) apply(A *lion.Attributes) {
	if o.Executable != nil {
		A.Executable = *o.Executable
	}
	if o.GPU != nil {
		A.GPU = *o.GPU
	}
	if o.Timestep != nil {
		A.Timestep = *o.Timestep
	}
	if o.ThermoSteps != nil {
		A.ThermoSteps = *o.ThermoSteps
	}
	if len(o.ThermoStyles) > 0 {
		A.ThermoStyles = append([]string(nil), o.ThermoStyles...)
	}
	if o.Domain != nil {
		A.Domain = *o.Domain
	}
	if o.CoulombCutoff != nil {
		A.CoulombCutoff = *o.CoulombCutoff
	}
	if o.Neighbour != nil {
		A.Neighbour = *o.Neighbour
	}
	if len(o.Extra) > 0 {
		if A.Extra == nil {
			A.Extra = make(map[string]string, len(o.Extra))
		}
		for k, v := range o.Extra {
			A.Extra[k] = v
		}
	}
}

// Load opens and decodes the recipe file path, and checks it.
func Load(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.path = path
	return r, nil
}

// Parse decodes a recipe from r, and checks it.
func Parse(r io.Reader) (*Recipe, error) {
	var R Recipe
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&R); err != nil {
		return nil, err
	}
	if err := R.Check(); err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	return &R, nil
}

// Path returns the file the recipe was loaded from, or "".
func (R *Recipe) Path() string { return R.path }

// Check returns an error if the recipe is not well formed. It does not
// check the physics, which is done when the simulation is built.
func (R *Recipe) Check() error {
	if len(R.Steps) == 0 {
		return fmt.Errorf("recipe has no steps")
	}
	names := make(map[string]bool)
	for i := range R.Steps {
		s := &R.Steps[i]
		kind, err := s.kind()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		name := s.name()
		if name == "" {
			continue
		}
		if names[name] {
			return fmt.Errorf("step %d (%s): name %q used twice", i+1, kind, name)
		}
		names[name] = true
	}
	return nil
}
