/*
 * steps.go, part of golion.
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

package recipe

import (
	"fmt"
	"strings"
)

// IonsStep adds an ion species, either a random cloud (Radius and
// Number) or ions at the given Positions.
type IonsStep struct {
	Name      string       `yaml:"name"`
	UID       int          `yaml:"uid,omitempty"`
	Mass      float64      `yaml:"mass"`
	Charge    float64      `yaml:"charge"`
	Radius    float64      `yaml:"radius,omitempty"`
	Number    int          `yaml:"number,omitempty"`
	Positions [][3]float64 `yaml:"positions,omitempty"`
	Rigid     bool         `yaml:"rigid,omitempty"`
}

type EFieldStep struct {
	Name string  `yaml:"name,omitempty"`
	Ex   float64 `yaml:"ex"`
	Ey   float64 `yaml:"ey"`
	Ez   float64 `yaml:"ez"`
}

// TrapStep adds a linear Paul trap. Instead of the voltages, the Mathieu
// parameters a and q of the species Ions can be given.
type TrapStep struct {
	Name          string   `yaml:"name,omitempty"`
	Ions          string   `yaml:"ions,omitempty"`
	Radius        float64  `yaml:"radius"`
	Length        float64  `yaml:"length"`
	Kappa         float64  `yaml:"kappa"`
	Frequency     float64  `yaml:"frequency"`
	Voltage       float64  `yaml:"voltage,omitempty"`
	EndcapVoltage float64  `yaml:"endcapvoltage,omitempty"`
	Anisotropy    float64  `yaml:"anisotropy,omitempty"`
	A             *float64 `yaml:"a,omitempty"`
	Q             *float64 `yaml:"q,omitempty"`
	Pseudo        bool     `yaml:"pseudo,omitempty"`
}

// SpeciesForceStep is a force on one species with a coefficient per
// direction, like a harmonic potential or laser cooling.
type SpeciesForceStep struct {
	Name string     `yaml:"name,omitempty"`
	Ions string     `yaml:"ions"`
	K    [3]float64 `yaml:"k,flow"`
}

type LangevinStep struct {
	Name        string  `yaml:"name,omitempty"`
	Temperature float64 `yaml:"temperature"`
	Damping     float64 `yaml:"damping"`
}

type HeatingStep struct {
	Name string  `yaml:"name,omitempty"`
	Ions string  `yaml:"ions"`
	Rate float64 `yaml:"rate"`
}

type DumpStep struct {
	Name      string   `yaml:"name,omitempty"`
	File      string   `yaml:"file"`
	Variables []string `yaml:"variables,omitempty,flow"`
	Steps     int      `yaml:"steps,omitempty"`
}

type AverageStep struct {
	Name      string   `yaml:"name,omitempty"`
	Variables []string `yaml:"variables,flow"`
	Steps     int      `yaml:"steps"`
}

type SquareSumStep struct {
	Name      string   `yaml:"name,omitempty"`
	Variables []string `yaml:"variables,flow"`
}

type ComputeStep struct {
	Name  string   `yaml:"name,omitempty"`
	Style string   `yaml:"style"`
	Args  []string `yaml:"args,omitempty,flow"`
}

type VelocityStep struct {
	Temperature  float64 `yaml:"temperature"`
	ZeroMomentum bool    `yaml:"zeromomentum,omitempty"`
}

type MinimiseStep struct {
	Etol            float64 `yaml:"etol"`
	Ftol            float64 `yaml:"ftol"`
	MaxIter         int     `yaml:"maxiter"`
	MaxEval         int     `yaml:"maxeval"`
	MaxDisplacement float64 `yaml:"maxdisplacement"`
}

// Step is one item of a recipe. Exactly one field must be set.
type Step struct {
	IonCloud          *IonsStep         `yaml:"ioncloud,omitempty"`
	PlaceIons         *IonsStep         `yaml:"placeions,omitempty"`
	EField            *EFieldStep       `yaml:"efield,omitempty"`
	LinearPaulTrap    *TrapStep         `yaml:"linearpaultrap,omitempty"`
	HarmonicPotential *SpeciesForceStep `yaml:"harmonicpotential,omitempty"`
	LangevinBath      *LangevinStep     `yaml:"langevinbath,omitempty"`
	LaserCool         *SpeciesForceStep `yaml:"lasercool,omitempty"`
	IonNeutralHeating *HeatingStep      `yaml:"ionneutralheating,omitempty"`
	Dump              *DumpStep         `yaml:"dump,omitempty"`
	TimeAverage       *AverageStep      `yaml:"timeaverage,omitempty"`
	SquareSum         *SquareSumStep    `yaml:"squaresum,omitempty"`
	Compute           *ComputeStep      `yaml:"compute,omitempty"`
	Evolve            *int              `yaml:"evolve,omitempty"`
	ThermalVelocities *VelocityStep     `yaml:"thermalvelocities,omitempty"`
	Minimise          *MinimiseStep     `yaml:"minimise,omitempty"`
	Command           []string          `yaml:"command,omitempty"`
	Unfix             *string           `yaml:"unfix,omitempty"`
}

//kind returns the key of the step, or an error if not exactly one is set.
func (s *Step) kind() (string, error) {
	var set []string
	add := func(ok bool, key string) {
		if ok {
			set = append(set, key)
		}
	}
	add(s.IonCloud != nil, "ioncloud")
	add(s.PlaceIons != nil, "placeions")
	add(s.EField != nil, "efield")
	add(s.LinearPaulTrap != nil, "linearpaultrap")
	add(s.HarmonicPotential != nil, "harmonicpotential")
	add(s.LangevinBath != nil, "langevinbath")
	add(s.LaserCool != nil, "lasercool")
	add(s.IonNeutralHeating != nil, "ionneutralheating")
	add(s.Dump != nil, "dump")
	add(s.TimeAverage != nil, "timeaverage")
	add(s.SquareSum != nil, "squaresum")
	add(s.Compute != nil, "compute")
	add(s.Evolve != nil, "evolve")
	add(s.ThermalVelocities != nil, "thermalvelocities")
	add(s.Minimise != nil, "minimise")
	add(s.Command != nil, "command")
	add(s.Unfix != nil, "unfix")
	switch len(set) {
	case 0:
		return "", fmt.Errorf("empty step")
	case 1:
		return set[0], nil
	default:
		return "", fmt.Errorf("step sets %s, only one is allowed", strings.Join(set, ", "))
	}
}

//name returns the recipe name of the item the step adds, if any.
func (s *Step) name() string {
	switch {
	case s.IonCloud != nil:
		return s.IonCloud.Name
	case s.PlaceIons != nil:
		return s.PlaceIons.Name
	case s.EField != nil:
		return s.EField.Name
	case s.LinearPaulTrap != nil:
		return s.LinearPaulTrap.Name
	case s.HarmonicPotential != nil:
		return s.HarmonicPotential.Name
	case s.LangevinBath != nil:
		return s.LangevinBath.Name
	case s.LaserCool != nil:
		return s.LaserCool.Name
	case s.IonNeutralHeating != nil:
		return s.IonNeutralHeating.Name
	case s.Dump != nil:
		return s.Dump.Name
	case s.TimeAverage != nil:
		return s.TimeAverage.Name
	case s.SquareSum != nil:
		return s.SquareSum.Name
	case s.Compute != nil:
		return s.Compute.Name
	}
	return ""
}
