/*
 * build.go, part of golion.
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

	lion "github.com/iontrap/golion"
)

//builder keeps the named items of a recipe while it is built.
type builder struct {
	sim     *lion.Simulation
	species map[string]*lion.Ions
	items   map[string]lion.Item
}

// Build returns the simulation described by the recipe, with its
// directory under dir. If the recipe has a seed, the random numbers of
// golion are seeded with it first.
func (R *Recipe) Build(dir string) (*lion.Simulation, error) {
	if err := R.Check(); err != nil {
		return nil, err
	}
	if R.Seed != nil {
		lion.SetSeed(*R.Seed)
	}
	sim, err := lion.NewSimulationIn(dir, R.Name)
	if err != nil {
		return nil, err
	}
	R.Attributes.apply(&sim.Attributes)
	if R.path != "" {
		sim.Sources = append(sim.Sources, R.path)
	}
	b := &builder{sim: sim, species: make(map[string]*lion.Ions), items: make(map[string]lion.Item)}
	for i := range R.Steps {
		s := &R.Steps[i]
		kind, _ := s.kind()
		if err := b.add(s); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}
	}
	return sim, nil
}

func (b *builder) ions(name string) (*lion.Ions, error) {
	if name == "" {
		return nil, fmt.Errorf("no ion species given")
	}
	I, ok := b.species[name]
	if !ok {
		return nil, fmt.Errorf("unknown ion species %q", name)
	}
	return I, nil
}

//variables expands "@name" references to the outputs of the named item.
func (b *builder) variables(vars []string) ([]string, error) {
	var ret []string
	for _, v := range vars {
		if !strings.HasPrefix(v, "@") {
			ret = append(ret, v)
			continue
		}
		it, ok := b.items[v[1:]]
		if !ok {
			return nil, fmt.Errorf("unknown item %q", v[1:])
		}
		o, ok := it.(lion.Outputter)
		if !ok {
			return nil, fmt.Errorf("item %q has no outputs", v[1:])
		}
		ret = append(ret, o.Outputs()...)
	}
	return ret, nil
}

func (b *builder) trap(t *TrapStep) (lion.Item, error) {
	trap := lion.Trap{
		Radius:        t.Radius,
		Length:        t.Length,
		Kappa:         t.Kappa,
		Frequency:     t.Frequency,
		Voltage:       t.Voltage,
		EndcapVoltage: t.EndcapVoltage,
		Anisotropy:    t.Anisotropy,
		Pseudo:        t.Pseudo,
	}
	var ions *lion.Ions
	var err error
	if t.Ions != "" {
		if ions, err = b.ions(t.Ions); err != nil {
			return nil, err
		}
	}
	if t.A != nil || t.Q != nil {
		if t.A == nil || t.Q == nil {
			return nil, fmt.Errorf("both a and q are needed")
		}
		if ions == nil {
			return nil, fmt.Errorf("a and q need an ion species")
		}
		trap.Voltage, trap.EndcapVoltage, err = lion.TrapAQToVoltage(ions, trap, *t.A, *t.Q)
		if err != nil {
			return nil, err
		}
		lion.Logger().Debug("trap voltages from a and q", "a", *t.A, "q", *t.Q, "voltage", trap.Voltage, "endcap", trap.EndcapVoltage)
	}
	return lion.LinearPaulTrap(trap, ions)
}

func (b *builder) add(s *Step) error {
	var item lion.Item
	var err error
	switch {
	case s.IonCloud != nil, s.PlaceIons != nil:
		var I *lion.Ions
		if c := s.IonCloud; c != nil {
			I, err = lion.CreateIonCloud(c.Mass, c.Charge, c.Radius, c.Number)
		} else {
			I, err = lion.PlaceIons(s.PlaceIons.Mass, s.PlaceIons.Charge, s.PlaceIons.Positions)
		}
		if err != nil {
			return err
		}
		st := s.IonCloud
		if st == nil {
			st = s.PlaceIons
		}
		I.UID, I.Rigid = st.UID, st.Rigid
		if st.Name != "" {
			b.species[st.Name] = I
		}
		item = I
	case s.EField != nil:
		item = lion.EField(s.EField.Ex, s.EField.Ey, s.EField.Ez)
	case s.LinearPaulTrap != nil:
		item, err = b.trap(s.LinearPaulTrap)
	case s.HarmonicPotential != nil, s.LaserCool != nil:
		f := s.HarmonicPotential
		if f == nil {
			f = s.LaserCool
		}
		I, err := b.ions(f.Ions)
		if err != nil {
			return err
		}
		if s.HarmonicPotential != nil {
			item, err = lion.HarmonicPotential(I, f.K[0], f.K[1], f.K[2])
		} else {
			item, err = lion.LaserCool(I, f.K[0], f.K[1], f.K[2])
		}
		if err != nil {
			return err
		}
	case s.LangevinBath != nil:
		item, err = lion.LangevinBath(s.LangevinBath.Temperature, s.LangevinBath.Damping)
	case s.IonNeutralHeating != nil:
		I, err := b.ions(s.IonNeutralHeating.Ions)
		if err != nil {
			return err
		}
		item, err = lion.IonNeutralHeating(I, s.IonNeutralHeating.Rate)
		if err != nil {
			return err
		}
	case s.Dump != nil:
		vars, err := b.variables(s.Dump.Variables)
		if err != nil {
			return err
		}
		item, err = lion.Dump(s.Dump.File, vars, s.Dump.Steps)
		if err != nil {
			return err
		}
	case s.TimeAverage != nil:
		vars, err := b.variables(s.TimeAverage.Variables)
		if err != nil {
			return err
		}
		item, err = lion.TimeAverage(vars, s.TimeAverage.Steps)
		if err != nil {
			return err
		}
	case s.SquareSum != nil:
		vars, err := b.variables(s.SquareSum.Variables)
		if err != nil {
			return err
		}
		item, err = lion.SquareSum(vars)
		if err != nil {
			return err
		}
	case s.Compute != nil:
		item, err = lion.Compute(s.Compute.Style, s.Compute.Args...)
	case s.Evolve != nil:
		item = lion.Evolve(*s.Evolve)
	case s.ThermalVelocities != nil:
		item = lion.ThermalVelocities(s.ThermalVelocities.Temperature, s.ThermalVelocities.ZeroMomentum)
	case s.Minimise != nil:
		m := s.Minimise
		item = lion.Minimise(m.Etol, m.Ftol, m.MaxIter, m.MaxEval, m.MaxDisplacement)
	case s.Command != nil:
		item = lion.Command(s.Command...)
	case s.Unfix != nil:
		it, ok := b.items[*s.Unfix]
		if !ok {
			return fmt.Errorf("unknown item %q", *s.Unfix)
		}
		return b.sim.Remove(it)
	}
	if err != nil {
		return err
	}
	if err := b.sim.Append(item); err != nil {
		return err
	}
	if n := s.name(); n != "" {
		b.items[n] = item
	}
	return nil
}
