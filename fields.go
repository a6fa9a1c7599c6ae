/*
 * fields.go, part of golion.
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
	"math"
)

//base is embedded by all the items that own a LAMMPS identifier.
type base struct {
	id   string
	kind Kind
}

func newBase(k Kind) base {
	return base{id: nextID(), kind: k}
}

func (b *base) ID() string { return b.id }

func (b *base) Kind() Kind { return b.kind }

// EFieldFix is a static, uniform electric field.
type EFieldFix struct {
	base
	E [3]float64 //V/m
}

// EField returns a static electric field with components ex, ey, ez, in V/m.
func EField(ex, ey, ez float64) *EFieldFix {
	return &EFieldFix{base: newBase(KindFix), E: [3]float64{ex, ey, ez}}
}

func (F *EFieldFix) Code() ([]string, error) {
	id := F.id
	return []string{
		"# Static E-field",
		fmt.Sprintf("variable E%sx equal %s", id, ff(F.E[0])),
		fmt.Sprintf("variable E%sy equal %s", id, ff(F.E[1])),
		fmt.Sprintf("variable E%sz equal %s", id, ff(F.E[2])),
		fmt.Sprintf("fix %s all efield v_E%sx v_E%sy v_E%sz", id, id, id, id),
	}, nil
}

// PaulTrapFix is the field of a linear Paul trap.
type PaulTrapFix struct {
	base
	Trap Trap
	Ions *Ions //only needed for pseudopotential traps
}

// LinearPaulTrap returns the field of trap. If trap.Pseudo is set the
// time-averaged pseudopotential of the given species is used, and the field
// is only applied to that species. Otherwise ions can be nil.
func LinearPaulTrap(trap Trap, ions *Ions) (*PaulTrapFix, error) {
	if err := trap.check(); err != nil {
		return nil, err
	}
	if trap.Pseudo && ions == nil {
		return nil, fmt.Errorf("a pseudopotential trap needs an ion species")
	}
	return &PaulTrapFix{base: newBase(KindFix), Trap: trap, Ions: ions}, nil
}

// Timestep is a twentieth of the RF period, or of the fastest secular period
// for pseudopotential traps.
func (P *PaulTrapFix) Timestep() float64 {
	if !P.Trap.Pseudo {
		return 1 / (20 * P.Trap.Frequency)
	}
	r, z, err := SecularFrequencies(P.Trap, P.Ions)
	if err != nil {
		return 0
	}
	return 1 / (20 * math.Max(r, z))
}

func (P *PaulTrapFix) Code() ([]string, error) {
	if P.Trap.Pseudo {
		return P.pseudoCode()
	}
	id := P.id
	T := P.Trap
	omega := 2 * math.Pi * T.Frequency
	r2 := T.Radius * T.Radius
	stat := T.Kappa * T.EndcapVoltage / (T.Length * T.Length)
	return []string{
		"# Creating a Linear Paul Trap",
		fmt.Sprintf("variable phase%s equal \"%s*step*dt\"", id, ff(omega)),
		fmt.Sprintf("variable oscVx%s equal \"%s*cos(v_phase%s)\"", id, ff(T.anisotropy()*T.Voltage), id),
		fmt.Sprintf("variable oscVy%s equal \"%s*cos(v_phase%s)\"", id, ff(-T.Voltage), id),
		fmt.Sprintf("variable oscEX%s atom \"-v_oscVx%s*x/%s\"", id, id, ff(r2)),
		fmt.Sprintf("variable oscEY%s atom \"-v_oscVy%s*y/%s\"", id, id, ff(r2)),
		fmt.Sprintf("variable statEX%s atom \"%s*x\"", id, ff(stat)),
		fmt.Sprintf("variable statEY%s atom \"%s*y\"", id, ff(stat)),
		fmt.Sprintf("variable statEZ%s atom \"%s*z\"", id, ff(-2*stat)),
		fmt.Sprintf("variable EX%s atom \"v_oscEX%s+v_statEX%s\"", id, id, id),
		fmt.Sprintf("variable EY%s atom \"v_oscEY%s+v_statEY%s\"", id, id, id),
		fmt.Sprintf("fix %s all efield v_EX%s v_EY%s v_statEZ%s", id, id, id, id),
	}, nil
}

//pseudoCode writes the harmonic field that gives the secular
//frequencies of the species.
func (P *PaulTrapFix) pseudoCode() ([]string, error) {
	g, err := P.Ions.Group()
	if err != nil {
		return nil, err
	}
	r, z, err := SecularFrequencies(P.Trap, P.Ions)
	if err != nil {
		return nil, err
	}
	m, e, _ := massCharge(P.Ions)
	kr := -m * math.Pow(2*math.Pi*r, 2) / e
	kz := -m * math.Pow(2*math.Pi*z, 2) / e
	id := P.id
	return []string{
		fmt.Sprintf("# Pseudopotential of a Linear Paul Trap for species %s", g),
		fmt.Sprintf("variable pseudoEX%s atom \"%s*x\"", id, ff(kr)),
		fmt.Sprintf("variable pseudoEY%s atom \"%s*y\"", id, ff(kr)),
		fmt.Sprintf("variable pseudoEZ%s atom \"%s*z\"", id, ff(kz)),
		fmt.Sprintf("fix %s %s efield v_pseudoEX%s v_pseudoEY%s v_pseudoEZ%s", id, g, id, id, id),
	}, nil
}

// HarmonicFix is a restoring force proportional to the displacement
// from the origin, applied to one species.
type HarmonicFix struct {
	base
	Ions *Ions
	K    [3]float64 //N/m
}

// HarmonicPotential returns a harmonic potential with spring constants
// kx, ky, kz (N/m) acting on the given species.
func HarmonicPotential(ions *Ions, kx, ky, kz float64) (*HarmonicFix, error) {
	if ions == nil {
		return nil, fmt.Errorf("a harmonic potential needs an ion species")
	}
	return &HarmonicFix{base: newBase(KindFix), Ions: ions, K: [3]float64{kx, ky, kz}}, nil
}

// Timestep is a twentieth of the period of the stiffest direction.
func (H *HarmonicFix) Timestep() float64 {
	k := math.Max(H.K[0], math.Max(H.K[1], H.K[2]))
	if k <= 0 || H.Ions.Mass <= 0 {
		return 0
	}
	f := math.Sqrt(k/(H.Ions.Mass*AMU)) / (2 * math.Pi)
	return 1 / (20 * f)
}

func (H *HarmonicFix) Code() ([]string, error) {
	g, err := H.Ions.Group()
	if err != nil {
		return nil, err
	}
	return addForce(H.id, g, "Harmonic potential", [3]string{
		fmt.Sprintf("%s*x", ff(-H.K[0])),
		fmt.Sprintf("%s*y", ff(-H.K[1])),
		fmt.Sprintf("%s*z", ff(-H.K[2])),
	}), nil
}

//addForce writes a fix addforce with one atom-style variable per component.
func addForce(id, group, title string, f [3]string) []string {
	return []string{
		"# " + title,
		fmt.Sprintf("variable fX%s atom \"%s\"", id, f[0]),
		fmt.Sprintf("variable fY%s atom \"%s\"", id, f[1]),
		fmt.Sprintf("variable fZ%s atom \"%s\"", id, f[2]),
		fmt.Sprintf("fix %s %s addforce v_fX%s v_fY%s v_fZ%s", id, group, id, id, id),
	}
}
