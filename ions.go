/*
 * ions.go, part of golion.
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
	"math/rand"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Ions is an ion species: a group of ions with the same mass and charge,
// which LAMMPS treats as one atom type. UID is the atom type number. It is
// assigned on Append when zero.
type Ions struct {
	UID       int
	Mass      float64 //amu
	Charge    float64 //elementary charges
	Positions *mat.Dense //one row per ion, in m
	Rigid     bool //the whole species moves as a single rigid body
}

// PlaceIons returns a species with ions at the given positions (in m).
func PlaceIons(mass, charge float64, positions [][3]float64) (*Ions, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("ion mass must be positive, got %g", mass)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("no positions given for ions")
	}
	p := mat.NewDense(len(positions), 3, nil)
	for i, r := range positions {
		p.SetRow(i, r[:])
	}
	return &Ions{Mass: mass, Charge: charge, Positions: p}, nil
}

// CreateIonCloud places number ions uniformly at random inside a sphere
// of the given radius (in m), centered at the origin.
func CreateIonCloud(mass, charge, radius float64, number int) (*Ions, error) {
	rngMu.Lock()
	defer rngMu.Unlock()
	return CreateIonCloudRand(rng, mass, charge, radius, number)
}

// CreateIonCloudRand is like CreateIonCloud but draws the positions from r.
func CreateIonCloudRand(r *rand.Rand, mass, charge, radius float64, number int) (*Ions, error) {
	if number <= 0 {
		return nil, fmt.Errorf("number of ions must be positive, got %d", number)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("cloud radius must be positive, got %g", radius)
	}
	positions := make([][3]float64, 0, number)
	for len(positions) < number {
		var p [3]float64
		for i := range p {
			p[i] = (2*r.Float64() - 1) * radius
		}
		if p[0]*p[0]+p[1]*p[1]+p[2]*p[2] > radius*radius {
			continue
		}
		positions = append(positions, p)
	}
	return PlaceIons(mass, charge, positions)
}

func (I *Ions) Kind() Kind { return KindIons }

// ID returns the atom type of the species, or "" if it was not assigned yet.
func (I *Ions) ID() string {
	if I.UID == 0 {
		return ""
	}
	return strconv.Itoa(I.UID)
}

// Len returns the number of ions in the species.
func (I *Ions) Len() int {
	if I.Positions == nil {
		return 0
	}
	r, _ := I.Positions.Dims()
	return r
}

// Group returns the name of the LAMMPS group holding this species.
func (I *Ions) Group() (string, error) {
	if I == nil {
		return "", fmt.Errorf("nil ion species")
	}
	if I.UID == 0 {
		return "", ErrUnassignedSpecies
	}
	return strconv.Itoa(I.UID), nil
}

// InDomain reports whether all the ions lie in the box [-d, d] for each
// of the three half-lengths in domain.
func (I *Ions) InDomain(domain [3]float64) bool {
	for i := 0; i < I.Len(); i++ {
		for j, v := range I.Positions.RawRowView(i) {
			if math.Abs(v) > domain[j] {
				return false
			}
		}
	}
	return true
}

// Code returns the species section: mass, charge, atoms and group.
func (I *Ions) Code() ([]string, error) {
	g, err := I.Group()
	if err != nil {
		return nil, err
	}
	if I.Mass <= 0 {
		return nil, fmt.Errorf("species %s has non-positive mass %g", g, I.Mass)
	}
	n := I.Len()
	lines := make([]string, 0, n+5)
	lines = append(lines,
		fmt.Sprintf("# Species %s: %d ions, mass %s amu, charge %s e", g, n, ff(I.Mass), ff(I.Charge)),
		fmt.Sprintf("mass %s %s", g, ff(I.Mass*AMU)))
	for i := 0; i < n; i++ {
		p := I.Positions.RawRowView(i)
		lines = append(lines, fmt.Sprintf("create_atoms %s single %s units box", g, joinFloats(p[0], p[1], p[2])))
	}
	lines = append(lines,
		fmt.Sprintf("set type %s charge %s", g, ff(I.Charge*ElementaryCharge)),
		fmt.Sprintf("group %s type %s", g, g))
	return lines, nil
}
