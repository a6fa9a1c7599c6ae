/*
 * fixes.go, part of golion.
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
)

// LangevinFix couples all the ions to a thermal bath.
type LangevinFix struct {
	base
	Temperature float64 //K
	DampingTime float64 //s
	seed        int
}

// LangevinBath returns a Langevin bath at temperature (K) with the given
// damping time (s). A zero temperature gives pure damping.
func LangevinBath(temperature, dampingTime float64) (*LangevinFix, error) {
	if temperature < 0 {
		return nil, fmt.Errorf("negative bath temperature %g", temperature)
	}
	if dampingTime <= 0 {
		return nil, fmt.Errorf("damping time must be positive, got %g", dampingTime)
	}
	return &LangevinFix{base: newBase(KindFix), Temperature: temperature, DampingTime: dampingTime, seed: newSeed()}, nil
}

func (L *LangevinFix) Code() ([]string, error) {
	return []string{
		"# Adding a Langevin bath",
		fmt.Sprintf("fix %s all langevin %s %s %s %d", L.id, ff(L.Temperature), ff(L.Temperature), ff(L.DampingTime), L.seed),
	}, nil
}

// LaserCoolFix is a friction force, proportional to the velocity,
// acting on one species.
type LaserCoolFix struct {
	base
	Ions *Ions
	K    [3]float64 //kg/s
}

// LaserCool returns a laser cooling force on the given species with
// friction coefficients kx, ky, kz (kg/s).
func LaserCool(ions *Ions, kx, ky, kz float64) (*LaserCoolFix, error) {
	if ions == nil {
		return nil, fmt.Errorf("laser cooling needs an ion species")
	}
	return &LaserCoolFix{base: newBase(KindFix), Ions: ions, K: [3]float64{kx, ky, kz}}, nil
}

func (L *LaserCoolFix) Code() ([]string, error) {
	g, err := L.Ions.Group()
	if err != nil {
		return nil, err
	}
	return addForce(L.id, g, "Laser cooling of species "+g, [3]string{
		fmt.Sprintf("%s*vx", ff(-L.K[0])),
		fmt.Sprintf("%s*vy", ff(-L.K[1])),
		fmt.Sprintf("%s*vz", ff(-L.K[2])),
	}), nil
}

// HeatingFix gives random kicks to the ions of one species, as
// collisions with a background gas would.
type HeatingFix struct {
	base
	Ions  *Ions
	Rate  float64 //J/s per ion
	seeds [3]int
}

// IonNeutralHeating returns random kicks on the given species so that each
// ion gains energy at the given mean rate (J/s).
func IonNeutralHeating(ions *Ions, rate float64) (*HeatingFix, error) {
	if ions == nil {
		return nil, fmt.Errorf("ion-neutral heating needs an ion species")
	}
	if rate < 0 {
		return nil, fmt.Errorf("negative heating rate %g", rate)
	}
	return &HeatingFix{base: newBase(KindFix), Ions: ions, Rate: rate, seeds: [3]int{newSeed(), newSeed(), newSeed()}}, nil
}

// Code writes a force with a gaussian random amplitude such that, per step
// and per direction, the mean energy gain is Rate*dt/3.
func (H *HeatingFix) Code() ([]string, error) {
	g, err := H.Ions.Group()
	if err != nil {
		return nil, err
	}
	id := H.id
	lines := addForce(id, g, "Ion-neutral collision heating of species "+g, [3]string{
		fmt.Sprintf("v_kick%s*normal(0,1,%d)", id, H.seeds[0]),
		fmt.Sprintf("v_kick%s*normal(0,1,%d)", id, H.seeds[1]),
		fmt.Sprintf("v_kick%s*normal(0,1,%d)", id, H.seeds[2]),
	})
	kick := fmt.Sprintf("variable kick%s equal \"sqrt(%s/dt)\"", id, ff(2*H.Ions.Mass*AMU*H.Rate/3))
	return append([]string{lines[0], kick}, lines[1:]...), nil
}
