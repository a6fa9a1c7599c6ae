/*
 * trap.go, part of golion.
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

// Trap describes a linear Paul trap. The RF voltage is applied between
// the two pairs of rods, at distance Radius from the trap axis, and the
// static voltage to the endcaps, at distance Length from the trap centre.
type Trap struct {
	Radius        float64 //r0, m
	Length        float64 //z0, m
	Kappa         float64 //geometric factor of the endcaps
	Frequency     float64 //RF drive frequency, Hz
	Voltage       float64 //RF amplitude, V
	EndcapVoltage float64 //V
	Anisotropy    float64 //scales the RF field along x. 0 is taken as 1.
	Pseudo        bool    //use the time-averaged pseudopotential
}

func (T Trap) check() error {
	if T.Radius <= 0 || T.Length <= 0 || T.Frequency <= 0 {
		return fmt.Errorf("trap radius, length and frequency must be positive")
	}
	if T.Kappa <= 0 {
		return fmt.Errorf("trap kappa must be positive, got %g", T.Kappa)
	}
	return nil
}

func (T Trap) anisotropy() float64 {
	if T.Anisotropy == 0 {
		return 1
	}
	return T.Anisotropy
}

func massCharge(ions *Ions) (m, e float64, err error) {
	if ions == nil {
		return 0, 0, fmt.Errorf("nil ion species")
	}
	if ions.Mass <= 0 || ions.Charge == 0 {
		return 0, 0, fmt.Errorf("ions need a positive mass and a non-zero charge")
	}
	return ions.Mass * AMU, ions.Charge * ElementaryCharge, nil
}

// AQ returns the radial Mathieu parameters a and q of the trap for the
// given species.
func (T Trap) AQ(ions *Ions) (a, q float64, err error) {
	if err = T.check(); err != nil {
		return 0, 0, err
	}
	m, e, err := massCharge(ions)
	if err != nil {
		return 0, 0, err
	}
	omega := 2 * math.Pi * T.Frequency
	q = 2 * e * T.Voltage / (m * T.Radius * T.Radius * omega * omega)
	a = -4 * T.Kappa * e * T.EndcapVoltage / (m * T.Length * T.Length * omega * omega)
	return a, q, nil
}

// TrapAQToVoltage returns the RF and endcap voltages that give the radial
// Mathieu parameters a and q for the given species in trap. Only the
// geometry and the frequency of trap are used.
func TrapAQToVoltage(ions *Ions, trap Trap, a, q float64) (voltage, endcap float64, err error) {
	if err = trap.check(); err != nil {
		return 0, 0, err
	}
	m, e, err := massCharge(ions)
	if err != nil {
		return 0, 0, err
	}
	omega := 2 * math.Pi * trap.Frequency
	voltage = q * m * trap.Radius * trap.Radius * omega * omega / (2 * e)
	endcap = -a * m * trap.Length * trap.Length * omega * omega / (4 * trap.Kappa * e)
	return voltage, endcap, nil
}

// SecularFrequencies returns the radial and axial secular frequencies, in Hz,
// of the species in the trap, in the lowest order approximation.
func SecularFrequencies(trap Trap, ions *Ions) (radial, axial float64, err error) {
	a, q, err := trap.AQ(ions)
	if err != nil {
		return 0, 0, err
	}
	r := a + q*q/2
	z := -2 * a
	if r <= 0 || z <= 0 {
		return 0, 0, fmt.Errorf("%w: a=%g q=%g", ErrUnstableTrap, a, q)
	}
	return trap.Frequency / 2 * math.Sqrt(r), trap.Frequency / 2 * math.Sqrt(z), nil
}

// LengthScale returns the characteristic length of an ion chain of the given
// species in a harmonic well of axial frequency axial (Hz). Equilibrium
// positions of ion chains are tabulated in units of this length.
func LengthScale(ions *Ions, axial float64) (float64, error) {
	m, e, err := massCharge(ions)
	if err != nil {
		return 0, err
	}
	if axial <= 0 {
		return 0, fmt.Errorf("axial frequency must be positive, got %g", axial)
	}
	w := 2 * math.Pi * axial
	return math.Cbrt(e * e / (4 * math.Pi * Epsilon0) / (m * w * w)), nil
}
