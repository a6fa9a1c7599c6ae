/*
 * errors.go, part of golion.
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
	"errors"
	"fmt"
)

var (
	ErrNotAnItem         = errors.New("only non-nil items can be appended to a simulation")
	ErrNoSpecies         = errors.New("simulation has no ion species")
	ErrIdenticalUIDs     = errors.New("there are identical uids, lammps is probably not going to like it")
	ErrSpeciesUID        = errors.New("max species uid is larger than the number of species, uids are only shared within the same ion group")
	ErrOutsideDomain     = errors.New("ions placed outside the simulation domain")
	ErrAlreadyExecuted   = errors.New("simulation has executed already, do not run it again")
	ErrUnassignedSpecies = errors.New("ion species has no uid, append it to the simulation first")
	ErrNotRemovable      = errors.New("item cannot be removed from a running simulation")
	ErrUnstableTrap      = errors.New("trap parameters outside the stability region")
)

// SimulationError gives the operation, and the item if any,
// in which a Simulation failed.
type SimulationError struct {
	Op  string
	ID  string
	Err error
}

func (e *SimulationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("simulation %s (item %s): %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("simulation %s: %v", e.Op, e.Err)
}

func (e *SimulationError) Unwrap() error { return e.Err }
