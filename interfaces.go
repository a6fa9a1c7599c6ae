/*
 * interfaces.go, part of golion.
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

//Kind classifies the objects that can be appended to a Simulation.
type Kind int

const (
	KindIons Kind = iota
	KindFix
	KindCommand
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindIons:
		return "ions"
	case KindFix:
		return "fix"
	case KindCommand:
		return "command"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Item is anything that can be part of a Simulation. Code is only called
// when the input file is written, so items may refer to ion species whose
// type number is assigned later, on Append.
type Item interface {
	Kind() Kind

	//ID returns the LAMMPS identifier of the item (fix, variable or compute ID,
	//or the atom type for ions). Commands return an empty string.
	ID() string

	//Code returns the lines of LAMMPS script for this item.
	Code() ([]string, error)
}

// Timestepper is implemented by items that need the integration timestep
// to be at most a given value, in seconds.
type Timestepper interface {
	Timestep() float64
}

// Outputter is implemented by items that produce per-atom quantities
// that can be dumped, like "f_12[1]" or "v_13".
type Outputter interface {
	Outputs() []string
}

// Writer is implemented by items that make LAMMPS write files.
type Writer interface {
	Files() []string
}

// Remover is implemented by items that need something other than
// "unfix ID" to be removed from a running LAMMPS simulation.
type Remover interface {
	RemoveCode() []string
}

//Errors

// Error is the interface for errors that carry a decoration trail. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination()
}
