/*
 * doc.go, part of golion.
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

/*Package lion is the main package of the golion library. It drives the LAMMPS
molecular dynamics engine for simulations of trapped ions in Paul traps.

	**golion Capabilities**

    Describes a simulation as an ordered list of small configuration objects:
	ion species, trap fields, thermal baths, laser cooling, heating, output
	requests and commands. Each object renders itself as a fragment of LAMMPS
	script.

    Combines the fragments into a single LAMMPS input file, in a fixed
	section order (setup, species, then fields, fixes, output and runs in the
	order they were appended), after checking species numbering, duplicated
	identifiers and that all ions lie inside the simulation domain.

    Runs the LAMMPS executable as a blocking subprocess (see the lammps
	package), and archives the attributes, script, log and output files of
	the run.

    Converts between Mathieu a/q parameters and trap voltages, and computes
	secular frequencies and the equilibrium length scale of ion chains.

The trajectory output can be read with the dump package and analysed with the
analysis and lionplot packages. Simulations can also be described as YAML
recipes (recipe package) and run from the golion command.

golion never integrates the equations of motion itself. All the physics is
done by LAMMPS, which must be obtained independently.*/
package lion
