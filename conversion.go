/*
 * conversion.go, part of golion.
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

//This provides useful conversion factors and other constants.
//LAMMPS runs with "units si", so everything that goes to the
//script is converted to SI here.

//Physical constants (CODATA 2018)
const (
	AMU              = 1.66053906660e-27 //kg
	ElementaryCharge = 1.602176634e-19   //C
	Epsilon0         = 8.8541878128e-12  //F/m
)
