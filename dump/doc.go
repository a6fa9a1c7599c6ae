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

// Package dump reads the per-atom dump files written by LAMMPS "dump custom"
// commands. Each frame is read into a gonum matrix with one row per atom,
// sorted by atom id. Compressed dumps (.gz and .zst) are read transparently.
//
//	R, err := dump.New("sim/positions.txt")
//	if err != nil {
//		return err
//	}
//	defer R.Close()
//	for {
//		var F dump.Frame
//		if err := R.Next(&F); err != nil {
//			if _, ok := err.(lion.LastFrameError); ok {
//				break
//			}
//			return err
//		}
//		x, _ := F.Col("x")
//		...
//	}
package dump
