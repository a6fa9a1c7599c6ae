/*
 * handy.go, part of golion.
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
	"strconv"
	"strings"
)

//Some internal convenience functions for writing LAMMPS script.

//ff formats a float the shortest way that keeps all its precision.
//LAMMPS reads exponents like 1e-06 without trouble.
func ff(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//joinFloats formats and joins the given floats with spaces.
func joinFloats(fs ...float64) string {
	s := make([]string, len(fs))
	for i, v := range fs {
		s[i] = ff(v)
	}
	return strings.Join(s, " ")
}

//yesno turns a bool into the keywords LAMMPS uses for flags.
func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
