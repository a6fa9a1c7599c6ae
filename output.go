/*
 * output.go, part of golion.
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
	"strings"
)

// DefaultDumpSteps is the dump interval used when none is given.
const DefaultDumpSteps = 10

// DumpFix writes per-atom quantities to a file every Steps steps.
type DumpFix struct {
	base
	Filename  string
	Variables []string
	Steps     int
}

// Dump returns a request to write the given per-atom variables (x, y, vx,
// or outputs of other items) every steps steps to filename, which is
// relative to the simulation directory. No variables means positions.
// Steps <= 0 means DefaultDumpSteps.
func Dump(filename string, variables []string, steps int) (*DumpFix, error) {
	if filename == "" || strings.ContainsAny(filename, " \t\n") {
		return nil, fmt.Errorf("invalid dump file name %q", filename)
	}
	if len(variables) == 0 {
		variables = []string{"x", "y", "z"}
	}
	if isInString(variables, "id") {
		return nil, fmt.Errorf("atom ids are always dumped, don't ask for them")
	}
	if steps <= 0 {
		steps = DefaultDumpSteps
	}
	v := make([]string, len(variables))
	copy(v, variables)
	return &DumpFix{base: newBase(KindFix), Filename: filename, Variables: v, Steps: steps}, nil
}

func (D *DumpFix) Code() ([]string, error) {
	return []string{
		"# Dumping per-atom data",
		fmt.Sprintf("dump %s all custom %d %s id %s", D.id, D.Steps, D.Filename, strings.Join(D.Variables, " ")),
		fmt.Sprintf("dump_modify %s sort id", D.id),
	}, nil
}

func (D *DumpFix) Files() []string { return []string{D.Filename} }

func (D *DumpFix) RemoveCode() []string {
	return []string{"# Stop dumping", "undump " + D.id}
}

// TimeAverageFix averages per-atom quantities over a window of steps.
type TimeAverageFix struct {
	base
	Variables []string
	Steps     int
}

// TimeAverage returns per-atom averages of variables over windows of steps.
func TimeAverage(variables []string, steps int) (*TimeAverageFix, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("no variables to average")
	}
	if steps <= 0 {
		return nil, fmt.Errorf("averaging window must be positive, got %d", steps)
	}
	v := make([]string, len(variables))
	copy(v, variables)
	return &TimeAverageFix{base: newBase(KindVariable), Variables: v, Steps: steps}, nil
}

func (T *TimeAverageFix) Code() ([]string, error) {
	return []string{
		"# Time averaging of per-atom quantities",
		fmt.Sprintf("fix %s all ave/atom 1 %d %d %s", T.id, T.Steps, T.Steps, strings.Join(T.Variables, " ")),
	}, nil
}

func (T *TimeAverageFix) Outputs() []string {
	out := make([]string, len(T.Variables))
	for i := range T.Variables {
		out[i] = fmt.Sprintf("f_%s[%d]", T.id, i+1)
	}
	return out
}

// SquareSumVar is the per-atom sum of the squares of some quantities.
type SquareSumVar struct {
	base
	Variables []string
}

// SquareSum returns an atom variable equal to v1^2+v2^2+...
func SquareSum(variables []string) (*SquareSumVar, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("no variables to square")
	}
	v := make([]string, len(variables))
	copy(v, variables)
	return &SquareSumVar{base: newBase(KindVariable), Variables: v}, nil
}

func (S *SquareSumVar) Code() ([]string, error) {
	sq := make([]string, len(S.Variables))
	for i, v := range S.Variables {
		sq[i] = v + "^2"
	}
	return []string{
		"# Sum of squares",
		fmt.Sprintf("variable %s atom \"%s\"", S.id, strings.Join(sq, "+")),
	}, nil
}

func (S *SquareSumVar) Outputs() []string { return []string{"v_" + S.id} }

func (S *SquareSumVar) RemoveCode() []string {
	return []string{fmt.Sprintf("variable %s delete", S.id)}
}

// ComputeVar is a LAMMPS compute over all atoms.
type ComputeVar struct {
	base
	Style string
	Args  []string
}

// Compute returns "compute ID all style args...".
func Compute(style string, args ...string) (*ComputeVar, error) {
	if style == "" {
		return nil, fmt.Errorf("empty compute style")
	}
	return &ComputeVar{base: newBase(KindVariable), Style: style, Args: append([]string(nil), args...)}, nil
}

func (C *ComputeVar) Code() ([]string, error) {
	line := fmt.Sprintf("compute %s all %s", C.id, C.Style)
	if len(C.Args) > 0 {
		line += " " + strings.Join(C.Args, " ")
	}
	return []string{"# Compute " + C.Style, line}, nil
}

func (C *ComputeVar) Outputs() []string { return []string{"c_" + C.id} }

func (C *ComputeVar) RemoveCode() []string { return []string{"uncompute " + C.id} }
