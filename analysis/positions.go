/*
 * positions.go, part of golion.
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

package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/iontrap/golion/dump"
)

// MicromotionAmplitude returns, for each atom, the amplitude of the
// radial motion over the last frames: the spread of |x| and of |y|,
// combined in quadrature. last <= 0 means all the frames.
func MicromotionAmplitude(frames []*dump.Frame, last int) ([]float64, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames")
	}
	if last <= 0 || last > len(frames) {
		last = len(frames)
	}
	frames = frames[len(frames)-last:]
	ids := frames[0].IDs
	ret := make([]float64, len(ids))
	for i, id := range ids {
		var spread [2]float64
		for j, c := range []string{"x", "y"} {
			s, err := dump.Series(frames, id, c)
			if err != nil {
				return nil, err
			}
			for k, v := range s {
				s[k] = math.Abs(v)
			}
			spread[j] = floats.Max(s) - floats.Min(s)
		}
		ret[i] = math.Hypot(spread[0], spread[1])
	}
	return ret, nil
}

// SortedAxial returns the values of column col of the frame, divided by
// scale and sorted. With col "z" and the trap length scale, these are the
// dimensionless equilibrium positions of an ion chain.
func SortedAxial(frame *dump.Frame, col string, scale float64) ([]float64, error) {
	if scale == 0 {
		return nil, fmt.Errorf("zero scale")
	}
	v, err := frame.Col(col)
	if err != nil {
		return nil, err
	}
	floats.Scale(1/scale, v)
	sort.Float64s(v)
	return v, nil
}

// MeanPositions returns the per-atom average of the data of the frames,
// which must all have the same shape.
func MeanPositions(frames []*dump.Frame) (*mat.Dense, error) {
	if len(frames) == 0 || frames[0].Data == nil {
		return nil, fmt.Errorf("no data to average")
	}
	r, c := frames[0].Data.Dims()
	mean := mat.NewDense(r, c, nil)
	for _, F := range frames {
		if F.Data == nil {
			return nil, fmt.Errorf("frame at step %d has no data", F.Step)
		}
		if fr, fc := F.Data.Dims(); fr != r || fc != c {
			return nil, fmt.Errorf("frame at step %d is %dx%d, expected %dx%d", F.Step, fr, fc, r, c)
		}
		mean.Add(mean, F.Data)
	}
	mean.Scale(1/float64(len(frames)), mean)
	return mean, nil
}
