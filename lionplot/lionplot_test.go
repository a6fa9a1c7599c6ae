/*
 * lionplot_test.go, part of golion.
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

package lionplot

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/iontrap/golion/dump"
)

func testFrames() []*dump.Frame {
	fr := make([]*dump.Frame, 50)
	for i := range fr {
		d := mat.NewDense(3, 2, nil)
		for a := 0; a < 3; a++ {
			d.Set(a, 0, 1e-6*math.Sin(float64(i+a)))
			d.Set(a, 1, float64(a-1)*1e-5)
		}
		fr[i] = &dump.Frame{Step: i * 10, Natoms: 3, Columns: []string{"x", "z"}, IDs: []int{1, 2, 3}, Data: d}
	}
	return fr
}

func TestPlots(t *testing.T) {
	dir := t.TempDir()
	fr := testFrames()

	traj := filepath.Join(dir, "traj.png")
	require.NoError(t, Trajectories(fr, "x", 1e-6, "Trajectories", traj))
	assert.FileExists(t, traj)

	crystal := filepath.Join(dir, "crystal.svg")
	require.NoError(t, Crystal(fr[len(fr)-1], "z", "x", "Crystal", crystal))
	assert.FileExists(t, crystal)

	spec := filepath.Join(dir, "spectrum.png")
	require.NoError(t, SpectrumPlot([]float64{0, 1, 2}, []float64{0, 1, 0}, "Spectrum", spec))
	assert.FileExists(t, spec)

	assert.Error(t, Trajectories(nil, "x", 1, "", traj))
	assert.Error(t, Trajectories(fr, "vx", 1, "", traj))
	assert.Error(t, SpectrumPlot([]float64{1}, nil, "", spec))
}
