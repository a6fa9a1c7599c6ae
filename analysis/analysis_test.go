/*
 * analysis_test.go, part of golion.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/iontrap/golion/dump"
)

func sine(n int, dt, freq, amp, offset float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = offset + amp*math.Sin(2*math.Pi*freq*float64(i)*dt)
	}
	return s
}

// frames returns n frames of two atoms oscillating along x, y and z.
func frames(n int, dt float64) []*dump.Frame {
	ret := make([]*dump.Frame, n)
	for i := range ret {
		t := float64(i) * dt
		d := mat.NewDense(2, 3, nil)
		for a := 0; a < 2; a++ {
			z := float64(2*a-1)*1e-5 + 1e-7*math.Sin(2*math.Pi*1e3*t)
			x := 1e-6 * math.Cos(2*math.Pi*1e4*t)
			d.SetRow(a, []float64{x, 0, z})
		}
		ret[i] = &dump.Frame{Step: i, Natoms: 2, Columns: []string{"x", "y", "z"}, IDs: []int{1, 2}, Data: d}
	}
	return ret
}

func TestSpectrumPeak(t *testing.T) {
	s := sine(1000, 1e-5, 1e3, 2, 5)
	freqs, amp, err := Spectrum(s, 1e-5)
	require.NoError(t, err)
	require.Len(t, freqs, 501)
	assert.InDelta(t, 100.0, freqs[1], 1e-9)
	assert.InDelta(t, 2.0, amp[10], 1e-6)
	assert.InDelta(t, 0.0, amp[0], 1e-9)

	f, err := PeakFrequency(s, 1e-5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1e3, f, 1e-6)

	_, err = PeakFrequency(s, 1e-5, 50)
	assert.Error(t, err)
	_, _, err = Spectrum(s[:1], 1e-5)
	assert.Error(t, err)
	_, _, err = Spectrum(s, 0)
	assert.Error(t, err)
}

func TestModeSpectrum(t *testing.T) {
	fr := frames(1000, 1e-5)
	freqs, power, err := ModeSpectrum(fr, "z", 1e-5, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, power[10], 1e-12)
	f, err := DominantMode(freqs, power, 5e3)
	require.NoError(t, err)
	assert.InDelta(t, 1e3, f, 1e-6)

	freqs, power, err = ModeSpectrum(fr, "x", 1e-5, 0.01)
	require.NoError(t, err)
	f, err = DominantMode(freqs, power, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1e4, f, 1e-6)
}

func TestAutocorrelation(t *testing.T) {
	c, err := Autocorrelation(sine(400, 1e-3, 10, 1, 0))
	require.NoError(t, err)
	require.Len(t, c, 400)
	assert.InDelta(t, 1.0, c[0], 1e-12)
	//half a period later the signal is anticorrelated.
	assert.Less(t, c[50], 0.0)
	_, err = Autocorrelation([]float64{1, 1, 1})
	assert.Error(t, err)
}

func TestMicromotionAmplitude(t *testing.T) {
	fr := frames(200, 1e-5)
	amp, err := MicromotionAmplitude(fr, 20)
	require.NoError(t, err)
	require.Len(t, amp, 2)
	for _, a := range amp {
		assert.Greater(t, a, 0.0)
		assert.LessOrEqual(t, a, 1e-6+1e-15)
	}
	_, err = MicromotionAmplitude(nil, 1)
	assert.Error(t, err)
}

func TestSortedAxialAndMean(t *testing.T) {
	fr := frames(100, 1e-5)
	z, err := SortedAxial(fr[0], "z", 1e-5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1}, z, 1e-9)
	_, err = SortedAxial(fr[0], "z", 0)
	assert.Error(t, err)

	m, err := MeanPositions(fr)
	require.NoError(t, err)
	assert.InDelta(t, -1e-5, m.At(0, 2), 1e-8)
	assert.InDelta(t, 1e-5, m.At(1, 2), 1e-8)
}
