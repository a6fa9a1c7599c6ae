/*
 * spectrum.go, part of golion.
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

// Package analysis has helpers to analyse the trajectories of trapped
// ions read from LAMMPS dumps: spectra, normal modes, micromotion
// amplitudes and equilibrium positions.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/iontrap/golion/dump"
)

// Spectrum returns the one-sided amplitude spectrum of series, sampled
// every dt seconds, after removing its mean. freqs are in Hz.
func Spectrum(series []float64, dt float64) (freqs, amplitude []float64, err error) {
	if len(series) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 points for a spectrum, got %d", len(series))
	}
	if dt <= 0 {
		return nil, nil, fmt.Errorf("sampling interval must be positive, got %g", dt)
	}
	n := len(series)
	mean := stat.Mean(series, nil)
	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)
	freqs = make([]float64, len(coeffs))
	amplitude = make([]float64, len(coeffs))
	for i, c := range coeffs {
		freqs[i] = fft.Freq(i) / dt
		amplitude[i] = 2 * cmplx.Abs(c) / float64(n)
	}
	return freqs, amplitude, nil
}

// peak returns the index of the largest value of power with
// 0 < freqs[i] <= maxFreq, or -1. maxFreq <= 0 means no limit.
func peak(freqs, power []float64, maxFreq float64) int {
	best := -1
	for i, f := range freqs {
		if f <= 0 || (maxFreq > 0 && f > maxFreq) {
			continue
		}
		if best < 0 || power[i] > power[best] {
			best = i
		}
	}
	return best
}

// PeakFrequency returns the frequency, in Hz, with the largest amplitude
// in the spectrum of series, up to maxFreq (no limit if maxFreq <= 0).
func PeakFrequency(series []float64, dt, maxFreq float64) (float64, error) {
	freqs, amp, err := Spectrum(series, dt)
	if err != nil {
		return 0, err
	}
	i := peak(freqs, amp, maxFreq)
	if i < 0 {
		return 0, fmt.Errorf("no frequencies below %g Hz", maxFreq)
	}
	return freqs[i], nil
}

// ModeSpectrum adds up the power spectra of column col of every atom in
// the frames, sampled every dt seconds. The result is normalised to its
// maximum, and values under threshold are set to zero. The peaks are the
// normal modes of the ion crystal along col.
func ModeSpectrum(frames []*dump.Frame, col string, dt, threshold float64) (freqs, power []float64, err error) {
	if len(frames) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 frames for a spectrum, got %d", len(frames))
	}
	ids := frames[0].IDs
	for _, id := range ids {
		s, err := dump.Series(frames, id, col)
		if err != nil {
			return nil, nil, err
		}
		f, amp, err := Spectrum(s, dt)
		if err != nil {
			return nil, nil, err
		}
		if power == nil {
			freqs = f
			power = make([]float64, len(amp))
		}
		for i, a := range amp {
			power[i] += a * a
		}
	}
	if power == nil {
		return nil, nil, fmt.Errorf("no atoms in frames")
	}
	if top := floats.Max(power); top > 0 {
		floats.Scale(1/top, power)
	}
	for i, p := range power {
		if p < threshold {
			power[i] = 0
		}
	}
	return freqs, power, nil
}

// DominantMode returns the frequency of the largest peak of a spectrum
// up to maxFreq.
func DominantMode(freqs, power []float64, maxFreq float64) (float64, error) {
	i := peak(freqs, power, maxFreq)
	if i < 0 {
		return 0, fmt.Errorf("no frequencies below %g Hz", maxFreq)
	}
	return freqs[i], nil
}

// Autocorrelation returns the normalised autocorrelation function of
// series, for lags 0 to len(series)-1. It is computed with zero-padded
// FFTs.
func Autocorrelation(series []float64) ([]float64, error) {
	n := len(series)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points for a correlation, got %d", n)
	}
	mean, std := stat.MeanStdDev(series, nil)
	if std == 0 || math.IsNaN(std) {
		return nil, fmt.Errorf("constant series has no autocorrelation")
	}
	pad := make([]complex128, 2*n)
	for i, v := range series {
		pad[i] = complex(v-mean, 0)
	}
	f := fourier.NewCmplxFFT(len(pad))
	f.Coefficients(pad, pad)
	for i, v := range pad {
		pad[i] = v * cmplx.Conj(v)
	}
	f.Sequence(pad, pad)
	ret := make([]float64, n)
	norm := real(pad[0])
	for i := range ret {
		ret[i] = real(pad[i]) / norm
	}
	return ret, nil
}
