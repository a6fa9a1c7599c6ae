/*
 * lionplot.go, part of golion.
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

// Package lionplot draws the trajectories, crystals and spectra of
// trapped ions with gonum/plot. The format of the output is given by
// the extension of the file name (png, svg, pdf...).
package lionplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iontrap/golion/dump"
)

//maximum number of atoms drawn in a trajectory plot.
const maxLines = 50

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Trajectories plots column col of each atom against time, for the
// first atoms of the frames. dt is the timestep of the simulation.
func Trajectories(frames []*dump.Frame, col string, dt float64, title, filename string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to plot")
	}
	p := newPlot(title, "t / s", col)
	ids := frames[0].IDs
	if len(ids) > maxLines {
		ids = ids[:maxLines]
	}
	for i, id := range ids {
		s, err := dump.Series(frames, id, col)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(s))
		for j, v := range s {
			pts[j].X = float64(frames[j].Step) * dt
			pts[j].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// Crystal plots the positions of the atoms of a frame, projected on the
// plane of columns xcol and ycol.
func Crystal(frame *dump.Frame, xcol, ycol, title, filename string) error {
	xs, err := frame.Col(xcol)
	if err != nil {
		return err
	}
	ys, err := frame.Col(ycol)
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	p := newPlot(title, xcol, ycol)
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = plotutil.Color(0)
	p.Add(s)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}

// SpectrumPlot plots a spectrum, as returned by the analysis package.
func SpectrumPlot(freqs, power []float64, title, filename string) error {
	if len(freqs) != len(power) {
		return fmt.Errorf("%d frequencies for %d values", len(freqs), len(power))
	}
	if len(freqs) == 0 {
		return fmt.Errorf("empty spectrum")
	}
	pts := make(plotter.XYs, len(freqs))
	for i := range freqs {
		pts[i].X, pts[i].Y = freqs[i], power[i]
	}
	p := newPlot(title, "f / Hz", "amplitude")
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = plotutil.Color(0)
	p.Add(l)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
