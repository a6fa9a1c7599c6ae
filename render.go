/*
 * render.go, part of golion.
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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/simulation.tmpl
var scriptTemplate string

var script = template.Must(template.New("simulation").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(scriptTemplate))

//scriptData is what the template needs, already formatted.
type scriptData struct {
	Name          string
	Version       string
	RunID         string
	Box           [6]string
	NSpecies      int
	Skin          string
	NeighbourList string
	Cutoff        string
	Species       [][]string
	RigidGroups   []int
	Timestep      string
	ThermoStyles  []string
	ThermoSteps   int
	Items         [][]string
}

// validate checks the simulation as a whole, returning the species and
// the rest of the items, in the order they will be written.
func (S *Simulation) validate() (species []*Ions, others []Item, err error) {
	if err := S.Attributes.check(); err != nil {
		return nil, nil, err
	}
	uids := make(map[int]bool)
	ids := make(map[string]bool)
	maxUID := 0
	for _, it := range S.items {
		if ions, ok := it.(*Ions); ok {
			if uids[ions.UID] {
				return nil, nil, fmt.Errorf("species %d: %w", ions.UID, ErrIdenticalUIDs)
			}
			uids[ions.UID] = true
			if ions.UID > maxUID {
				maxUID = ions.UID
			}
			species = append(species, ions)
			continue
		}
		others = append(others, it)
		if it.Kind() == KindCommand {
			continue
		}
		if ids[it.ID()] {
			return nil, nil, fmt.Errorf("%s %s: %w", it.Kind(), it.ID(), ErrIdenticalUIDs)
		}
		ids[it.ID()] = true
	}
	if len(species) == 0 {
		return nil, nil, ErrNoSpecies
	}
	if maxUID > len(species) {
		return nil, nil, fmt.Errorf("uid %d with %d species: %w", maxUID, len(species), ErrSpeciesUID)
	}
	for _, sp := range species {
		if !sp.InDomain(S.Domain) {
			return nil, nil, fmt.Errorf("species %d: %w", sp.UID, ErrOutsideDomain)
		}
	}
	return species, others, nil
}

// Render validates the simulation and writes its LAMMPS input script to w.
// Ion species go first, everything else in the order it was appended.
func (S *Simulation) Render(w io.Writer) error {
	species, others, err := S.validate()
	if err != nil {
		return &SimulationError{Op: "validate", Err: err}
	}
	d := S.Domain
	data := scriptData{
		Name:          S.Name,
		Version:       S.Version,
		RunID:         S.RunID,
		Box:           [6]string{ff(-d[0]), ff(d[0]), ff(-d[1]), ff(d[1]), ff(-d[2]), ff(d[2])},
		NSpecies:      len(species),
		Skin:          ff(S.Neighbour.Skin),
		NeighbourList: S.Neighbour.List,
		Cutoff:        ff(S.CoulombCutoff),
		Timestep:      ff(S.Timestep),
		ThermoStyles:  S.ThermoStyles,
		ThermoSteps:   S.ThermoSteps,
	}
	S.Rigid = Rigid{}
	for _, sp := range species {
		code, err := sp.Code()
		if err != nil {
			return &SimulationError{Op: "render", ID: sp.ID(), Err: err}
		}
		data.Species = append(data.Species, code)
		if sp.Rigid {
			data.RigidGroups = append(data.RigidGroups, sp.UID)
		}
	}
	if len(data.RigidGroups) > 0 {
		S.Rigid = Rigid{Exists: true, Groups: data.RigidGroups}
	}
	for _, it := range others {
		code, err := it.Code()
		if err != nil {
			return &SimulationError{Op: "render", ID: it.ID(), Err: err}
		}
		data.Items = append(data.Items, code)
	}
	return script.Execute(w, data)
}

// WriteInputFile renders the simulation to its input file and returns
// the path of the file. It sets the Time and OutputFiles attributes.
func (S *Simulation) WriteInputFile() (string, error) {
	var buf bytes.Buffer
	if err := S.Render(&buf); err != nil {
		return "", err
	}
	path := S.InputFile()
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &SimulationError{Op: "write", Err: err}
	}
	S.Time = time.Now()
	S.OutputFiles = S.outputFiles()
	logger.Debug("wrote input file", "path", path, "items", len(S.items))
	return path, nil
}
