/*
 * simulation.go, part of golion.
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
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
)

// Simulation is an ordered list of items, plus the attributes needed to
// turn them into a LAMMPS input file and run it.
type Simulation struct {
	Attributes

	//Stdout receives the output of LAMMPS while it runs. If nil, the
	//output is only kept in the Result.
	Stdout io.Writer

	//Sources are files (for instance the program or recipe that built the
	//simulation) archived with the results.
	Sources []string

	items    []Item
	species  int
	executed bool
}

// NewSimulation returns a simulation named name, with its directory
// under the current working directory.
func NewSimulation(name string) (*Simulation, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewSimulationIn(wd, name)
}

// NewSimulationIn returns a simulation with its directory under dir.
// The directory is created if needed.
func NewSimulationIn(dir, name string) (*Simulation, error) {
	S := &Simulation{Attributes: DefaultAttributes(name)}
	S.Directory = filepath.Join(dir, S.Name)
	if err := os.MkdirAll(S.Directory, 0o755); err != nil {
		return nil, &SimulationError{Op: "create", Err: err}
	}
	return S, nil
}

func isNil(item Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Append adds item at the end of the simulation. Ion species without
// a UID get the next free one.
func (S *Simulation) Append(item Item) error {
	if isNil(item) {
		return ErrNotAnItem
	}
	if ions, ok := item.(*Ions); ok {
		S.species++
		if ions.UID == 0 {
			ions.UID = S.species
		}
		if ions.Rigid {
			S.Rigid.Exists = true
			S.Rigid.Groups = append(S.Rigid.Groups, ions.UID)
		}
	}
	if ts, ok := item.(Timestepper); ok {
		if dt := ts.Timestep(); dt > 0 && dt < S.Timestep {
			logger.Info("reducing timestep", "from", S.Timestep, "to", dt, "item", item.ID())
			S.Timestep = dt
		}
	}
	S.items = append(S.items, item)
	return nil
}

// Extend appends all the items, in order. It stops at the first error.
func (S *Simulation) Extend(items ...Item) error {
	for i, it := range items {
		if err := S.Append(it); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Index returns the position of item in the simulation, or -1.
// Items are the same if they are identical, or if they have the same
// kind and the same non-empty ID.
func (S *Simulation) Index(item Item) int {
	if isNil(item) {
		return -1
	}
	for i, it := range S.items {
		if it == item {
			return i
		}
		if id := item.ID(); id != "" && it.Kind() == item.Kind() && it.ID() == id {
			return i
		}
	}
	return -1
}

// Contains reports whether item is part of the simulation.
func (S *Simulation) Contains(item Item) bool {
	return S.Index(item) >= 0
}

// Items returns a copy of the list of items.
func (S *Simulation) Items() []Item {
	ret := make([]Item, len(S.items))
	copy(ret, S.items)
	return ret
}

func (S *Simulation) Len() int { return len(S.items) }

// Remove switches item off from this point of the simulation on, by
// appending the command that undoes it. The item stays in the simulation,
// so it is active for every run before the removal.
func (S *Simulation) Remove(item Item) error {
	if isNil(item) {
		return ErrNotAnItem
	}
	if !S.Contains(item) {
		return &SimulationError{Op: "remove", ID: item.ID(), Err: fmt.Errorf("item is not part of the simulation")}
	}
	if item.Kind() == KindIons || item.Kind() == KindCommand {
		return &SimulationError{Op: "remove", ID: item.ID(), Err: ErrNotRemovable}
	}
	if r, ok := item.(Remover); ok {
		return S.Append(Command(r.RemoveCode()...))
	}
	return S.Append(Command("# Removing fix "+item.ID(), "unfix "+item.ID()))
}

// Sort puts the ion species first, keeping the order of everything else.
func (S *Simulation) Sort() {
	sort.SliceStable(S.items, func(i, j int) bool {
		return S.items[i].Kind() == KindIons && S.items[j].Kind() != KindIons
	})
}

// outputFiles returns the names of the files that the items of the
// simulation make LAMMPS write, relative to the simulation directory.
func (S *Simulation) outputFiles() []string {
	var files []string
	for _, it := range S.items {
		if w, ok := it.(Writer); ok {
			files = append(files, w.Files()...)
		}
	}
	return files
}

// InputFile returns the path of the LAMMPS input file of the simulation.
func (S *Simulation) InputFile() string {
	return filepath.Join(S.Directory, S.Name+".lammps")
}

// LogFile returns the path of the LAMMPS log.
func (S *Simulation) LogFile() string {
	return filepath.Join(S.Directory, S.Name+".lmp.log")
}

// Executed reports whether LAMMPS was already started for this simulation.
func (S *Simulation) Executed() bool { return S.executed }
