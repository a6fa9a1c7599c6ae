/*
 * execute_test.go, part of golion.
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
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iontrap/golion/archive"
	"github.com/iontrap/golion/lammps"
)

// fakeLAMMPS writes a shell script that behaves like LAMMPS as far as
// golion cares: it writes the log given with -log and reports the atoms.
func fakeLAMMPS(Te *testing.T, atoms int) string {
	Te.Helper()
	if runtime.GOOS == "windows" {
		Te.Skip("the fake LAMMPS is a shell script")
	}
	path := filepath.Join(Te.TempDir(), "lmp_fake")
	script := "#!/bin/sh\necho \"LAMMPS (fake)\"\necho \"log\" > \"$2\"\necho \"Created " + strconv.Itoa(atoms) + " atoms\"\n"
	require.NoError(Te, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestExecute(Te *testing.T) {
	s := testSim(Te)
	s.Executable = fakeLAMMPS(Te, 2)
	s.Sources = []string{filepath.Join(Te.TempDir(), "missing.go")}
	require.NoError(Te, s.Extend(testIons(Te, 2), Evolve(10)))

	res, err := s.Execute(context.Background())
	require.NoError(Te, err)
	assert.Equal(Te, 2, res.Atoms)
	assert.Equal(Te, 0, res.ExitCode)
	assert.True(Te, s.Executed())
	assert.FileExists(Te, s.LogFile())

	a, err := LoadAttributes(filepath.Join(s.Directory, s.Name+".attrs.yaml"))
	require.NoError(Te, err)
	assert.Equal(Te, s.RunID, a.RunID)

	names, err := archive.List(filepath.Join(s.Directory, s.Name+".tar.zst"))
	require.NoError(Te, err)
	assert.ElementsMatch(Te, []string{"test_sim.lammps", "test_sim.lmp.log", "test_sim.attrs.yaml"}, names)

	_, err = s.Execute(context.Background())
	assert.ErrorIs(Te, err, ErrAlreadyExecuted)
}

func TestExecuteNoAtoms(Te *testing.T) {
	s := testSim(Te)
	s.Executable = fakeLAMMPS(Te, 0)
	require.NoError(Te, s.Extend(testIons(Te, 1), Evolve(10)))
	_, err := s.Execute(context.Background())
	assert.ErrorIs(Te, err, lammps.ErrNoAtomsCreated)
	assert.True(Te, s.Executed())
}

func TestExecuteMissingExecutable(Te *testing.T) {
	s := testSim(Te)
	s.Executable = filepath.Join(Te.TempDir(), "no-such-lmp")
	require.NoError(Te, s.Extend(testIons(Te, 1), Evolve(10)))
	_, err := s.Execute(context.Background())
	require.ErrorIs(Te, err, lammps.ErrExecutableNotFound)
	assert.Contains(Te, err.Error(), "could not find executable")
	assert.False(Te, s.Executed())
}
