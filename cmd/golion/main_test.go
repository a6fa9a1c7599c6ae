/*
 * main_test.go, part of golion.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lion "github.com/iontrap/golion"
)

const recipeText = `
name: cli
steps:
  - placeions: {name: ca, mass: 40, charge: 1, positions: [[0, 0, -1e-5], [0, 0, 1e-5]]}
  - harmonicpotential: {ions: ca, k: [1e-12, 1e-12, 1e-13]}
  - dump: {file: positions.txt}
  - evolve: 100
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeRecipe(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(recipeText), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "golion "+lion.Version+"\n", out)
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", writeRecipe(t))
	require.NoError(t, err)
	assert.Contains(t, out, "create_box 1 simulationDomain")
	assert.Contains(t, out, "run 100")
}

func TestRunAndDump(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the fake LAMMPS is a shell script")
	}
	bin := t.TempDir()
	fake := "#!/bin/sh\necho 'Created 2 atoms'\n" +
		"printf 'ITEM: TIMESTEP\\n0\\nITEM: NUMBER OF ATOMS\\n1\\nITEM: BOX BOUNDS mm mm mm\\n-1 1\\n-1 1\\n-1 1\\nITEM: ATOMS id x y z\\n1 0 0 0\\n' > positions.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "lmp_fake"), []byte(fake), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	output := t.TempDir()
	t.Setenv("GOLION_EXECUTABLE", "lmp_fake")
	t.Setenv("GOLION_OUTPUT", output)

	out, err := execute(t, "run", writeRecipe(t))
	require.NoError(t, err)
	assert.Contains(t, out, "cli: 2 atoms")
	assert.FileExists(t, filepath.Join(output, "cli", "cli.tar.zst"))

	out, err = execute(t, "dump", "info", filepath.Join(output, "cli", "positions.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "frames:  1")
	assert.Contains(t, out, "columns: x y z")

	out, err = execute(t, "find")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(bin, "lmp_fake"))
}

func fakeLammps(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the fake LAMMPS is a shell script")
	}
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "lmp_fake"), []byte("#!/bin/sh\n"+body), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("GOLION_EXECUTABLE", "lmp_fake")
}

func writeNamedRecipe(t *testing.T, name string) string {
	t.Helper()
	text := strings.Replace(recipeText, "name: cli", "name: "+name, 1)
	path := filepath.Join(t.TempDir(), name+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestSweepSavesFailedRuns(t *testing.T) {
	//the run named bad fails after creating its atoms.
	fakeLammps(t, "echo 'Created 2 atoms'\ncase \"$PWD\" in */bad) exit 3;; esac\n")
	output := t.TempDir()
	t.Setenv("GOLION_OUTPUT", output)

	out, err := execute(t, "run", "--jobs", "1", writeNamedRecipe(t, "good"), writeNamedRecipe(t, "bad"))
	require.Error(t, err)
	assert.Contains(t, out, "good: exit 0")
	assert.Contains(t, out, "bad: exit 3")
	for _, name := range []string{"good", "bad"} {
		assert.FileExists(t, filepath.Join(output, name, name+".attrs.yaml"))
		assert.FileExists(t, filepath.Join(output, name, name+".tar.zst"))
	}
}

func TestSweepSameName(t *testing.T) {
	fakeLammps(t, "echo 'Created 2 atoms'\n")
	output := t.TempDir()
	t.Setenv("GOLION_OUTPUT", output)

	_, err := execute(t, "run", writeRecipe(t), writeRecipe(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both run in")
	assert.NoFileExists(t, filepath.Join(output, "cli", "cli.lammps"))
}
