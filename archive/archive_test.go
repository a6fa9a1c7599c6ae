/*
 * archive_test.go, part of golion.
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

package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sim.lammps"), []byte("units si\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "out"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "out", "pos.txt"), []byte("ITEM: TIMESTEP\n0\n"), 0o644))
	src := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(src, []byte("name: sim\n"), 0o644))

	dst := filepath.Join(t.TempDir(), "sim.tar.zst")
	skipped, err := Bundle(dst, root, []string{"sim.lammps", "out/pos.txt", "sim.lmp.log", src, "sim.lammps"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sim.lmp.log"}, skipped)

	names, err := List(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"sim.lammps", "out/pos.txt", "sources/recipe.yaml"}, names)
}

func TestListNotArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tar.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd at all"), 0o644))
	_, err := List(path)
	assert.Error(t, err)
}
