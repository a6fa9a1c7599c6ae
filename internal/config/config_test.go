/*
 * config_test.go, part of golion.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, used, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	body := "executable: lmp_serial\ngpu: 2\njobs: 0\nseed: 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golion.yaml"), []byte(body), 0o644))
	t.Setenv("GOLION_GPU", "4")

	c, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "golion.yaml", filepath.Base(used))
	assert.Equal(t, "lmp_serial", c.Executable)
	assert.Equal(t, 4, c.GPU)
	assert.Equal(t, 1, c.Jobs)
	assert.Equal(t, int64(42), c.Seed)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)
	_, _, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: runs\nverbose: true\n"), 0o644))
	c, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "runs", c.Output)
	assert.True(t, c.Verbose)
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	d, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), d)
}
