/*
 * recipe_test.go, part of golion.
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

package recipe

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lion "github.com/iontrap/golion"
)

const chain = `
name: Ion Chain
seed: 42
attributes:
  thermo_steps: 1000
  extra:
    purpose: test
steps:
  - ioncloud: {name: ca, mass: 40, charge: 1, radius: 1e-4, number: 5}
  - linearpaultrap: {name: trap, ions: ca, radius: 3.75e-3, length: 2.75e-3, kappa: 0.244, frequency: 3.85e6, a: -0.001, q: 0.3}
  - langevinbath: {name: bath, temperature: 3e-4, damping: 2e-5}
  - timeaverage: {name: avg, variables: [vx, vy], steps: 100}
  - dump: {file: positions.txt, variables: [x, y, z, "@avg"], steps: 10}
  - evolve: 30000
  - unfix: bath
  - thermalvelocities: {temperature: 1e-5}
  - command: ["print done"]
  - evolve: 100
`

func TestBuild(t *testing.T) {
	r, err := Parse(strings.NewReader(chain))
	require.NoError(t, err)
	sim, err := r.Build(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ion_chain", sim.Name)
	assert.Equal(t, 1000, sim.ThermoSteps)
	assert.Equal(t, "test", sim.Extra["purpose"])
	assert.InDelta(t, 1/(20*3.85e6), sim.Timestep, 1e-18)
	items := sim.Items()
	require.Len(t, items, 10)

	ions, ok := items[0].(*lion.Ions)
	require.True(t, ok)
	assert.Equal(t, 5, ions.Len())
	assert.Equal(t, 1, ions.UID)

	trap, ok := items[1].(*lion.PaulTrapFix)
	require.True(t, ok)
	a, q, err := trap.Trap.AQ(ions)
	require.NoError(t, err)
	assert.InDelta(t, -0.001, a, 1e-12)
	assert.InDelta(t, 0.3, q, 1e-12)

	d, ok := items[4].(*lion.DumpFix)
	require.True(t, ok)
	avg := items[3].(*lion.TimeAverageFix)
	assert.Equal(t, append([]string{"x", "y", "z"}, avg.Outputs()...), d.Variables)

	var buf bytes.Buffer
	require.NoError(t, sim.Render(&buf))
	assert.Contains(t, buf.String(), "unfix "+items[2].ID()+"\n")
	assert.Contains(t, buf.String(), "print done\n")
}

func TestSeedIsReproducible(t *testing.T) {
	render := func() string {
		r, err := Parse(strings.NewReader(chain))
		require.NoError(t, err)
		sim, err := r.Build(t.TempDir())
		require.NoError(t, err)
		ions := sim.Items()[0].(*lion.Ions)
		code, err := ions.Code()
		require.NoError(t, err)
		return strings.Join(code, "\n")
	}
	assert.Equal(t, render(), render())
}

func TestLoadAddsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chain), 0o644))
	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Path())
	sim, err := r.Build(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{path}, sim.Sources)
}

func TestBadRecipes(t *testing.T) {
	for name, text := range map[string]string{
		"no steps":      "name: x\n",
		"two keys":      "steps:\n  - evolve: 10\n    unfix: a\n",
		"empty step":    "steps:\n  - {}\n",
		"unknown field": "steps:\n  - evolve: 10\nfoo: 1\n",
		"repeated name": "steps:\n  - langevinbath: {name: a, temperature: 0, damping: 1}\n  - langevinbath: {name: a, temperature: 0, damping: 1}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(text))
			assert.Error(t, err)
		})
	}
	for name, text := range map[string]string{
		"unknown species": "steps:\n  - lasercool: {ions: ca, k: [1, 1, 1]}\n",
		"a without q":     "steps:\n  - placeions: {name: ca, mass: 40, charge: 1, positions: [[0, 0, 0]]}\n  - linearpaultrap: {ions: ca, radius: 1e-3, length: 1e-3, kappa: 0.2, frequency: 1e6, a: -0.001}\n",
		"unknown output":  "steps:\n  - dump: {file: p.txt, variables: [\"@nope\"]}\n",
		"unknown unfix":   "steps:\n  - unfix: nope\n",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := Parse(strings.NewReader(text))
			require.NoError(t, err)
			_, err = r.Build(t.TempDir())
			assert.Error(t, err)
		})
	}
}
