/*
 * dump_test.go, part of golion.
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

package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lion "github.com/iontrap/golion"
)

// sampleDump returns a dump with nframes frames of 3 atoms, written out
// of id order, with z = step*id*1e-6.
func sampleDump(nframes int) string {
	var b strings.Builder
	for f := 0; f < nframes; f++ {
		step := f * 10
		fmt.Fprintf(&b, "ITEM: TIMESTEP\n%d\nITEM: NUMBER OF ATOMS\n3\n", step)
		b.WriteString("ITEM: BOX BOUNDS mm mm mm\n-1e-3 1e-3\n-1e-3 1e-3\n-2e-3 2e-3\n")
		b.WriteString("ITEM: ATOMS id x y z\n")
		for _, id := range []int{3, 1, 2} {
			fmt.Fprintf(&b, "%d %g %g %g\n", id, float64(id), -float64(id), float64(step*id)*1e-6)
		}
	}
	return b.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	switch {
	case strings.HasSuffix(name, ".gz"):
		w := gzip.NewWriter(f)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case strings.HasSuffix(name, ".zst"):
		w, err := zstd.NewWriter(f)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		_, err = f.WriteString(content)
		require.NoError(t, err)
	}
	return path
}

func TestReader(t *testing.T) {
	for _, name := range []string{"positions.txt", "positions.txt.gz", "positions.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			R, err := New(writeFile(t, name, sampleDump(4)))
			require.NoError(t, err)
			defer R.Close()
			var frames []Frame
			for {
				var F Frame
				err := R.Next(&F)
				if err != nil {
					_, ok := err.(lion.LastFrameError)
					require.True(t, ok, "unexpected error %v", err)
					break
				}
				frames = append(frames, F)
			}
			require.Len(t, frames, 4)
			F := frames[2]
			assert.Equal(t, 20, F.Step)
			assert.Equal(t, 3, F.Natoms)
			assert.Equal(t, []int{1, 2, 3}, F.IDs)
			assert.Equal(t, []string{"x", "y", "z"}, F.Columns)
			assert.Equal(t, [2]float64{-2e-3, 2e-3}, F.Box[2])
			r, c := F.Data.Dims()
			assert.Equal(t, 3, r)
			assert.Equal(t, 3, c)
			assert.Equal(t, 2.0, F.Data.At(1, 0))
			assert.InDelta(t, 60e-6, F.Data.At(2, 2), 1e-15)
		})
	}
}

func TestReadDump(t *testing.T) {
	steps, frames, err := ReadDump(writeFile(t, "p.txt", sampleDump(3)))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20}, steps)
	require.Len(t, frames, 3)
	assert.Equal(t, -3.0, frames[0].At(2, 1))
}

func TestSeries(t *testing.T) {
	frames, err := ReadAll(writeFile(t, "p.txt", sampleDump(3)))
	require.NoError(t, err)
	z, err := Series(frames, 2, "z")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 20e-6, 40e-6}, z, 1e-15)
	_, err = Series(frames, 7, "z")
	assert.Error(t, err)
	_, err = Series(frames, 1, "vx")
	assert.Error(t, err)
	x, err := frames[0].Col("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x)
}

func TestExtraSections(t *testing.T) {
	content := "ITEM: UNITS\nsi\nITEM: TIMESTEP\n5\nITEM: TIME\n5e-06\nITEM: NUMBER OF ATOMS\n1\n" +
		"ITEM: BOX BOUNDS xy xz yz mm mm mm\n-1 1 0\n-1 1 0\n-1 1 0\nITEM: ATOMS x id\n0.5 1\n"
	frames, err := ReadAll(writeFile(t, "p.txt", content))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 5, frames[0].Step)
	assert.Equal(t, []string{"x"}, frames[0].Columns)
	assert.Equal(t, 0.5, frames[0].Data.At(0, 0))
}

func TestEmptyFrame(t *testing.T) {
	content := "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n0\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n"
	frames, err := ReadAll(writeFile(t, "p.txt", content))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Nil(t, frames[0].Data)
	assert.Empty(t, frames[0].IDs)
}

func TestMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"header":    "ITEM: NUMBER OF ATOMS\n1\n",
		"step":      "ITEM: TIMESTEP\nten\n",
		"truncated": "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n2\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 0\n",
		"fields":    "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 0 3\n",
		"huge count": "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n9223372036854775807\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 0\n",
		"no atoms section": "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\n" +
			"ITEM: TIMESTEP\n10\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 5\n",
		"short atoms": "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n2\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 0\n" +
			"ITEM: TIMESTEP\n10\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS mm mm mm\n-1 1\n-1 1\n-1 1\nITEM: ATOMS id x\n1 5\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "bad.txt", content)
			_, err := ReadAll(path)
			require.Error(t, err)
			terr, ok := err.(lion.TrajError)
			require.True(t, ok)
			assert.True(t, terr.Critical())
			assert.Equal(t, path, terr.FileName())
			assert.Contains(t, terr.Decorate(""), "ReadAll")
		})
	}
	_, err := New(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
