/*
 * dump.go, part of golion.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"

	lion "github.com/iontrap/golion"
)

var (
	_ lion.TrajError      = (*Error)(nil)
	_ lion.LastFrameError = (*lastFrameError)(nil)
)

// Frame is one snapshot of a dump: the per-atom columns at a timestep.
type Frame struct {
	Step    int
	Natoms  int
	Box     [3][2]float64 //lower and upper bounds for x, y and z
	Columns []string      //names of the columns of Data
	IDs     []int         //atom ids, in ascending order
	Data    *mat.Dense    //one row per atom, nil if there are no atoms
}

// Column returns the index of the named column in F.Data, or -1.
func (F *Frame) Column(name string) int {
	for i, c := range F.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Col returns a copy of the named column.
func (F *Frame) Col(name string) ([]float64, error) {
	i := F.Column(name)
	if i < 0 {
		return nil, fmt.Errorf("no column %q in frame at step %d", name, F.Step)
	}
	if F.Data == nil {
		return nil, nil
	}
	return mat.Col(nil, i, F.Data), nil
}

// Row returns the index of the atom with the given id, or -1.
func (F *Frame) Row(id int) int {
	i := sort.SearchInts(F.IDs, id)
	if i < len(F.IDs) && F.IDs[i] == id {
		return i
	}
	return -1
}

// zstd decoders do not implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Reader reads a LAMMPS dump file, plain or compressed with gzip (.gz)
// or zstd (.zst), one frame at a time.
type Reader struct {
	f        *os.File
	dec      io.ReadCloser
	r        *bufio.Reader
	filename string
	pending  string
	haspend  bool
	readable bool
}

// New opens the dump file name for reading.
func New(name string) (*Reader, error) {
	R := &Reader{filename: name}
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, &Error{message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"New"}, critical: true}
	}
	var src io.Reader = bufio.NewReader(R.f)
	switch {
	case strings.HasSuffix(name, ".gz"):
		R.dec, err = gzip.NewReader(src)
	case strings.HasSuffix(name, ".zst"):
		var d *zstd.Decoder
		d, err = zstd.NewReader(src)
		if err == nil {
			R.dec = zstdCloser{d}
		}
	}
	if err != nil {
		R.f.Close()
		return nil, &Error{message: "can't decompress: " + err.Error(), filename: name, deco: []string{"New"}, critical: true}
	}
	if R.dec != nil {
		src = R.dec
	}
	R.r = bufio.NewReader(src)
	R.readable = true
	return R, nil
}

// Readable returns true if Next can be called on the reader.
func (R *Reader) Readable() bool {
	return R.readable
}

// Close closes the file and marks the reader as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.dec != nil {
		R.dec.Close()
	}
	R.f.Close()
	R.readable = false
}

func (R *Reader) readLine() (string, error) {
	if R.haspend {
		R.haspend = false
		return R.pending, nil
	}
	for {
		line, err := R.r.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

func (R *Reader) unread(line string) {
	R.pending, R.haspend = line, true
}

func (R *Reader) errf(caller, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), filename: R.filename, deco: []string{caller}, critical: true}
}

func (R *Reader) readInt(section string) (int, error) {
	line, err := R.readLine()
	if err != nil {
		return 0, R.errf("Next", "%s: reading %s: %v", ReadError, section, err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, R.errf("Next", "%s: bad %s %q", WrongFormat, section, line)
	}
	return n, nil
}

//skipSection reads up to the next ITEM: line, which is left unread.
func (R *Reader) skipSection() error {
	for {
		l, err := R.readLine()
		if err != nil {
			return R.errf("Next", "%s: truncated section: %v", ReadError, err)
		}
		if strings.HasPrefix(l, "ITEM:") {
			R.unread(l)
			return nil
		}
	}
}

//maxPrealloc caps the rows allocated before they are read.
const maxPrealloc = 1 << 16

type row struct {
	id   int
	vals []float64
}

// Next reads the next frame into F. If F is nil the frame is skipped.
// At the end of the file, Next returns an error that implements
// lion.LastFrameError.
func (R *Reader) Next(F *Frame) error {
	if !R.readable {
		return R.errf("Next", TrajUnIniRead)
	}
	line, err := R.readLine()
	if err == io.EOF {
		return newLastFrameError(R.filename, "Next")
	}
	if err != nil {
		return R.errf("Next", "%s: %v", ReadError, err)
	}
	//dumps with "units yes" start with an ITEM: UNITS section.
	for !strings.HasPrefix(line, "ITEM: TIMESTEP") {
		if !strings.HasPrefix(line, "ITEM:") {
			return R.errf("Next", "%s: expected ITEM: TIMESTEP, got %q", WrongFormat, line)
		}
		if err := R.skipSection(); err != nil {
			return err
		}
		if line, err = R.readLine(); err != nil {
			return R.errf("Next", "%s: %v", ReadError, err)
		}
	}
	var fr Frame
	if fr.Step, err = R.readInt("timestep"); err != nil {
		return err
	}
	natoms := -1
	for {
		line, err = R.readLine()
		if err != nil {
			return R.errf("Next", "%s: truncated frame at step %d", ReadError, fr.Step)
		}
		switch {
		case strings.HasPrefix(line, "ITEM: NUMBER OF ATOMS"):
			if natoms, err = R.readInt("number of atoms"); err != nil {
				return err
			}
		case strings.HasPrefix(line, "ITEM: BOX BOUNDS"):
			for i := 0; i < 3; i++ {
				l, err := R.readLine()
				if err != nil {
					return R.errf("Next", "%s: box bounds: %v", ReadError, err)
				}
				f := strings.Fields(l)
				if len(f) < 2 {
					return R.errf("Next", "%s: box bounds %q", WrongFormat, l)
				}
				for j := 0; j < 2; j++ {
					if fr.Box[i][j], err = strconv.ParseFloat(f[j], 64); err != nil {
						return R.errf("Next", "%s: box bounds %q", WrongFormat, l)
					}
				}
			}
		case strings.HasPrefix(line, "ITEM: ATOMS"):
			if natoms < 0 {
				return R.errf("Next", "%s: atoms before their number at step %d", WrongFormat, fr.Step)
			}
			fr.Natoms = natoms
			if err := R.readAtoms(&fr, strings.Fields(strings.TrimPrefix(line, "ITEM: ATOMS"))); err != nil {
				return err
			}
			if F != nil {
				*F = fr
			}
			return nil
		case strings.HasPrefix(line, "ITEM: TIMESTEP"):
			return R.errf("Next", "%s: frame at step %d has no ATOMS section", WrongFormat, fr.Step)
		case strings.HasPrefix(line, "ITEM:"):
			//sections we don't use, like ITEM: TIME.
			if err := R.skipSection(); err != nil {
				return err
			}
		default:
			return R.errf("Next", "%s: unexpected line %q", WrongFormat, line)
		}
	}
}

func (R *Reader) readAtoms(fr *Frame, header []string) error {
	idcol := -1
	for i, h := range header {
		if h == "id" {
			idcol = i
			continue
		}
		fr.Columns = append(fr.Columns, h)
	}
	//the header count is not trusted for the allocation.
	rows := make([]row, 0, min(fr.Natoms, maxPrealloc))
	for i := 0; i < fr.Natoms; i++ {
		l, err := R.readLine()
		if err != nil {
			return R.errf("readAtoms", "%s: atom %d of %d at step %d", ReadError, i+1, fr.Natoms, fr.Step)
		}
		if strings.HasPrefix(l, "ITEM:") {
			return R.errf("readAtoms", "%s: %d atoms of %d at step %d", WrongFormat, i, fr.Natoms, fr.Step)
		}
		f := strings.Fields(l)
		if len(f) != len(header) {
			return R.errf("readAtoms", "%s: %d fields for %d columns in %q", WrongFormat, len(f), len(header), l)
		}
		r := row{id: i + 1, vals: make([]float64, 0, len(fr.Columns))}
		for j, s := range f {
			if j == idcol {
				if r.id, err = strconv.Atoi(s); err != nil {
					return R.errf("readAtoms", "%s: atom id %q", WrongFormat, s)
				}
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return R.errf("readAtoms", "%s: value %q", WrongFormat, s)
			}
			r.vals = append(r.vals, v)
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].id < rows[j].id })
	fr.IDs = make([]int, len(rows))
	if len(rows) == 0 || len(fr.Columns) == 0 {
		for i, r := range rows {
			fr.IDs[i] = r.id
		}
		return nil
	}
	fr.Data = mat.NewDense(len(rows), len(fr.Columns), nil)
	for i, r := range rows {
		fr.IDs[i] = r.id
		fr.Data.SetRow(i, r.vals)
	}
	return nil
}

// ReadAll reads every frame of the dump file name.
func ReadAll(name string) ([]*Frame, error) {
	R, err := New(name)
	if err != nil {
		return nil, err
	}
	defer R.Close()
	var frames []*Frame
	for {
		F := new(Frame)
		err := R.Next(F)
		if err != nil {
			if _, ok := err.(lion.LastFrameError); ok {
				return frames, nil
			}
			return frames, errDecorate(err, "ReadAll")
		}
		frames = append(frames, F)
	}
}

// ReadDump reads the dump file name and returns the timesteps and, for
// each of them, the per-atom data (without the id column).
func ReadDump(name string) (steps []int, frames []*mat.Dense, err error) {
	all, err := ReadAll(name)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadDump")
	}
	for _, F := range all {
		steps = append(steps, F.Step)
		frames = append(frames, F.Data)
	}
	return steps, frames, nil
}

// Series returns the values of column col for the atom with the given id
// along the frames.
func Series(frames []*Frame, id int, col string) ([]float64, error) {
	ret := make([]float64, 0, len(frames))
	for _, F := range frames {
		c := F.Column(col)
		if c < 0 {
			return nil, fmt.Errorf("no column %q in frame at step %d", col, F.Step)
		}
		r := F.Row(id)
		if r < 0 || F.Data == nil {
			return nil, fmt.Errorf("no atom %d in frame at step %d", id, F.Step)
		}
		ret = append(ret, F.Data.At(r, c))
	}
	return ret, nil
}
