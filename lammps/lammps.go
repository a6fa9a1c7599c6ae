/*
 * lammps.go, part of golion.
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

// Package lammps finds the LAMMPS executable and runs it, as a blocking
// subprocess, on the input files written by golion.
package lammps

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrExecutableNotFound = errors.New("could not find executable")
	ErrNonZeroExit        = errors.New("lammps exited with a non-zero status")
	ErrNoAtomsCreated     = errors.New("lammps created 0 atoms, some ions are probably outside the simulation domain")
)

//how long to wait for LAMMPS to exit after an interrupt.
const waitDelay = 5 * time.Second

var tracer = otel.Tracer("github.com/iontrap/golion/lammps")

// Search returns the executable regular files that match pattern
// (as in filepath.Match) in the directories of the PATH.
func Search(pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	var found []string
	seen := make(map[string]bool)
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
				continue
			}
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	sort.Strings(found)
	return found, nil
}

// SearchExecutables returns the LAMMPS-looking executables (lmp*) in the PATH.
func SearchExecutables() ([]string, error) {
	return Search("lmp*")
}

// LookPath resolves the executable name, which can also be a path.
func LookPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrExecutableNotFound)
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrExecutableNotFound, name, err)
	}
	return p, nil
}

// Handle runs LAMMPS on one input file.
type Handle struct {
	name    string
	command string
	dir     string
	gpu     int
	stdout  io.Writer
	logger  *log.Logger
}

// NewHandle returns a handle that runs "lmp" on golion.lammps in the
// working directory.
func NewHandle() *Handle {
	return &Handle{name: "golion", command: "lmp", logger: log.Default()}
}

// SetName sets the base name of the input and log files.
func (H *Handle) SetName(name string) {
	H.name = name
}

// SetCommand sets the executable, a name in the PATH or a path.
func (H *Handle) SetCommand(command string) {
	H.command = command
}

// SetDir sets the directory LAMMPS runs in.
func (H *Handle) SetDir(dir string) {
	H.dir = dir
}

// SetGPU makes LAMMPS use n GPUs. 0 means none.
func (H *Handle) SetGPU(n int) {
	H.gpu = n
}

// SetStdout sets a writer that gets the output of LAMMPS as it runs.
func (H *Handle) SetStdout(w io.Writer) {
	H.stdout = w
}

func (H *Handle) SetLogger(l *log.Logger) {
	if l != nil {
		H.logger = l
	}
}

func (H *Handle) Name() string { return H.name }

// Args returns the command line arguments passed to LAMMPS.
func (H *Handle) Args() []string {
	args := []string{"-log", H.name + ".lmp.log", "-in", H.name + ".lammps"}
	if H.gpu > 0 {
		args = append(args, "-sf", "gpu", "-pk", "gpu", strconv.Itoa(H.gpu))
	}
	return args
}

// Result is what a LAMMPS run left behind.
type Result struct {
	Name     string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
	Atoms    int //as reported by create_atoms
}

// RunError is returned when LAMMPS fails.
type RunError struct {
	Name     string
	ExitCode int
	Stderr   string //last lines only
	Err      error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("lammps run %s (exit code %d): %v", e.Name, e.ExitCode, e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

var createdAtoms = regexp.MustCompile(`Created\s+(\d+)\s+atoms`)

//atomCounter watches the output of LAMMPS for create_atoms reports.
type atomCounter struct {
	buf     []byte
	atoms   int
	reports int
	zero    bool
}

func (a *atomCounter) Write(p []byte) (int, error) {
	a.buf = append(a.buf, p...)
	for {
		i := bytes.IndexByte(a.buf, '\n')
		if i < 0 {
			break
		}
		a.line(a.buf[:i])
		a.buf = a.buf[i+1:]
	}
	return len(p), nil
}

func (a *atomCounter) line(l []byte) {
	m := createdAtoms.FindSubmatch(l)
	if m == nil {
		return
	}
	n, _ := strconv.Atoi(string(m[1]))
	a.reports++
	a.atoms += n
	if n == 0 {
		a.zero = true
	}
}

// tail returns the last n lines of b.
func tail(b []byte, n int) string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		lines = append(lines, sc.Text())
		if len(lines) > n {
			lines = lines[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// Run starts LAMMPS and waits for it to finish. Cancelling ctx interrupts
// LAMMPS, and kills it if it does not exit in a few seconds.
func (H *Handle) Run(ctx context.Context) (*Result, error) {
	bin, err := LookPath(H.command)
	if err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "lammps.run", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	args := H.Args()
	span.SetAttributes(
		attribute.String("lammps.name", H.name),
		attribute.String("lammps.executable", bin),
		attribute.Int("lammps.gpu", H.gpu),
	)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = H.dir
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	counter := new(atomCounter)
	outs := []io.Writer{&stdout, counter}
	if H.stdout != nil {
		outs = append(outs, H.stdout)
	}
	cmd.Stdout = io.MultiWriter(outs...)
	cmd.Stderr = &stderr

	H.logger.Info("starting lammps", "name", H.name, "dir", H.dir, "args", strings.Join(args, " "))
	start := time.Now()
	err = cmd.Run()
	res := &Result{
		Name:     H.name,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
		Atoms:    counter.atoms,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	span.SetAttributes(attribute.Int("lammps.exit_code", res.ExitCode), attribute.Int("lammps.atoms", res.Atoms))
	H.logger.Info("lammps finished", "name", H.name, "exit", res.ExitCode, "duration", res.Duration.Round(time.Millisecond))

	switch {
	case err != nil && ctx.Err() != nil:
		err = &RunError{Name: H.name, ExitCode: res.ExitCode, Stderr: tail(res.Stderr, 10), Err: ctx.Err()}
	case err != nil:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			err = &RunError{Name: H.name, ExitCode: -1, Err: err}
			break
		}
		//LAMMPS writes its errors to stdout.
		msg := tail(res.Stderr, 10)
		if msg == "" {
			msg = tail(res.Stdout, 10)
		}
		err = &RunError{Name: H.name, ExitCode: res.ExitCode, Stderr: msg, Err: ErrNonZeroExit}
	case counter.zero:
		err = &RunError{Name: H.name, ExitCode: res.ExitCode, Stderr: tail(res.Stdout, 10), Err: ErrNoAtomsCreated}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}
