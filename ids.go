/*
 * ids.go, part of golion.
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
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

//LAMMPS wants positive seeds smaller than this.
const maxSeed = 900000000

var idCounter atomic.Int64

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// nextID returns a process-wide unique identifier for fixes, variables
// and computes.
func nextID() string {
	return strconv.FormatInt(idCounter.Add(1), 10)
}

// SetSeed seeds the generator used for LAMMPS seeds and ion clouds,
// so the generated scripts are reproducible.
func SetSeed(seed int64) {
	rngMu.Lock()
	rng = rand.New(rand.NewSource(seed))
	rngMu.Unlock()
}

func newSeed() int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(maxSeed-1) + 1
}

func randFloat() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}
