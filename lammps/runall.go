/*
 * runall.go, part of golion.
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

package lammps

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunAll runs the handles, at most limit at a time (no limit if
// limit <= 0). The first failure cancels the runs still going. The
// results are in the order of the handles. Failed runs keep their
// result; it is nil only for runs that never started.
func RunAll(ctx context.Context, handles []*Handle, limit int) ([]*Result, error) {
	results := make([]*Result, len(handles))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, h := range handles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := h.Run(ctx)
			results[i] = res
			if err != nil {
				return fmt.Errorf("run %d (%s): %w", i, h.Name(), err)
			}
			return nil
		})
	}
	return results, g.Wait()
}
