/*
 * find.go, part of golion.
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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iontrap/golion/lammps"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "List the LAMMPS executables in the PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := lammps.SearchExecutables()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range found {
				fmt.Fprintln(out, f)
			}
			if p, err := lammps.LookPath(a.cfg.Executable); err == nil {
				fmt.Fprintf(out, "configured executable: %s\n", p)
			} else {
				a.logger.Warn("configured executable not found", "executable", a.cfg.Executable)
			}
			return nil
		},
	}
}
