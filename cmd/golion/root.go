/*
 * root.go, part of golion.
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
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	lion "github.com/iontrap/golion"
	"github.com/iontrap/golion/internal/config"
)

//app holds what the commands share.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}
	root := &cobra.Command{
		Use:   "golion",
		Short: "Run LAMMPS simulations of trapped ions",
		Long: `golion builds LAMMPS input files for clouds of trapped ions from YAML
recipes, runs LAMMPS on them and reads the resulting dumps.

Settings are read from golion.yaml (in the working directory or in
$XDG_CONFIG_HOME/golion) and from GOLION_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./golion.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newRunCmd(a),
		newRenderCmd(a),
		newFindCmd(a),
		newDumpCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, used, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.verbose {
		a.cfg.Verbose = true
	}
	a.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "golion"})
	if a.cfg.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	lion.SetLogger(a.logger)
	if used != "" {
		a.logger.Debug("loaded config", "file", used)
	}
	if a.cfg.Seed != 0 {
		lion.SetSeed(a.cfg.Seed)
	}
	return nil
}
