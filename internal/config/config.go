/*
 * config.go, part of golion.
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

// Package config loads the settings of the golion command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "golion"
	// EnvPrefix is the prefix of the environment variables read.
	EnvPrefix = "GOLION"
)

// Config holds the settings of the golion command. Recipes can still
// override the LAMMPS settings for a single simulation.
type Config struct {
	Executable string `mapstructure:"executable"`
	GPU        int    `mapstructure:"gpu"`
	Jobs       int    `mapstructure:"jobs"`
	Output     string `mapstructure:"output"` //directory for the simulations
	Verbose    bool   `mapstructure:"verbose"`
	Seed       int64  `mapstructure:"seed"` //0 means not seeded
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Executable: "lmp",
		Jobs:       1,
		Output:     ".",
	}
}

// Dir returns the directory of the user configuration file:
// $XDG_CONFIG_HOME/golion, or ~/.config/golion.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the configuration. If path is not empty, that file is used
// and must exist. Otherwise golion.yaml is looked for in the working
// directory and then in Dir. GOLION_* environment variables take
// precedence over the files. Load returns the file used, if any.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("executable", d.Executable)
	v.SetDefault("gpu", d.GPU)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("output", d.Output)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("seed", d.Seed)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	return c, v.ConfigFileUsed(), nil
}
