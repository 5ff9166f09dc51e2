// Copyright ©2024 The isingpf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds the defaults a --config YAML file may override, so
// repeated batch runs need not repeat every flag.
type config struct {
	Precision uint   `yaml:"precision"`
	LogLevel  string `yaml:"logLevel"`
}

var defaultConfig = config{Precision: 256, LogLevel: "info"}

var (
	cfgFile string
	cfg     = defaultConfig
	log     = zerolog.New(io.Discard)
)

var rootCmd = &cobra.Command{
	Use:   "isingpf",
	Short: "Partition functions and free energies for 2D Ising models via Pfaffians",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := loadConfig(cfgFile, &cfg); err != nil {
				return err
			}
		}
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("isingpf: invalid log level %q: %w", cfg.LogLevel, err)
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (precision, logLevel)")
	rootCmd.PersistentFlags().UintVar(&cfg.Precision, "precision", defaultConfig.Precision, "scalar precision, in bits")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", defaultConfig.LogLevel, "zerolog level (debug, info, warn, error)")
}

func loadConfig(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("isingpf: reading config: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("isingpf: parsing config %s: %w", path, err)
	}
	return nil
}
