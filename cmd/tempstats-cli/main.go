// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Fantom-foundation/tempstats/cmd/tempstats-cli/tempstats"
	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/Fantom-foundation/tempstats/utils"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// initTempstatsApp initializes a tempstats-cli app. This function is
// called by the main function and unit tests.
func initTempstatsApp() *cli.App {
	return &cli.App{
		Name:      "Temperature Statistics",
		HelpName:  "tempstats",
		Usage:     "descriptive statistics and charts of a key,value dataset",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&utils.MaxInputSizeFlag,
			&utils.UnitFlag,
		},
		Commands: []*cli.Command{
			&tempstats.AnalyzeCommand,
			&tempstats.ShowCommand,
			&tempstats.PlotCommand,
			&tempstats.PredictCommand,
		},
	}
}

// loadEnv exports the settings of an env file, which the TEMPSTATS_* flag
// variables then pick up. A missing file is not an error.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot load %v; %w", path, err)
	}
	return nil
}

// main implements "tempstats" cli application.
func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := initTempstatsApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
