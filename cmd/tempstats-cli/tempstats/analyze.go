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

package tempstats

import (
	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/Fantom-foundation/tempstats/report"
	"github.com/Fantom-foundation/tempstats/utils"
	"github.com/urfave/cli/v2"
)

// AnalyzeCommand data structure for the analyze app
var AnalyzeCommand = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Aliases:   []string{"a"},
	Usage:     "computes descriptive statistics of a dataset",
	ArgsUsage: "[<input-file>]",
	Flags: []cli.Flag{
		&utils.FormatFlag,
		&utils.OutputFlag,
		&utils.SampleSizeFlag,
		&utils.SeedFlag,
		&utils.TrimFlag,
	},
	Description: `
The analyze command reads one input file (default: archive.csv) with
one <key>,<value> record per line and prints mean, median, modes,
variance, standard deviation, a random sample, trimmed means, the
first and third quartile and the week forecast.`,
}

// analyzeAction implements the analyze command.
func analyzeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Analyze")

	ds, engine, err := loadEngine(cfg, log)
	if err != nil {
		return err
	}

	log.Info("Compute statistics")
	r, err := report.NewReport(engine, report.Options{
		Source:     ds.String(),
		Trims:      cfg.Trims,
		SampleSize: cfg.SampleSize,
		Rand:       cfg.Rand(),
	})
	if err != nil {
		return err
	}

	text := r.Text()
	if cfg.Format == "json" {
		if text, err = r.JSON(); err != nil {
			return err
		}
	}
	if cfg.Output != "" {
		log.Noticef("Write report to %v", cfg.Output)
	}
	return emit(cfg, ctx.App.Writer, func() string { return text })
}
