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

// PredictCommand data structure for the predict app
var PredictCommand = cli.Command{
	Action:    predictAction,
	Name:      "predict",
	Usage:     "prints the week forecast of a dataset",
	ArgsUsage: "[<input-file>]",
	Flags: []cli.Flag{
		&utils.FormatFlag,
		&utils.OutputFlag,
	},
	Description: `
The forecast window holds the seven lowest values of the dataset
together with their average and standard deviation.`,
}

// predictAction implements the predict command.
func predictAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Predict")

	_, engine, err := loadEngine(cfg, log)
	if err != nil {
		return err
	}

	f := report.NewForecast(engine.PredictTemps())
	text := f.Text(cfg.Unit)
	if cfg.Format == "json" {
		if text, err = f.JSON(); err != nil {
			return err
		}
	}
	return emit(cfg, ctx.App.Writer, func() string { return text })
}
