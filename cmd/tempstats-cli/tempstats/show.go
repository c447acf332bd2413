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
	"strings"

	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/Fantom-foundation/tempstats/report"
	"github.com/Fantom-foundation/tempstats/utils"
	"github.com/urfave/cli/v2"
)

// ShowCommand data structure for the show app
var ShowCommand = cli.Command{
	Action:    showAction,
	Name:      "show",
	Usage:     "lists the records of a dataset in file order",
	ArgsUsage: "[<input-file>]",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&utils.TableFlag,
	},
}

// showAction implements the show command.
func showAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Show")

	ds, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	var b strings.Builder
	if cfg.Table {
		report.WriteRecordTable(&b, ds.Records, cfg.Unit)
	} else if err := report.WriteRecords(&b, ds.Records, cfg.Unit); err != nil {
		return err
	}
	return emit(cfg, ctx.App.Writer, b.String)
}
