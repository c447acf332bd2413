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
	"fmt"
	"os"

	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/Fantom-foundation/tempstats/statistics"
	"github.com/Fantom-foundation/tempstats/utils"
	"github.com/Fantom-foundation/tempstats/visualizer"
	"github.com/urfave/cli/v2"
)

// defaultChartFile is written when neither an output file nor a port is given.
const defaultChartFile = "./charts.html"

// PlotCommand data structure for the plot app
var PlotCommand = cli.Command{
	Action:    plotAction,
	Name:      "plot",
	Aliases:   []string{"p"},
	Usage:     "draws a histogram, boxplot or dotplot of a dataset",
	ArgsUsage: "[<input-file>]",
	Flags: []cli.Flag{
		&utils.BinsFlag,
		&utils.ChartFlag,
		&utils.DotPrecisionFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
	},
	Description: `
The plot command writes the selected chart as an HTML page. With
--port the charts are served instead, one page per chart.`,
}

// plotAction implements the plot command.
func plotAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Plot")

	kind, err := visualizer.ParseKind(cfg.Chart)
	if err != nil {
		return err
	}

	ds, engine, err := loadEngine(cfg, log)
	if err != nil {
		return err
	}

	o := visualizer.Options{
		Title:     "Temperature Statistics",
		Subtitle:  ds.Source,
		XLabel:    fmt.Sprintf("Value (°%s)", cfg.Unit),
		YLabel:    "Count",
		Bins:      cfg.Bins,
		Precision: cfg.DotPrecision,
		Summary:   engineSummary(engine),
	}

	if cfg.Port != "" {
		log.Noticef("Open web browser with http://localhost:%v", cfg.Port)
		log.Notice("Cancel plot with ^C")
		return visualizer.FireUpWeb(cfg.Port, engine.Sample(), o)
	}

	output := cfg.Output
	if output == "" {
		output = defaultChartFile
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("cannot create chart file; %w", err)
	}
	defer file.Close()

	log.Noticef("Write %v chart to %v", kind, output)
	if err := visualizer.Render(file, kind, engine.Sample(), o); err != nil {
		return fmt.Errorf("cannot render chart; %w", err)
	}
	return file.Close()
}

// engineSummary returns the box plot summary with the engine's quartiles,
// so the chart matches the analyze report. It returns nil for samples too
// small to have quartiles.
func engineSummary(engine *statistics.Engine) *visualizer.FiveNumbers {
	q1, err := engine.Quartile(0.25)
	if err != nil {
		return nil
	}
	q3, err := engine.Quartile(0.75)
	if err != nil {
		return nil
	}
	return &visualizer.FiveNumbers{
		Min:    engine.Min(),
		Q1:     q1,
		Median: engine.Median(),
		Q3:     q3,
		Max:    engine.Max(),
	}
}
