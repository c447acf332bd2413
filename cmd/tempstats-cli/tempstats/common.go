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

// Package tempstats implements the commands of the tempstats cli.
package tempstats

import (
	"io"

	"github.com/Fantom-foundation/tempstats/dataset"
	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/Fantom-foundation/tempstats/statistics"
	"github.com/Fantom-foundation/tempstats/utils"
)

// loadDataset reads the configured input file.
func loadDataset(cfg *utils.Config, log logger.Logger) (*dataset.Dataset, error) {
	log.Infof("Read input file %v", cfg.InputFile)
	ds, err := dataset.Load(cfg.InputFile, dataset.LoadOptions{MaxSize: cfg.MaxInputSize})
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %v", ds)
	return ds, nil
}

// loadEngine reads the configured input file and builds an engine over it.
func loadEngine(cfg *utils.Config, log logger.Logger) (*dataset.Dataset, *statistics.Engine, error) {
	ds, err := loadDataset(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	e, err := statistics.NewEngine(ds.Records)
	if err != nil {
		return nil, nil, err
	}
	return ds, e, nil
}

// emit sends text to w, or to the output file when one is configured.
func emit(cfg *utils.Config, w io.Writer, text func() string) error {
	printers := utils.NewPrinters()
	if cfg.Output != "" {
		printers.AddPrintToFile(cfg.Output, text)
	} else {
		printers.AddPrintToWriter(w, text)
	}
	defer printers.Close()
	return printers.Print()
}
