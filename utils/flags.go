package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the tempstats commands.
var (
	BinsFlag = cli.IntFlag{
		Name:    "bins",
		Usage:   "number of histogram bins",
		Value:   4,
		EnvVars: []string{"TEMPSTATS_BINS"},
	}
	ChartFlag = cli.StringFlag{
		Name:    "chart",
		Aliases: []string{"c"},
		Usage:   "chart to draw (\"histogram\", \"boxplot\", \"dotplot\", \"all\")",
		Value:   "all",
	}
	DotPrecisionFlag = cli.IntFlag{
		Name:  "dot-precision",
		Usage: "number of decimal places values are rounded to in a dot plot",
		Value: 0,
	}
	FormatFlag = cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "report format (\"text\", \"json\")",
		Value:   "text",
	}
	MaxInputSizeFlag = cli.StringFlag{
		Name:    "max-input-size",
		Usage:   "refuse input files larger than this (e.g. 512KB, 16MB; 0 disables the limit)",
		Value:   "16MB",
		EnvVars: []string{"TEMPSTATS_MAX_INPUT_SIZE"},
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
	SampleSizeFlag = cli.IntFlag{
		Name:  "sample-size",
		Usage: "number of draws for the random sample (0 draws as many values as the dataset holds)",
		Value: 0,
	}
	SeedFlag = cli.Int64Flag{
		Name:    "seed",
		Usage:   "seed of the random generator (0 seeds from the clock)",
		Value:   0,
		EnvVars: []string{"TEMPSTATS_SEED"},
	}
	TableFlag = cli.BoolFlag{
		Name:  "table",
		Usage: "render records as a bordered table",
	}
	TrimFlag = cli.Float64SliceFlag{
		Name:  "trim",
		Usage: "trim percentages for trimmed means",
		Value: cli.NewFloat64Slice(5, 10, 20),
	}
	UnitFlag = cli.StringFlag{
		Name:    "unit",
		Aliases: []string{"u"},
		Usage:   "unit appended to displayed values",
		Value:   "F",
		EnvVars: []string{"TEMPSTATS_UNIT"},
	}
)
