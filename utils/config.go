package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Fantom-foundation/tempstats/logger"
	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli/v2"
)

// DefaultInputFile is read when no input file is given.
const DefaultInputFile = "archive.csv"

// ErrInvalidConfig is returned for flag values which cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents execution configuration for tempstats commands.
type Config struct {
	AppName     string
	CommandName string

	Bins         int               // number of histogram bins
	Chart        string            // chart kind to render
	DotPrecision int               // decimal places of dot plot values
	Format       string            // report format
	InputFile    string            // path of the input file
	LogLevel     string            // level of the logging of the app action
	MaxInputSize datasize.ByteSize // input size limit, zero disables it
	Output       string            // output file, empty for stdout
	Port         string            // port of the chart web server, empty disables it
	SampleSize   int               // number of random sample draws, zero for dataset size
	Seed         int64             // random seed, zero for clock-based seeding
	Table        bool              // render records as table
	Trims        []float64         // trim percentages
	Unit         string            // unit of the values
}

// DefaultConfig returns a configuration holding the flag defaults.
func DefaultConfig() *Config {
	return &Config{
		Bins:         BinsFlag.Value,
		Chart:        ChartFlag.Value,
		Format:       FormatFlag.Value,
		InputFile:    DefaultInputFile,
		LogLevel:     logger.LogLevelFlag.Value,
		MaxInputSize: 16 * datasize.MB,
		Trims:        []float64{5, 10, 20},
		Unit:         UnitFlag.Value,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
// Flags the command does not define keep their default values.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}

	switch ctx.Args().Len() {
	case 0:
	case 1:
		cfg.InputFile = ctx.Args().First()
	default:
		return nil, fmt.Errorf("%w; expected at most one input file, got %d arguments", ErrInvalidConfig, ctx.Args().Len())
	}

	if isDefined(ctx, BinsFlag.Name) {
		cfg.Bins = ctx.Int(BinsFlag.Name)
	}
	if isDefined(ctx, ChartFlag.Name) {
		cfg.Chart = ctx.String(ChartFlag.Name)
	}
	if isDefined(ctx, DotPrecisionFlag.Name) {
		cfg.DotPrecision = ctx.Int(DotPrecisionFlag.Name)
	}
	if isDefined(ctx, FormatFlag.Name) {
		cfg.Format = ctx.String(FormatFlag.Name)
	}
	if isDefined(ctx, logger.LogLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logger.LogLevelFlag.Name)
	}
	if isDefined(ctx, MaxInputSizeFlag.Name) {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(ctx.String(MaxInputSizeFlag.Name))); err != nil {
			return nil, fmt.Errorf("%w; cannot parse %v: %v", ErrInvalidConfig, MaxInputSizeFlag.Name, err)
		}
		cfg.MaxInputSize = size
	}
	if isDefined(ctx, OutputFlag.Name) {
		cfg.Output = ctx.Path(OutputFlag.Name)
	}
	if isDefined(ctx, PortFlag.Name) {
		cfg.Port = ctx.String(PortFlag.Name)
	}
	if isDefined(ctx, SampleSizeFlag.Name) {
		cfg.SampleSize = ctx.Int(SampleSizeFlag.Name)
	}
	if isDefined(ctx, SeedFlag.Name) {
		cfg.Seed = ctx.Int64(SeedFlag.Name)
	}
	if isDefined(ctx, TableFlag.Name) {
		cfg.Table = ctx.Bool(TableFlag.Name)
	}
	if isDefined(ctx, TrimFlag.Name) {
		cfg.Trims = ctx.Float64Slice(TrimFlag.Name)
	}
	if isDefined(ctx, UnitFlag.Name) {
		cfg.Unit = ctx.String(UnitFlag.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.report(logger.NewLogger(cfg.LogLevel, "Config"))
	return cfg, nil
}

// Validate checks value ranges of the configuration.
func (cfg *Config) Validate() error {
	if cfg.Bins < 1 {
		return fmt.Errorf("%w; number of bins must be positive, got %d", ErrInvalidConfig, cfg.Bins)
	}
	if cfg.DotPrecision < 0 || cfg.DotPrecision > 6 {
		return fmt.Errorf("%w; dot precision must be between 0 and 6, got %d", ErrInvalidConfig, cfg.DotPrecision)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("%w; unknown report format %q", ErrInvalidConfig, cfg.Format)
	}
	if cfg.SampleSize < 0 {
		return fmt.Errorf("%w; sample size must not be negative, got %d", ErrInvalidConfig, cfg.SampleSize)
	}
	for _, trim := range cfg.Trims {
		if trim < 0 || trim >= 100 {
			return fmt.Errorf("%w; trim percentage %v is not in [0,100)", ErrInvalidConfig, trim)
		}
	}
	return nil
}

// Rand returns a random generator seeded with Seed, or with the clock if
// no seed was given.
func (cfg *Config) Rand() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// report logs the configuration.
func (cfg *Config) report(log logger.Logger) {
	log.Noticef("Run config:")
	log.Infof("Input file: %v", cfg.InputFile)
	if cfg.MaxInputSize > 0 {
		log.Infof("Input size limit: %v", cfg.MaxInputSize.HumanReadable())
	}
	if cfg.Seed != 0 {
		log.Infof("Random seed: %v", cfg.Seed)
	}
	log.Debugf("Trim percentages: %v", cfg.Trims)
	log.Debugf("Unit: %v", cfg.Unit)
}

// isDefined checks whether a flag is declared by the app or any command in
// the context lineage.
func isDefined(ctx *cli.Context, name string) bool {
	var flags []cli.Flag
	if ctx.App != nil {
		flags = append(flags, ctx.App.Flags...)
	}
	for _, c := range ctx.Lineage() {
		if c.Command != nil {
			flags = append(flags, c.Command.Flags...)
		}
	}
	for _, f := range flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}
