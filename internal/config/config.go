// Package config resolves the executable's settings from the command line,
// the environment and an optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/fbleibel/redmart-ski/gridgraph"
)

// Environment variables consulted when the matching flag is absent.
const (
	EnvLogLevel = "SKIING_LOG_LEVEL"
	EnvDiagonal = "SKIING_DIAGONAL"
)

// ErrTooManyArgs is returned when more than one map file is given.
var ErrTooManyArgs = errors.New("config: expected a single map file")

// Options mirrors the command line.
type Options struct {
	Debug    bool   `short:"d" long:"debug" description:"log solver diagnostics to stderr (same as --log-level=debug)"`
	LogLevel string `long:"log-level" env:"SKIING_LOG_LEVEL" default:"warn" choice:"error" choice:"warn" choice:"info" choice:"debug" description:"minimum level of messages written to stderr"`
	Diagonal bool   `long:"diagonal" description:"also allow moves to the four diagonal neighbors (env SKIING_DIAGONAL)"`
	Version  bool   `short:"v" long:"version" description:"display the version and exit"`

	Positional struct {
		MapFile string   `positional-arg-name:"map-file" description:"path to the elevation map"`
		Rest    []string `positional-arg-name:"extra"`
	} `positional-args:"yes"`
}

// Config is the resolved configuration.
type Config struct {
	MapFile  string
	LogLevel string
	Diagonal bool
	Version  bool
}

// GridOptions returns the gridgraph options implied by the configuration.
func (c *Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	return opts
}

// Load parses args, which exclude the program name. A missing .env file is
// not an error. A help request is reported as an error; see IsHelp.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "skiing"
	parser.Usage = "[OPTIONS] map-file"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if len(opts.Positional.Rest) > 0 {
		return nil, fmt.Errorf("%w, got %d", ErrTooManyArgs, 1+len(opts.Positional.Rest))
	}

	cfg := &Config{
		MapFile:  opts.Positional.MapFile,
		LogLevel: opts.LogLevel,
		Diagonal: opts.Diagonal,
		Version:  opts.Version,
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if !cfg.Diagonal {
		if v, ok := os.LookupEnv(EnvDiagonal); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("config: invalid %s value %q: %w", EnvDiagonal, v, err)
			}
			cfg.Diagonal = b
		}
	}
	return cfg, nil
}

// IsHelp reports whether err is the help text produced by -h/--help.
func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
