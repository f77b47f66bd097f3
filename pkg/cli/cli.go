package cli

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/runetrie/pkg/config"
	"github.com/khalid-nowaf/runetrie/pkg/logging"
	"github.com/rs/zerolog"
)

// Context is handed to the Run method of every command.
type Context struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
}

// Globals are the flags shared by all commands.
type Globals struct {
	Config   string `help:"Configuration file (yaml, json or toml)." type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error), overrides the configuration."`
	JSONLogs bool   `name:"json-logs" help:"Log JSON lines instead of console output."`
}

// CLI is the root command.
type CLI struct {
	Globals

	Complete CompleteCmd `cmd:"" help:"List the words, or the suffixes, starting with a prefix."`
	Check    CheckCmd    `cmd:"" help:"Check if words or prefixes are in the word lists."`
	Cut      CutCmd      `cmd:"" help:"Remove everything below a prefix and write both parts to files."`
	Bench    BenchCmd    `cmd:"" help:"Insert, enumerate and remove random words and report timings."`
	Serve    ServeCmd    `cmd:"" help:"Serve the word lists over HTTP."`
	Shell    ShellCmd    `cmd:"" help:"Interactive prompt with Tab completion."`
}

// Execute parses args and runs the selected command, writing results to out.
func Execute(args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("runetrie"),
		kong.Description("Prefix tree tools for word lists."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx, err := newContext(cli.Globals, out)
	if err != nil {
		return err
	}
	return kctx.Run(ctx)
}

func newContext(globals Globals, out io.Writer) (*Context, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if globals.LogLevel != "" {
		level = globals.LogLevel
	}
	logger := logging.New(level, cfg.Log.Pretty && !globals.JSONLogs)

	return &Context{Config: cfg, Logger: logger, Out: out}, nil
}
