package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/stealthrocket/itergen/compiler"
	"github.com/stealthrocket/itergen/internal/config"
)

const long = `
itergen compiles Go generator functions into state machines.

A generator function receives an itergen.Yield parameter and calls it to emit
values. For each package declaring generator functions, itergen writes a file
with one state machine type per function, whose Next method resumes the body
until the next value is emitted.

When PATH is omitted and itergen is invoked by go generate, the package of the
file holding the go:generate directive is compiled.`

type globalOptions struct {
	configPath string
	verbose    bool
	jsonLog    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "itergen [PATH]",
		Short:         "Compile generator functions into state machines",
		Long:          long[1:],
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default "+config.DefaultFilename+" if it exists)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages")
	flags.BoolVar(&opts.jsonLog, "json-log", false, "Log messages as JSON")
	config.Flags(flags)

	root.AddCommand(
		&cobra.Command{
			Use:   "generate [PATH]",
			Short: "Write the state machines of the generator functions of packages",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return generate(cmd, opts, args)
			},
		},
		newInspectCommand(opts),
	)
	return root
}

func generate(cmd *cobra.Command, opts *globalOptions, args []string) error {
	options, err := compilerOptions(cmd, opts)
	if err != nil {
		return err
	}
	return compiler.Compile(cmd.Context(), packagePath(args), options...)
}

// compilerOptions loads the configuration, applies the command line flags,
// and returns the options of the compiler.
func compilerOptions(cmd *cobra.Command, opts *globalOptions) ([]compiler.Option, error) {
	c, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := c.Override(cmd.Flags()); err != nil {
		return nil, err
	}
	logger := setupLogging(cmd.ErrOrStderr(), opts)
	logger.Debug("loaded configuration",
		"output", c.Output,
		"tags", c.Tags,
		"yield", c.Yield.Package+"."+c.Yield.Type)
	return append(c.Options(), compiler.WithLogger(logger)), nil
}

func packagePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	// If the compiler was invoked via go generate, the GOFILE
	// environment variable will be set with the name of the file
	// that contained the go:generate directive, and the current
	// working directory will be set to the directory that
	// contained the file.
	if gofile := os.Getenv("GOFILE"); gofile != "" {
		return gofile
	}
	return "."
}

func setupLogging(w io.Writer, opts *globalOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.jsonLog {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:   level,
			NoColor: os.Getenv("NO_COLOR") != "",
		})
	}
	return slog.New(handler)
}

func version() (version string) {
	version = "devel"
	if info, ok := debug.ReadBuildInfo(); ok {
		switch info.Main.Version {
		case "":
		case "(devel)":
		default:
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				version += " " + setting.Value
			}
		}
	}
	return
}
