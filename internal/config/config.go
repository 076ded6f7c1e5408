// Package config loads the configuration of the itergen command.
//
// The configuration is read from a YAML file, .itergen.yaml in the working
// directory by default, and command line flags take precedence over the
// values it sets:
//
//	output: itergen_generated.go
//	tags: "!race"
//	concurrency: 4
//	yield:
//	  package: github.com/stealthrocket/itergen
//	  type: Yield
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/stealthrocket/itergen/compiler"
)

// DefaultFilename is the name of the configuration file loaded when none is
// named explicitly.
const DefaultFilename = ".itergen.yaml"

// Config is the configuration of the compiler.
type Config struct {
	// Output is the name of the file written in each package declaring
	// generator functions.
	Output string `yaml:"output" validate:"required,endswith=.go,excludes=/"`
	// Tags is a build constraint added to generated files.
	Tags string `yaml:"tags,omitempty"`
	// Concurrency limits the number of packages compiled in parallel. Zero
	// means GOMAXPROCS.
	Concurrency int `yaml:"concurrency,omitempty" validate:"gte=0"`
	// Yield names the suspend capability type identifying generator
	// functions.
	Yield Yield `yaml:"yield"`
}

// Yield is a generic type declared in a package.
type Yield struct {
	Package string `yaml:"package" validate:"required"`
	Type    string `yaml:"type" validate:"required"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Output: compiler.DefaultOutputFilename,
		Yield: Yield{
			Package: compiler.DefaultYieldPackage,
			Type:    compiler.DefaultYieldType,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration file at path. If path is empty, DefaultFilename
// is read if it exists, and the default configuration is returned otherwise.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultFilename
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses and validates a configuration. Settings missing from the YAML
// document keep their default value.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.UnmarshalWithOptions(b, c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = fmt.Sprintf("%s: failed %q constraint", e.Namespace(), e.Tag())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// Flags declares the command line flags overriding the configuration.
func Flags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", compiler.DefaultOutputFilename, "Name of the generated files")
	flags.StringP("tags", "t", "", "Build constraint added to generated files")
	flags.IntP("concurrency", "j", 0, "Number of packages compiled in parallel (0 means GOMAXPROCS)")
	flags.String("yield", compiler.DefaultYieldPackage+"."+compiler.DefaultYieldType,
		"Suspend capability type, as a package path followed by a type name")
}

// Override applies the flags set on the command line, and validates the
// resulting configuration.
func (c *Config) Override(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("output") {
		if c.Output, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("tags") {
		if c.Tags, err = flags.GetString("tags"); err != nil {
			return err
		}
	}
	if flags.Changed("concurrency") {
		if c.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return err
		}
	}
	if flags.Changed("yield") {
		yield, err := flags.GetString("yield")
		if err != nil {
			return err
		}
		i := strings.LastIndexByte(yield, '.')
		if i < 0 {
			return fmt.Errorf("invalid suspend capability type %q: expected a package path followed by a type name", yield)
		}
		c.Yield = Yield{Package: yield[:i], Type: yield[i+1:]}
	}
	return c.Validate()
}

// Options returns the compiler options of the configuration.
func (c *Config) Options() []compiler.Option {
	options := []compiler.Option{
		compiler.WithOutputFilename(c.Output),
		compiler.WithYieldType(c.Yield.Package, c.Yield.Type),
	}
	if c.Tags != "" {
		options = append(options, compiler.WithBuildTags(c.Tags))
	}
	if c.Concurrency > 0 {
		options = append(options, compiler.WithConcurrency(c.Concurrency))
	}
	return options
}
