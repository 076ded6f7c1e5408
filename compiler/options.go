package compiler

import "log/slog"

// Option configures the compiler.
type Option func(*compiler)

// WithOutputFilename instructs the compiler to write generated code
// to a file with the specified name within each package that contains
// generators.
func WithOutputFilename(outputFilename string) Option {
	return func(c *compiler) { c.outputFilename = outputFilename }
}

// WithBuildTags instructs the compiler to attach the specified build
// constraint to generated files, in addition to the constraint of the
// source files declaring the generators.
func WithBuildTags(buildTags string) Option {
	return func(c *compiler) { c.buildTags = buildTags }
}

// WithLogger sets the logger that the compiler reports progress to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *compiler) { c.logger = logger }
}

// WithYieldType changes the suspend capability type that identifies
// generator functions. The type must be generic with a single type
// parameter, the type of values emitted by generators.
func WithYieldType(pkgPath, name string) Option {
	return func(c *compiler) { c.yieldPackage, c.yieldType = pkgPath, name }
}

// WithConcurrency limits the number of packages compiled concurrently.
func WithConcurrency(n int) Option {
	return func(c *compiler) { c.concurrency = n }
}
