package config

import (
	"errors"
	"fmt"
)

// Builder accumulates source layers in precedence order (lowest first) and
// resolves them in one shot. Loader errors are captured instead of aborting
// the chain, so a single startup failure can still report every broken layer.
type Builder struct {
	environment Environment
	sources     []Source
	err         error
}

// NewBuilder starts a builder for the named environment. An unrecognized
// name is captured and surfaced by [Builder.Resolve].
func NewBuilder(environmentName string) *Builder {
	builder := &Builder{
		sources: make([]Source, 0, 4),
	}

	environment, err := ParseEnvironment(environmentName)
	if err != nil {
		builder.err = err
		return builder
	}

	builder.environment = environment
	return builder
}

// WithDotenvFile appends a dotenv file layer.
func (b *Builder) WithDotenvFile(path string, opts ...SourceOption) *Builder {
	return b.append(func() (Source, error) { return DotenvSource(path, opts...) })
}

// WithEnvironmentFile appends the dotenv layer for the builder's environment,
// ".env.<environment>". The file is optional: a missing one contributes an
// empty layer.
func (b *Builder) WithEnvironmentFile(dir string) *Builder {
	if b.err != nil {
		return b
	}

	path := fmt.Sprintf("%s/.env.%s", dir, b.environment)
	return b.WithDotenvFile(path, IgnoreMissing())
}

// WithYAMLFile appends a flat YAML file layer.
func (b *Builder) WithYAMLFile(path string, opts ...SourceOption) *Builder {
	return b.append(func() (Source, error) { return YAMLSource(path, opts...) })
}

// WithJSONFile appends a flat JSON file layer.
func (b *Builder) WithJSONFile(path string, opts ...SourceOption) *Builder {
	return b.append(func() (Source, error) { return JSONSource(path, opts...) })
}

// WithEnviron appends the process environment as the layer at this position,
// optionally filtered by prefix (see [EnvironSource]).
func (b *Builder) WithEnviron(prefix string) *Builder {
	b.sources = append(b.sources, EnvironSource(prefix))
	return b
}

// WithSource appends an already-loaded layer.
func (b *Builder) WithSource(source Source) *Builder {
	b.sources = append(b.sources, source)
	return b
}

// Resolve validates the accumulated layers against schema. Captured loader
// errors take precedence: resolution is never attempted over a partially
// loaded source set.
func (b *Builder) Resolve(schema Schema) (*Resolved, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	return Resolve(b.environment, b.sources, schema)
}

func (b *Builder) append(load func() (Source, error)) *Builder {
	source, err := load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, source)
	return b
}
