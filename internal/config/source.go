// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source is one read-only configuration layer: a flat mapping from field
// names to raw string values, plus a name used in diagnostics. Sources carry
// no precedence of their own — precedence is the position in the ordered
// slice handed to [Resolve].
type Source struct {
	// Name identifies the layer in error messages, typically a file path or
	// "environ".
	Name string

	// Values holds the layer's raw key/value pairs. Keys not declared in the
	// schema are ignored by the resolver.
	Values map[string]string
}

// SourceOption adjusts how a file-backed source is loaded.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	ignoreMissing bool
}

// IgnoreMissing makes a file loader return an empty layer instead of a
// [SourceUnavailableError] when the file does not exist. Malformed or
// unreadable files still fail.
func IgnoreMissing() SourceOption {
	return func(o *sourceOptions) {
		o.ignoreMissing = true
	}
}

func applySourceOptions(opts []SourceOption) sourceOptions {
	var options sourceOptions
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// EnvironSource captures the current process environment as a layer.
//
// With a non-empty prefix only variables carrying it are included, with the
// prefix stripped: prefix "ENGO_" maps ENGO_APP_PORT to APP_PORT. An empty
// prefix includes the environment verbatim; undeclared keys are harmless
// because the resolver ignores them.
func EnvironSource(prefix string) Source {
	values := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}
		values[key] = value
	}

	return Source{Name: "environ", Values: values}
}

// DotenvSource loads a layer from a dotenv file (KEY=value lines) via
// godotenv.
//
// Returns a [SourceUnavailableError] when the file cannot be read or parsed,
// unless the file is missing and [IgnoreMissing] was given.
func DotenvSource(path string, opts ...SourceOption) (Source, error) {
	options := applySourceOptions(opts)

	values, err := godotenv.Read(path)
	if err != nil {
		if options.ignoreMissing && isNotExist(err) {
			return Source{Name: path, Values: map[string]string{}}, nil
		}
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	return Source{Name: path, Values: values}, nil
}

// YAMLSource loads a layer from a flat YAML mapping of scalars. Nested
// mappings and sequences are rejected: a layer is a flat key/value surface by
// contract.
func YAMLSource(path string, opts ...SourceOption) (Source, error) {
	options := applySourceOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		if options.ignoreMissing && isNotExist(err) {
			return Source{Name: path, Values: map[string]string{}}, nil
		}
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	values, err := flattenScalars(decoded)
	if err != nil {
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	return Source{Name: path, Values: values}, nil
}

// JSONSource loads a layer from a flat JSON object of scalars, mirroring
// [YAMLSource].
func JSONSource(path string, opts ...SourceOption) (Source, error) {
	options := applySourceOptions(opts)

	file, err := os.Open(path)
	if err != nil {
		if options.ignoreMissing && isNotExist(err) {
			return Source{Name: path, Values: map[string]string{}}, nil
		}
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var decoded map[string]any
	if err := decoder.Decode(&decoded); err != nil {
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	values, err := flattenScalars(decoded)
	if err != nil {
		return Source{}, &SourceUnavailableError{Source: path, Err: err}
	}

	return Source{Name: path, Values: values}, nil
}

// flattenScalars renders decoded scalar values back to raw strings so that
// file-backed layers go through exactly the same coercion path as dotenv and
// environment layers.
func flattenScalars(decoded map[string]any) (map[string]string, error) {
	values := make(map[string]string, len(decoded))
	for key, value := range decoded {
		switch v := value.(type) {
		case string:
			values[key] = v
		case bool:
			values[key] = strconv.FormatBool(v)
		case json.Number:
			values[key] = v.String()
		case int:
			values[key] = strconv.Itoa(v)
		case int64:
			values[key] = strconv.FormatInt(v, 10)
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			values[key] = ""
		default:
			return nil, fmt.Errorf("key %q holds a nested value; layers must be flat", key)
		}
	}

	return values, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
