// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
)

// Resolve produces one validated, immutable [Resolved] value from an
// environment selector, an ordered slice of source layers (lowest precedence
// first), and a field schema.
//
// Resolution is a pure in-memory transformation: no file or network I/O, no
// retries, designed to be called exactly once at process startup. The steps,
// in order:
//  1. the environment must belong to the closed recognized set;
//  2. the schema must be well formed (see [Schema.Validate]);
//  3. defaults and layers are merged key-wise, last writer wins;
//  4. every required field must be present — all missing fields are
//     collected, not just the first;
//  5. every present declared field must coerce to its type — all coercion
//     failures are collected.
//
// Any step-4 or step-5 failure returns a single aggregated [ResolveError];
// the caller is expected to report every problem and terminate startup.
// Keys present in sources but absent from the schema are ignored, so the
// resolved field set is always a subset of the schema's.
func Resolve(environment Environment, sources []Source, schema Schema) (*Resolved, error) {
	if _, err := ParseEnvironment(string(environment)); err != nil {
		return nil, err
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	merged, err := mergeSources(schema, sources)
	if err != nil {
		return nil, err
	}

	resolveErr := &ResolveError{}

	// Presence first, coercion second, so a report never mixes "not set"
	// and "wrong type" for the same field.
	var missing []string
	for _, name := range schema.sortedNames() {
		field := schema[name]
		if _, present := merged[name]; !present && field.Required {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		resolveErr.Missing = &MissingFieldsError{Fields: missing}
	}

	values := make(map[string]any, len(schema))
	raw := make(map[string]string, len(schema))
	for _, name := range schema.sortedNames() {
		field := schema[name]
		rawValue, present := merged[name]
		if !present {
			continue
		}

		value, coerceErr := coerce(field, rawValue)
		if coerceErr != nil {
			resolveErr.Mismatches = append(resolveErr.Mismatches, &TypeMismatchError{
				Field:  name,
				Raw:    rawValue,
				Want:   field.Type,
				Reason: coerceErr.Error(),
			})
			continue
		}

		values[name] = value
		raw[name] = rawValue
	}

	if !resolveErr.empty() {
		return nil, resolveErr
	}

	return &Resolved{
		environment: environment,
		values:      values,
		raw:         raw,
	}, nil
}

// sortedKeys returns the keys of a string-keyed map in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
