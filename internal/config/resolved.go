// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// Resolved is the final, validated, typed configuration value. It is created
// once per process by [Resolve] and never mutated afterwards: accessors
// return copies of any mutable value, so concurrent readers need no
// synchronization. Reconfiguration requires a new process.
type Resolved struct {
	environment Environment
	values      map[string]any
	raw         map[string]string
}

// Environment returns the deployment environment this configuration was
// resolved for.
func (r *Resolved) Environment() Environment {
	return r.environment
}

// Keys returns the names of all set fields in lexicographic order. Optional
// fields without a value or default are not included.
func (r *Resolved) Keys() []string {
	return sortedKeys(r.values)
}

// Has reports whether the named field carries a value.
func (r *Resolved) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Raw returns the merged raw string the named field was coerced from, or ""
// if the field is not set.
func (r *Resolved) Raw(name string) string {
	return r.raw[name]
}

// String returns the named string or enum field. Unset fields and fields of
// another type yield "".
func (r *Resolved) String(name string) string {
	value, _ := r.values[name].(string)
	return value
}

// Int returns the named integer field, or 0 when unset.
func (r *Resolved) Int(name string) int {
	value, _ := r.values[name].(int)
	return value
}

// Bool returns the named boolean field, or false when unset.
func (r *Resolved) Bool(name string) bool {
	value, _ := r.values[name].(bool)
	return value
}

// URL returns a copy of the named URL field, or nil when unset.
func (r *Resolved) URL(name string) *url.URL {
	value, ok := r.values[name].(*url.URL)
	if !ok {
		return nil
	}

	clone := *value
	if value.User != nil {
		user := *value.User
		clone.User = &user
	}

	return &clone
}

// List returns a copy of the named list field, or nil when unset.
func (r *Resolved) List(name string) []string {
	value, ok := r.values[name].([]string)
	if !ok {
		return nil
	}

	return slices.Clone(value)
}

// Duration returns the named duration field, or 0 when unset.
func (r *Resolved) Duration(name string) time.Duration {
	value, _ := r.values[name].(time.Duration)
	return value
}

// Bind populates a struct tagged with `env` tags (caarlos0/env) from the
// merged raw values, without consulting the process environment. It lets
// callers carry their configuration as a plain typed struct while resolution
// and validation stay in one place.
func (r *Resolved) Bind(target any) error {
	err := env.ParseWithOptions(target, env.Options{Environment: r.raw})
	if err != nil {
		return fmt.Errorf("error binding resolved config: %w", err)
	}

	return nil
}

// Equal reports field-for-field equality of two resolved configurations,
// including their environments. Two [Resolve] calls over identical inputs
// always produce equal values.
func (r *Resolved) Equal(other *Resolved) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.environment == other.environment &&
		reflect.DeepEqual(r.values, other.values)
}
