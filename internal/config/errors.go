// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matching with [errors.Is]. The typed error structs in
// this file carry the details and report themselves as the corresponding
// sentinel.
var (
	// ErrUnknownEnvironment indicates an environment name outside the
	// recognized set (see [Environments]).
	ErrUnknownEnvironment = errors.New("unknown environment")
	// ErrMissingFields indicates required fields absent after merging all
	// sources and applying schema defaults.
	ErrMissingFields = errors.New("missing required fields")
	// ErrTypeMismatch indicates a present value that does not coerce to its
	// declared field type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrSourceUnavailable indicates a source layer that could not be loaded
	// (missing file, permission denied, malformed content). It is produced by
	// source loaders before resolution begins; the resolver itself performs
	// no I/O.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrInvalidSchema indicates a malformed schema declaration, such as an
	// enum field without members or a default that does not coerce.
	ErrInvalidSchema = errors.New("invalid schema")
)

// UnknownEnvironmentError reports an environment selector that does not match
// any recognized environment name.
type UnknownEnvironmentError struct {
	// Name is the rejected selector.
	Name string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment %q (known: %v)", e.Name, Environments())
}

// Is reports a match against [ErrUnknownEnvironment].
func (e *UnknownEnvironmentError) Is(target error) bool {
	return target == ErrUnknownEnvironment
}

// MissingFieldsError reports every required field that is absent from the
// merged configuration. Fields are sorted for stable output.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Is reports a match against [ErrMissingFields].
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// TypeMismatchError reports one field whose raw value failed coercion to its
// declared type.
type TypeMismatchError struct {
	// Field is the schema field name.
	Field string
	// Raw is the merged raw string value that failed to coerce.
	Raw string
	// Want is the declared field type.
	Want FieldType
	// Reason describes why coercion failed.
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s: value %q is not a valid %s: %s", e.Field, e.Raw, e.Want, e.Reason)
}

// Is reports a match against [ErrTypeMismatch].
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// SourceUnavailableError reports a source layer that could not be loaded from
// its medium.
type SourceUnavailableError struct {
	// Source names the layer, typically its file path.
	Source string
	// Err is the underlying medium error.
	Err error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
}

// Unwrap returns the underlying medium error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is reports a match against [ErrSourceUnavailable].
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ResolveError aggregates every validation failure discovered during one
// [Resolve] call. Resolution never partially succeeds: if any field is
// missing or fails coercion, the whole call fails with a ResolveError that
// lists all problems at once.
type ResolveError struct {
	// Missing is non-nil when one or more required fields are absent.
	Missing *MissingFieldsError
	// Mismatches holds one entry per field whose value failed coercion,
	// sorted by field name.
	Mismatches []*TypeMismatchError
}

func (e *ResolveError) Error() string {
	problems := e.Problems()
	return fmt.Sprintf("configuration is invalid (%d problems): %s",
		len(problems), strings.Join(problems, "; "))
}

// Problems returns one human-readable message per discovered failure,
// missing fields first, then coercion failures sorted by field name.
func (e *ResolveError) Problems() []string {
	var problems []string
	if e.Missing != nil {
		for _, field := range e.Missing.Fields {
			problems = append(problems, fmt.Sprintf("required field %s is not set", field))
		}
	}
	for _, mismatch := range e.Mismatches {
		problems = append(problems, mismatch.Error())
	}

	return problems
}

// Unwrap exposes the individual failures so callers can match them with
// [errors.Is] and [errors.As] through the aggregate.
func (e *ResolveError) Unwrap() []error {
	var errs []error
	if e.Missing != nil {
		errs = append(errs, e.Missing)
	}
	for _, mismatch := range e.Mismatches {
		errs = append(errs, mismatch)
	}

	return errs
}

func (e *ResolveError) empty() bool {
	return e.Missing == nil && len(e.Mismatches) == 0
}
