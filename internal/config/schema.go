// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// FieldType declares how a raw string value is coerced during resolution.
type FieldType int

// Supported field types.
const (
	// TypeString accepts any raw value unchanged.
	TypeString FieldType = iota
	// TypeInt coerces via base-10 integer parsing.
	TypeInt
	// TypeBool accepts exactly "true" or "false"; anything else (including
	// "1", "yes", "TRUE") is a mismatch.
	TypeBool
	// TypeURL requires an absolute URL with a scheme and a host.
	TypeURL
	// TypeEnum requires exact membership in the field's Enum set.
	TypeEnum
	// TypeList splits on commas, trims surrounding whitespace, and drops
	// empty entries. Order is preserved and duplicates are kept.
	TypeList
	// TypeDuration coerces via time.ParseDuration (e.g. "30s", "1h").
	TypeDuration
)

// String returns the type name used in error messages.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeURL:
		return "url"
	case TypeEnum:
		return "enum"
	case TypeList:
		return "list"
	case TypeDuration:
		return "duration"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field describes one configuration field: how its raw value is coerced,
// whether it must be present after merging, and an optional default.
type Field struct {
	// Type selects the coercion applied to the raw value.
	Type FieldType

	// Required marks the field as mandatory. A required field absent after
	// defaults and all source layers fails resolution.
	Required bool

	// Default is the raw string applied at the lowest precedence rank before
	// any source layer. An empty Default means "no default": a field whose
	// meaningful default would be the empty string should simply be optional.
	Default string

	// Enum lists the accepted values for TypeEnum fields. Ignored for other
	// types.
	Enum []string
}

// Schema maps field names to their descriptors. A Schema is declared once at
// process start and treated as immutable thereafter.
type Schema map[string]Field

// Validate checks that the schema itself is well formed: every enum field
// declares at least one member, no other type declares members, and every
// default coerces to its field's type.
//
// Returns an error matching [ErrInvalidSchema] on the first malformed
// descriptor; schema bugs are programmer errors, not configuration errors,
// so they are not aggregated.
func (s Schema) Validate() error {
	for _, name := range s.sortedNames() {
		field := s[name]

		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidSchema)
		}
		if field.Type == TypeEnum && len(field.Enum) == 0 {
			return fmt.Errorf("%w: enum field %s declares no members", ErrInvalidSchema, name)
		}
		if field.Type != TypeEnum && len(field.Enum) > 0 {
			return fmt.Errorf("%w: field %s is not an enum but declares members", ErrInvalidSchema, name)
		}

		if field.Default != "" {
			if _, err := coerce(field, field.Default); err != nil {
				return fmt.Errorf("%w: field %s default %q: %v", ErrInvalidSchema, name, field.Default, err)
			}
		}
	}

	return nil
}

// sortedNames returns all field names in lexicographic order for stable
// iteration.
func (s Schema) sortedNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
