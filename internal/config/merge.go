// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeSources flattens schema defaults and all source layers into one raw
// key/value mapping. Layers are applied in slice order with key-wise
// overwrite: the last writer of a key wins, and values are replaced
// wholesale (a list value from a later layer replaces, never concatenates).
func mergeSources(schema Schema, sources []Source) (map[string]string, error) {
	merged := make(map[string]string)

	// Rank 0: schema defaults.
	for name, field := range schema {
		if field.Default != "" {
			merged[name] = field.Default
		}
	}

	for _, source := range sources {
		// WithOverride overwrites key by key; keys the layer does not write
		// are untouched, and an empty raw value wins like any other write.
		if err := mergo.Merge(&merged, source.Values, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging source %q: %w", source.Name, err)
		}
	}

	return merged, nil
}
