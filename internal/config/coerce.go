// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// coerce converts one merged raw string into the typed value declared by
// field. The returned value is one of: string, int, bool, *url.URL, []string,
// time.Duration.
func coerce(field Field, raw string) (any, error) {
	switch field.Type {
	case TypeString:
		return raw, nil

	case TypeInt:
		number, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("not a base-10 integer")
		}
		return number, nil

	case TypeBool:
		// The accepted token set is deliberately exact: "1", "yes" and
		// case variants fail instead of guessing intent.
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, errors.New(`accepted tokens are "true" and "false"`)
		}

	case TypeURL:
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, err
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, errors.New("url must be absolute with scheme and host")
		}
		return parsed, nil

	case TypeEnum:
		if !slices.Contains(field.Enum, raw) {
			return nil, fmt.Errorf("accepted values are %s", strings.Join(field.Enum, ", "))
		}
		return raw, nil

	case TypeList:
		return splitList(raw), nil

	case TypeDuration:
		duration, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New(`not a duration (e.g. "30s", "1h")`)
		}
		return duration, nil

	default:
		return nil, fmt.Errorf("unsupported field type %s", field.Type)
	}
}

// splitList splits a raw comma-separated value: entries are trimmed of
// surrounding whitespace, empty entries are dropped, order is preserved and
// duplicates are kept.
func splitList(raw string) []string {
	entries := make([]string, 0)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}
