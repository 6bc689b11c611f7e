// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Environment is a named deployment context. The set of recognized
// environments is closed: configuration resolution refuses to run for a name
// outside of it.
type Environment string

// Recognized deployment environments.
const (
	EnvLocal      Environment = "local"
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "production"
)

// Environments returns all recognized environments in declaration order.
func Environments() []Environment {
	return []Environment{EnvLocal, EnvStaging, EnvProduction}
}

// ParseEnvironment maps a raw environment name onto the closed [Environment]
// set.
//
// Returns an [UnknownEnvironmentError] (matching [ErrUnknownEnvironment]) if
// the name is not recognized. Matching is exact: names are not case-folded or
// trimmed, so "Production" and "qa" both fail.
func ParseEnvironment(name string) (Environment, error) {
	for _, environment := range Environments() {
		if name == string(environment) {
			return environment, nil
		}
	}

	return "", &UnknownEnvironmentError{Name: name}
}

// String returns the environment name.
func (e Environment) String() string {
	return string(e)
}
