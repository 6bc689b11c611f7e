// Package config resolves the application's configuration from layered raw
// sources and validates it against a declared schema.
//
// Configuration is assembled from ordered [Source] layers, lowest precedence
// first (later sources override earlier values key by key):
//  1. Schema defaults
//  2. Shared defaults file (.env)
//  3. Environment-specific file (.env.<environment>)
//  4. Process environment variables
//
// The merged raw values are then checked against a [Schema]: every required
// field must be present and every present value must coerce to its declared
// [FieldType]. Validation never stops at the first problem — all missing
// fields and all coercion failures are collected into a single [ResolveError]
// so a failed startup reports everything at once.
//
// The main entry points are [Resolve] for callers that already hold their
// sources, and [Builder] for assembling sources from files and the process
// environment. The produced [Resolved] value is immutable; reconfiguration
// requires a new process.
package config
