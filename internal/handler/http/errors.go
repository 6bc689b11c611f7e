// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header parsing errors returned to clients with HTTP 401.
var (
	// ErrEmptyAuthorizationHeader indicates a protected route was called
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")
	// ErrInvalidAuthorizationHeader indicates the header value does not
	// follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
	// ErrEmptyToken indicates a "Bearer" prefix with no token after it.
	ErrEmptyToken = errors.New("empty bearer token")
)
