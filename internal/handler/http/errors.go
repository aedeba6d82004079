// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request before it reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoPrincipal is returned when a protected handler runs without the
	// auth middleware having stored a principal in the request context.
	ErrNoPrincipal = errors.New("no authenticated principal")

	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidID         = errors.New("invalid resource id")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrUnknownKind       = errors.New("unknown lookup kind")
	ErrTooManyRequests   = errors.New("too many requests")
)
