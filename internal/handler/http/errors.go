// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipartForm is returned when an upload body is not a
	// readable multipart form.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrRequestTooLarge is returned when an upload body exceeds the
	// configured limits.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrTooManyLoginAttempts is returned by the login rate limiter.
	ErrTooManyLoginAttempts = errors.New("too many login attempts, try again later")
)
