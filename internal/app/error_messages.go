// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-job-keeper HTTP handlers and middleware.
//
// Msg* constants are the fixed messages written into error response bodies
// where the underlying error must not reach the caller.
package app

const (
	// MsgInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password is wrong.
	MsgInvalidCredentials = "invalid email or password"

	// MsgRouteNotFound is returned for paths and methods no route serves.
	MsgRouteNotFound = "route not found"
)
