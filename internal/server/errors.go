// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNothingToServe = errors.New("nothing to serve: no HTTP handler or address configured")
	errNotConfigured  = errors.New("server has no HTTP listener")
)
