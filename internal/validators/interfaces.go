// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks create and update payloads of applications,
// folders and lookup entries before they reach the store.
//
// A failed check returns one of the sentinels in errors.go, which the
// service layer wraps as ValidationFailed. Ownership and reference existence are
// not checked here, they need the store.
package validators

import "context"

// Validator checks one payload. fields names the keys that must be present,
// so a create and a partial update share the same rules.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
