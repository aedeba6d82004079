// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Principal is the authenticated actor issuing a request.
//
// It is produced by the auth middleware from a verified token and trusted by
// the service layer without re-checking credentials.
type Principal struct {
	// ID identifies the user the request is made on behalf of.
	ID uuid.UUID

	// Superuser is the elevated capability: access across ownership boundaries.
	Superuser bool
}

// CanAccess reports whether the principal may touch a resource owned by owner.
func (p Principal) CanAccess(owner uuid.UUID) bool {
	return p.Superuser || p.ID == owner
}
