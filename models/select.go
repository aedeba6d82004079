// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SelectKind is the closed set of user-defined lookup entities an
// Application can reference: tags, statuses and priorities.
//
// Each kind has its own table with an identical shape; code that works on
// lookups is parameterized by SelectKind instead of by runtime type.
type SelectKind uint8

const (
	SelectTag SelectKind = iota + 1
	SelectStatus
	SelectPriority
)

// SelectKinds lists every lookup kind in catalog order.
var SelectKinds = []SelectKind{SelectTag, SelectStatus, SelectPriority}

// ParseSelectKind resolves the plural route segment ("tags", "statuses",
// "priorities") or the singular resource name into a SelectKind.
func ParseSelectKind(s string) (SelectKind, bool) {
	switch s {
	case "tags", "tag":
		return SelectTag, true
	case "statuses", "status":
		return SelectStatus, true
	case "priorities", "priority":
		return SelectPriority, true
	default:
		return 0, false
	}
}

// Table returns the table holding entries of this kind.
func (k SelectKind) Table() string {
	switch k {
	case SelectTag:
		return "tags"
	case SelectStatus:
		return "statuses"
	case SelectPriority:
		return "priorities"
	default:
		return ""
	}
}

// Resource returns the resource kind reported in errors.
func (k SelectKind) Resource() ResourceKind {
	switch k {
	case SelectTag:
		return KindTag
	case SelectStatus:
		return KindStatus
	case SelectPriority:
		return KindPriority
	default:
		return ""
	}
}

// String returns the plural route name of the kind.
func (k SelectKind) String() string {
	return k.Table()
}

// Valid reports whether k is one of the declared kinds.
func (k SelectKind) Valid() bool {
	return k >= SelectTag && k <= SelectPriority
}

// Select is one lookup entry: a tag, a status or a priority.
type Select struct {
	// ID is the identifier of the entry within its kind's table.
	ID int64 `json:"id"`

	// Kind tells which table the entry belongs to.
	Kind SelectKind `json:"-"`

	// UserID is the owner of the entry.
	UserID uuid.UUID `json:"user_id"`

	// Title is the display title, unique per owner within a kind.
	Title string `json:"title"`

	// Color is an optional display color (e.g. "#ff8800").
	Color *string `json:"color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SelectInput is the create/update payload for a lookup entry.
// Absent keys are left untouched on update.
type SelectInput struct {
	Title *string          `json:"title,omitempty"`
	Color Optional[string] `json:"color,omitzero"`
}

// Catalog groups every lookup entry of the principal by kind.
type Catalog struct {
	Tags       []Select `json:"tags"`
	Statuses   []Select `json:"statuses"`
	Priorities []Select `json:"priorities"`
}

// Set stores items under the slot of kind.
func (c *Catalog) Set(kind SelectKind, items []Select) {
	switch kind {
	case SelectTag:
		c.Tags = items
	case SelectStatus:
		c.Statuses = items
	case SelectPriority:
		c.Priorities = items
	}
}
