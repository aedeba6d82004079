// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is a single job application tracked by its owner.
type Application struct {
	// ID is the unique identifier of the application.
	ID int64 `json:"id"`

	// UserID is the owner of the application.
	UserID uuid.UUID `json:"user_id"`

	// Title is the advertised job title.
	Title string `json:"title"`

	// Company is the hiring company.
	Company string `json:"company"`

	// ClosingDate is the application deadline, if known.
	ClosingDate *time.Time `json:"closing_date"`

	Link        *string `json:"link"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	Role        *string `json:"role"`
	Salary      *string `json:"salary"`

	// Position is a caller-assigned ordering hint inside a folder.
	Position int `json:"position"`

	// Starred marks applications the owner flagged as important.
	Starred bool `json:"starred"`

	// Timeline is the ordered history of the application.
	Timeline Timeline `json:"timeline"`

	// StatusID, PriorityID and FolderID are optional references to entities
	// of the same owner. A nil FolderID means the application is unfiled.
	StatusID   *int64 `json:"status_id"`
	PriorityID *int64 `json:"priority_id"`
	FolderID   *int64 `json:"folder_id"`

	// Status, Priority and Tags are the resolved related entities.
	Status   *Select  `json:"status"`
	Priority *Select  `json:"priority"`
	Tags     []Select `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagIDs returns the identifiers of the resolved tags.
func (a Application) TagIDs() []int64 {
	ids := make([]int64, 0, len(a.Tags))
	for _, t := range a.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// ApplicationInput is the create/update payload for an application.
//
// Non-nullable columns use plain pointers (nil = absent). Nullable columns use
// [Optional] so that an explicit null clears the column while an absent key
// leaves it untouched. TagIDs replaces the whole tag set when non-nil.
type ApplicationInput struct {
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	Position *int    `json:"position,omitempty"`
	Starred  *bool   `json:"starred,omitempty"`

	ClosingDate Optional[time.Time] `json:"closing_date,omitzero"`
	Link        Optional[string]    `json:"link,omitzero"`
	Description Optional[string]    `json:"description,omitzero"`
	Notes       Optional[string]    `json:"notes,omitzero"`
	Role        Optional[string]    `json:"role,omitzero"`
	Salary      Optional[string]    `json:"salary,omitzero"`
	Timeline    Optional[Timeline]  `json:"timeline,omitzero"`

	StatusID   Optional[int64] `json:"status_id,omitzero"`
	PriorityID Optional[int64] `json:"priority_id,omitzero"`
	FolderID   Optional[int64] `json:"folder_id,omitzero"`

	TagIDs *[]int64 `json:"tag_ids,omitempty"`
}

// Apply copies every present field of in onto a. Tags are not touched:
// they are resolved by the store.
func (in ApplicationInput) Apply(a *Application) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Company != nil {
		a.Company = *in.Company
	}
	if in.Position != nil {
		a.Position = *in.Position
	}
	if in.Starred != nil {
		a.Starred = *in.Starred
	}
	if in.ClosingDate.Set {
		a.ClosingDate = in.ClosingDate.Ptr()
	}
	if in.Link.Set {
		a.Link = in.Link.Ptr()
	}
	if in.Description.Set {
		a.Description = in.Description.Ptr()
	}
	if in.Notes.Set {
		a.Notes = in.Notes.Ptr()
	}
	if in.Role.Set {
		a.Role = in.Role.Ptr()
	}
	if in.Salary.Set {
		a.Salary = in.Salary.Ptr()
	}
	if in.Timeline.Set {
		if tl, ok := in.Timeline.Get(); ok {
			a.Timeline = tl
		} else {
			a.Timeline = nil
		}
	}
	if in.StatusID.Set {
		a.StatusID = in.StatusID.Ptr()
	}
	if in.PriorityID.Set {
		a.PriorityID = in.PriorityID.Ptr()
	}
	if in.FolderID.Set {
		a.FolderID = in.FolderID.Ptr()
	}
}

// References collects the lookup and folder identifiers the payload assigns,
// keyed by the kind of entity they must resolve to.
func (in ApplicationInput) References() map[ResourceKind][]int64 {
	refs := make(map[ResourceKind][]int64, 4)
	if id, ok := in.StatusID.Get(); ok {
		refs[KindStatus] = []int64{id}
	}
	if id, ok := in.PriorityID.Get(); ok {
		refs[KindPriority] = []int64{id}
	}
	if id, ok := in.FolderID.Get(); ok {
		refs[KindFolder] = []int64{id}
	}
	if in.TagIDs != nil && len(*in.TagIDs) > 0 {
		refs[KindTag] = *in.TagIDs
	}
	return refs
}
