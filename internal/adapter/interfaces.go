// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-job-keeper HTTP API.
//
// [ServerAdapter] hides the transport from its callers. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Failed requests are returned as [*APIError] values carrying the decoded
// [models.ErrorResponse]. They unwrap to the sentinels defined in errors.go,
// so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-job-keeper/models"
)

// ServerAdapter defines communication with the go-job-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error)

	// Login authenticates an existing account and stores the issued token.
	Login(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error)

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppInfo, error)

	// Dashboard returns one page of folder summaries, the unfiled bucket
	// first. Zero page or perPage lets the server pick its defaults.
	Dashboard(ctx context.Context, page, perPage int) (models.Page[models.FolderSummary], error)

	// Search runs the global search over folders and applications.
	Search(ctx context.Context, params models.SearchParams) (models.GlobalSearchResult, error)

	// Applications lists the applications matching params.
	Applications(ctx context.Context, params models.SearchParams) (models.Page[models.Application], error)

	// CreateApplication creates an application from the present fields of in.
	CreateApplication(ctx context.Context, in models.ApplicationInput) (models.Application, error)

	// UpdateApplication applies the present fields of in to application id.
	UpdateApplication(ctx context.Context, id int64, in models.ApplicationInput) (models.Application, error)

	// DeleteApplication removes application id.
	DeleteApplication(ctx context.Context, id int64) error

	// CreateFolder creates a folder from the present fields of in.
	CreateFolder(ctx context.Context, in models.FolderInput) (models.Folder, error)

	// DeleteFolder removes folder id. Its applications become unfiled.
	DeleteFolder(ctx context.Context, id int64) error

	// Catalog returns every tag, status and priority of the caller.
	Catalog(ctx context.Context) (models.Catalog, error)

	// CreateSelect creates a lookup entry of kind.
	CreateSelect(ctx context.Context, kind models.SelectKind, in models.SelectInput) (models.Select, error)
}
