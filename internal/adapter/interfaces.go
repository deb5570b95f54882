// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

// Package adapter provides transport-layer abstractions for communicating
// with the fieldsync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Any error returned by a
// push or pull call is a transport-level failure: per-entity rejections
// travel inside the response payload, never as errors.
package adapter

import (
	"context"

	"github.com/soilstack/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the fieldsync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// PushSoilData transmits a batch of soil data diffs. The call is
	// all-or-nothing at the transport level: a returned error means no entry
	// was processed and the attempt is safe to retry. A nil error means the
	// response carries exactly one result entry per request entry.
	PushSoilData(ctx context.Context, req models.SoilDataPushRequest) (models.SoilDataPushResponse, error)

	// PushSoilMetadata transmits a batch of per-site soil match ratings,
	// with the same transport semantics as PushSoilData.
	PushSoilMetadata(ctx context.Context, req models.SoilMetadataPushRequest) (models.SoilMetadataPushResponse, error)

	// PullUserData fetches the full authoritative snapshot of everything the
	// authenticated user can access.
	PullUserData(ctx context.Context) (models.PullResponse, error)
}
