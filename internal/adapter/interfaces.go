// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer collaborators of the
// synchronization core: the remote record store ([RecordDatabase]), the
// account session query ([AccountService]), and the change notification
// plumbing ([NotificationCenter], [PushListener]).
//
// The package ships an HTTP/REST implementation of both collaborators
// ([NewHTTPRemoteAdapter]). Remote failures are reported as [*Error] values
// carrying an [ErrorCode] and, for aggregate failures, per-item errors, so the
// service layer can classify them without knowing the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cloud-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_mock.go -package=mock

// RecordDatabase is the remote record store. Every method is a single-shot
// request; failures are returned as [*Error] (possibly wrapped).
type RecordDatabase interface {
	// ModifyZones creates zones in save and deletes zones in deleteIDs.
	// Creating an existing zone succeeds. Per-zone failures are keyed by
	// [models.ZoneID.Key].
	ModifyZones(ctx context.Context, save []models.RemoteZone, deleteIDs []models.ZoneID) (models.ModifyZonesResult, error)

	// ModifySubscriptions saves and deletes subscriptions. Saving a
	// subscription whose ID already exists fails that item with
	// [CodeServerRejectedRequest].
	ModifySubscriptions(ctx context.Context, save []models.Subscription, deleteIDs []string) (models.ModifySubscriptionsResult, error)

	// FetchAllSubscriptions returns every subscription of the account.
	FetchAllSubscriptions(ctx context.Context) ([]models.Subscription, error)

	// FetchZoneChanges returns one page of changes after req.Since.
	// Zone-level failures (expired checkpoint, deleted zone) are reported as
	// a partial failure keyed by the zone.
	FetchZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangesPage, error)

	// ModifyRecords saves and deletes records in one operation. For
	// non-atomic requests the result lists the committed subset even when
	// the returned error is non-nil.
	ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResult, error)
}

// AccountService answers point-in-time account session queries.
type AccountService interface {
	// AccountStatus returns the raw session state of the current account.
	AccountStatus(ctx context.Context) (models.AccountStatus, error)
}

// RemoteAdapter is the full HTTP client surface: both collaborators plus
// bearer token management.
type RemoteAdapter interface {
	RecordDatabase
	AccountService

	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token, or "" if none is set.
	Token() string

	// AccountID returns the account ID carried by the bearer token.
	AccountID() (string, error)
}
