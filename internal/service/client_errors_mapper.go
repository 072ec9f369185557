// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// SyncErrorKind is a member of the sync error taxonomy.
type SyncErrorKind int

const (
	KindGeneric SyncErrorKind = iota
	KindServerRecordChanged
	KindNoAccount
	KindTokenExpired
	KindUserDeletedZone
	KindQuotaExceeded
)

func (k SyncErrorKind) String() string {
	return k.sentinel().Error()
}

func (k SyncErrorKind) sentinel() error {
	switch k {
	case KindServerRecordChanged:
		return ErrServerRecordChanged
	case KindNoAccount:
		return ErrNoAccount
	case KindTokenExpired:
		return ErrTokenExpired
	case KindUserDeletedZone:
		return ErrUserDeletedZone
	case KindQuotaExceeded:
		return ErrQuotaExceeded
	default:
		return ErrGeneric
	}
}

// SyncError is a classified remote failure. It matches its kind's sentinel
// and unwraps to the raw cause.
type SyncError struct {
	Kind SyncErrorKind
	Err  error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// ServerRecord returns the server copy attached to a version conflict, if
// any.
func (e *SyncError) ServerRecord() *models.RemoteRecord {
	remoteErr, ok := adapter.AsError(e.Err)
	if !ok {
		return nil
	}
	if remoteErr.ServerRecord != nil {
		return remoteErr.ServerRecord
	}
	for _, item := range remoteErr.Partials() {
		if item.ServerRecord != nil {
			return item.ServerRecord
		}
	}
	return nil
}

// Classify maps a raw remote failure to the sync error taxonomy. The first
// matching rule wins:
//
//  1. any item error is CHANGE_TOKEN_EXPIRED
//  2. the error or any item error is NOT_AUTHENTICATED
//  3. any item error is USER_DELETED_ZONE
//  4. any item error is QUOTA_EXCEEDED
//  5. any item error is UNKNOWN_ITEM or SERVER_RECORD_CHANGED
//
// Everything else, including errors that did not come from the remote store,
// is generic. Classify returns nil for a nil error and passes *SyncError
// through unchanged.
func Classify(err error) *SyncError {
	if err == nil {
		return nil
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr
	}

	return &SyncError{Kind: classifyKind(err), Err: err}
}

func classifyKind(err error) SyncErrorKind {
	remoteErr, ok := adapter.AsError(err)
	if !ok {
		return KindGeneric
	}

	switch {
	case remoteErr.ContainsPartial(adapter.CodeChangeTokenExpired):
		return KindTokenExpired
	case remoteErr.Code == adapter.CodeNotAuthenticated,
		remoteErr.ContainsPartial(adapter.CodeNotAuthenticated):
		return KindNoAccount
	case remoteErr.ContainsPartial(adapter.CodeUserDeletedZone):
		return KindUserDeletedZone
	case remoteErr.ContainsPartial(adapter.CodeQuotaExceeded):
		return KindQuotaExceeded
	case remoteErr.ContainsPartial(adapter.CodeUnknownItem),
		remoteErr.ContainsPartial(adapter.CodeServerRecordChanged):
		return KindServerRecordChanged
	}

	return KindGeneric
}

// classified is Classify for call sites returning error.
func classified(err error) error {
	if syncErr := Classify(err); syncErr != nil {
		return syncErr
	}
	return nil
}
