package service

import "errors"

// Sentinels for the sync error taxonomy. A [*SyncError] matches exactly one of
// them with errors.Is.
var (
	ErrGeneric             = errors.New("sync failed")
	ErrServerRecordChanged = errors.New("server record changed")
	ErrNoAccount           = errors.New("no account")
	ErrTokenExpired        = errors.New("change token expired")
	ErrUserDeletedZone     = errors.New("zone deleted by user")
	ErrQuotaExceeded       = errors.New("quota exceeded")
)

var (
	// ErrAccountUnavailable is returned by Sync while the account is not
	// known to be available.
	ErrAccountUnavailable = errors.New("account is not available")
	// ErrMissingCheckpoint is reported when the remote store announces more
	// pages without a checkpoint to continue from.
	ErrMissingCheckpoint = errors.New("more changes reported without a checkpoint")
)
