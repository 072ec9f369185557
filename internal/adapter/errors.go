package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-cloud-sync/models"
)

// ErrorCode identifies a remote store failure condition. Codes are strings so
// that they read well in logs and travel unchanged through JSON.
type ErrorCode string

const (
	// CodeInternalError is an unclassified server-side failure.
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	// CodePartialFailure marks an aggregate of per-item failures. The item
	// errors are in [Error.PartialErrors].
	CodePartialFailure ErrorCode = "PARTIAL_FAILURE"
	// CodeBadRequest is a malformed request.
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	// CodeNotAuthenticated means there is no usable account session.
	CodeNotAuthenticated ErrorCode = "NOT_AUTHENTICATED"
	// CodePermissionFailure means the account may not access the item.
	CodePermissionFailure ErrorCode = "PERMISSION_FAILURE"
	// CodeChangeTokenExpired means the submitted checkpoint is no longer
	// accepted and a full resync is required.
	CodeChangeTokenExpired ErrorCode = "CHANGE_TOKEN_EXPIRED"
	// CodeUserDeletedZone means the user deleted the zone.
	CodeUserDeletedZone ErrorCode = "USER_DELETED_ZONE"
	// CodeZoneNotFound means the zone was never created.
	CodeZoneNotFound ErrorCode = "ZONE_NOT_FOUND"
	// CodeQuotaExceeded means the account is out of storage.
	CodeQuotaExceeded ErrorCode = "QUOTA_EXCEEDED"
	// CodeUnknownItem means the record or subscription does not exist.
	CodeUnknownItem ErrorCode = "UNKNOWN_ITEM"
	// CodeServerRecordChanged is a version conflict. [Error.ServerRecord]
	// holds the current server copy when available.
	CodeServerRecordChanged ErrorCode = "SERVER_RECORD_CHANGED"
	// CodeServerRejectedRequest is returned for duplicate subscriptions.
	CodeServerRejectedRequest ErrorCode = "SERVER_REJECTED_REQUEST"
	// CodeBatchRequestFailed marks items of an atomic batch that were valid
	// but not committed because a sibling failed.
	CodeBatchRequestFailed ErrorCode = "BATCH_REQUEST_FAILED"
	// CodeServiceUnavailable is a transient server outage.
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// CodeRequestRateLimited means the client is sending too many requests.
	CodeRequestRateLimited ErrorCode = "REQUEST_RATE_LIMITED"
)

// Error is a remote store failure. A top-level error with
// [CodePartialFailure] aggregates per-item failures keyed by item (see
// [models.RecordID.Key], [models.ZoneID.Key], subscription IDs).
type Error struct {
	Code          ErrorCode            `json:"code"`
	Message       string               `json:"message,omitempty"`
	PartialErrors map[string]*Error    `json:"partial_errors,omitempty"`
	ServerRecord  *models.RemoteRecord `json:"server_record,omitempty"`
}

// NewError returns an *Error with the given code and formatted message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewPartialFailure returns an aggregate error over items. It returns nil if
// items is empty.
func NewPartialFailure(items map[string]*Error) *Error {
	if len(items) == 0 {
		return nil
	}
	return &Error{
		Code:          CodePartialFailure,
		Message:       fmt.Sprintf("%d item(s) failed", len(items)),
		PartialErrors: items,
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(e.Code)))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.PartialErrors) > 0 {
		keys := make([]string, 0, len(e.PartialErrors))
		for k := range e.PartialErrors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(string(e.PartialErrors[k].Code))
		}
		b.WriteString("]")
	}
	return b.String()
}

// Partials returns the per-item errors in no particular order.
func (e *Error) Partials() []*Error {
	out := make([]*Error, 0, len(e.PartialErrors))
	for _, item := range e.PartialErrors {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

// ContainsPartial reports whether any per-item error has code.
func (e *Error) ContainsPartial(code ErrorCode) bool {
	for _, item := range e.PartialErrors {
		if item != nil && item.Code == code {
			return true
		}
	}
	return false
}

// AsError unwraps err to an *Error.
func AsError(err error) (*Error, bool) {
	var remoteErr *Error
	if errors.As(err, &remoteErr) && remoteErr != nil {
		return remoteErr, true
	}
	return nil, false
}

// HasPartialCode reports whether err is an *Error carrying a per-item error
// with code.
func HasPartialCode(err error, code ErrorCode) bool {
	remoteErr, ok := AsError(err)
	return ok && remoteErr.ContainsPartial(code)
}

// ErrInvalidAddress is returned by constructors when the configured remote
// address cannot be used.
var ErrInvalidAddress = errors.New("invalid remote address")
