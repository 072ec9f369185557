package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into an *Error. A structured error
// decoded from the response envelope wins; otherwise the status code is
// mapped to the closest [ErrorCode].
func mapHTTPError(resp *resty.Response, remoteErr *Error) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	if remoteErr != nil && remoteErr.Code != "" {
		return remoteErr
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &Error{Code: CodeBadRequest, Message: body}
	case http.StatusUnauthorized:
		return &Error{Code: CodeNotAuthenticated, Message: body}
	case http.StatusForbidden:
		return &Error{Code: CodePermissionFailure, Message: body}
	case http.StatusNotFound:
		return &Error{Code: CodeUnknownItem, Message: body}
	case http.StatusConflict:
		return &Error{Code: CodeServerRecordChanged, Message: body}
	case http.StatusTooManyRequests:
		return &Error{Code: CodeRequestRateLimited, Message: body}
	case http.StatusServiceUnavailable:
		return &Error{Code: CodeServiceUnavailable, Message: body}
	case http.StatusInsufficientStorage:
		return &Error{Code: CodeQuotaExceeded, Message: body}
	default:
		return NewError(CodeInternalError, "http %d: %s", resp.StatusCode(), body)
	}
}

// StatusForCode is the inverse of mapHTTPError, used by servers that speak
// the same wire format.
func StatusForCode(code ErrorCode) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotAuthenticated:
		return http.StatusUnauthorized
	case CodePermissionFailure:
		return http.StatusForbidden
	case CodeRequestRateLimited:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeInternalError:
		return http.StatusInternalServerError
	default:
		// item-level and aggregate failures travel in a 200 envelope next to
		// the partial result
		return http.StatusOK
	}
}
