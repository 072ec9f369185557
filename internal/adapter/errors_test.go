package adapter

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := NewPartialFailure(map[string]*Error{
		"b": NewError(CodeQuotaExceeded, ""),
		"a": NewError(CodeUnknownItem, "gone"),
	})

	assert.Equal(t, "partial_failure: 2 item(s) failed [a=UNKNOWN_ITEM, b=QUOTA_EXCEEDED]", err.Error())
	assert.Equal(t, "not_authenticated: no session", NewError(CodeNotAuthenticated, "no session").Error())
}

func TestNewPartialFailure_Empty(t *testing.T) {
	assert.Nil(t, NewPartialFailure(nil))
}

func TestHasPartialCode_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("modify records: %w", NewPartialFailure(map[string]*Error{
		"x": NewError(CodeServerRecordChanged, ""),
	}))

	assert.True(t, HasPartialCode(err, CodeServerRecordChanged))
	assert.False(t, HasPartialCode(err, CodeQuotaExceeded))
	assert.False(t, HasPartialCode(fmt.Errorf("plain"), CodeQuotaExceeded))
}

func TestError_Partials(t *testing.T) {
	err := NewPartialFailure(map[string]*Error{
		"a": NewError(CodeUnknownItem, ""),
		"b": nil,
	})

	assert.Len(t, err.Partials(), 1)
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, StatusForCode(CodeNotAuthenticated))
	assert.Equal(t, http.StatusBadRequest, StatusForCode(CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode(CodeInternalError))
	assert.Equal(t, http.StatusOK, StatusForCode(CodePartialFailure))
	assert.Equal(t, http.StatusOK, StatusForCode(CodeServerRecordChanged))
}
