package http

import (
	"net/http"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
)

// writeResult writes result in an envelope. A store error travels next to
// the result; its code selects the status (see [adapter.StatusForCode]).
func writeResult[T any](w http.ResponseWriter, r *http.Request, result T, err error) {
	envelope := adapter.Envelope[T]{Result: result}
	status := http.StatusOK

	if err != nil {
		envelope.Error = storeError(err)
		status = adapter.StatusForCode(envelope.Error.Code)
	}

	if _, writeErr := utils.WriteJSON(w, envelope, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "writeResult").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeResult[any](w, r, nil, err)
}

// storeError keeps structured store errors and hides anything else behind
// INTERNAL_ERROR.
func storeError(err error) *adapter.Error {
	if remoteErr, ok := adapter.AsError(err); ok {
		return remoteErr
	}
	return adapter.NewError(adapter.CodeInternalError, "internal error")
}
