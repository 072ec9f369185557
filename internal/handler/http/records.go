package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// decodeBody decodes the JSON request body into v and answers 400 on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		writeError(w, r, adapter.NewError(adapter.CodeBadRequest, "invalid JSON was passed"))
		return false
	}
	return true
}

func (h *Handler) accountStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.store.AccountStatus(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.accountStatus").Msg("error querying account status")
	}
	writeResult(w, r, models.AccountStatusResponse{Status: status}, err)
}

func (h *Handler) modifyZones(w http.ResponseWriter, r *http.Request) {
	var req adapter.ModifyZonesRequest
	if !decodeBody(w, r, &req, "*Handler.modifyZones") {
		return
	}

	result, err := h.store.ModifyZones(r.Context(), req.Save, req.Delete)
	writeResult(w, r, result, err)
}

func (h *Handler) zoneChanges(w http.ResponseWriter, r *http.Request) {
	var req models.ZoneChangesRequest
	if !decodeBody(w, r, &req, "*Handler.zoneChanges") {
		return
	}

	page, err := h.store.FetchZoneChanges(r.Context(), req)
	writeResult(w, r, page, err)
}

func (h *Handler) subscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.FetchAllSubscriptions(r.Context())
	writeResult(w, r, subs, err)
}

func (h *Handler) modifySubscriptions(w http.ResponseWriter, r *http.Request) {
	var req adapter.ModifySubscriptionsRequest
	if !decodeBody(w, r, &req, "*Handler.modifySubscriptions") {
		return
	}

	result, err := h.store.ModifySubscriptions(r.Context(), req.Save, req.Delete)
	writeResult(w, r, result, err)
}

func (h *Handler) modifyRecords(w http.ResponseWriter, r *http.Request) {
	var req models.ModifyRecordsRequest
	if !decodeBody(w, r, &req, "*Handler.modifyRecords") {
		return
	}

	result, err := h.store.ModifyRecords(r.Context(), req)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).
			Str("func", "*Handler.modifyRecords").
			Int("saved", len(result.Saved)).
			Int("deleted", len(result.Deleted)).
			Msg("records batch partially failed")
	}
	writeResult(w, r, result, err)
}
