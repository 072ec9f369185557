package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cloud-sync/internal/config"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises the base URL from cfg.HTTPAddress, applies
// cfg.RequestTimeout to every request, and installs cfg.Token as the initial
// bearer token.
//
// Returns [ErrInvalidAddress] (wrapped) if cfg.HTTPAddress is empty or cannot
// be parsed.
func NewHTTPRemoteAdapter(cfg config.ClientAdapter, log *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	a := &httpRemoteAdapter{client: client, logger: log}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// AccountID implements [RemoteAdapter]. The token is decoded without
// signature verification; the server remains the authority.
func (h *httpRemoteAdapter) AccountID() (string, error) {
	token := h.Token()
	if token == "" {
		return "", &Error{Code: CodeNotAuthenticated, Message: "no bearer token"}
	}
	return utils.ParseAccountIDFromJWT(token)
}

// ModifyZones implements [RecordDatabase] via POST /api/zones/modify.
func (h *httpRemoteAdapter) ModifyZones(ctx context.Context, save []models.RemoteZone, deleteIDs []models.ZoneID) (models.ModifyZonesResult, error) {
	return doJSON[models.ModifyZonesResult](ctx, h, http.MethodPost, RouteModifyZones,
		ModifyZonesRequest{Save: save, Delete: deleteIDs})
}

// ModifySubscriptions implements [RecordDatabase] via
// POST /api/subscriptions/modify.
func (h *httpRemoteAdapter) ModifySubscriptions(ctx context.Context, save []models.Subscription, deleteIDs []string) (models.ModifySubscriptionsResult, error) {
	return doJSON[models.ModifySubscriptionsResult](ctx, h, http.MethodPost, RouteModifySubscriptions,
		ModifySubscriptionsRequest{Save: save, Delete: deleteIDs})
}

// FetchAllSubscriptions implements [RecordDatabase] via GET /api/subscriptions.
func (h *httpRemoteAdapter) FetchAllSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return doJSON[[]models.Subscription](ctx, h, http.MethodGet, RouteSubscriptions, nil)
}

// FetchZoneChanges implements [RecordDatabase] via POST /api/zones/changes.
func (h *httpRemoteAdapter) FetchZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangesPage, error) {
	return doJSON[models.ZoneChangesPage](ctx, h, http.MethodPost, RouteZoneChanges, req)
}

// ModifyRecords implements [RecordDatabase] via POST /api/records/modify.
// The decoded result is returned alongside a partial failure.
func (h *httpRemoteAdapter) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResult, error) {
	return doJSON[models.ModifyRecordsResult](ctx, h, http.MethodPost, RouteModifyRecords, req)
}

// AccountStatus implements [AccountService] via GET /api/account/status.
// A missing or rejected bearer token is reported as
// [models.AccountStatusNoAccount] rather than as an error.
func (h *httpRemoteAdapter) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	if h.Token() == "" {
		return models.AccountStatusNoAccount, nil
	}

	resp, err := doJSON[models.AccountStatusResponse](ctx, h, http.MethodGet, RouteAccountStatus, nil)
	if err != nil {
		if remoteErr, ok := AsError(err); ok && remoteErr.Code == CodeNotAuthenticated {
			return models.AccountStatusNoAccount, nil
		}
		return models.AccountStatusCouldNotDetermine, err
	}

	return resp.Status, nil
}

func doJSON[T any](ctx context.Context, h *httpRemoteAdapter, method, path string, body any) (T, error) {
	var envelope Envelope[T]

	req := h.authedRequest(ctx).
		SetResult(&envelope).
		SetError(&envelope)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpRemoteAdapter.doJSON").
			Str("method", method).
			Str("path", path).
			Msg("remote request failed")
		var zero T
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = mapHTTPError(resp, envelope.Error); err != nil {
		return envelope.Result, err
	}
	if envelope.Error != nil {
		return envelope.Result, envelope.Error
	}

	return envelope.Result, nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
