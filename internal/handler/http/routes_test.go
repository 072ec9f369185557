// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Version(t *testing.T) {
	srv := newTestServer(t, remote.Options{})

	resp, err := http.Get(srv.URL + RouteVersion)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	srv := newTestServer(t, remote.Options{})

	for _, route := range []string{RouteVersion, adapter.RouteModifyRecords, adapter.RouteSubscriptions} {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+route, nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, route)
	}
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t, remote.Options{})

	routes := []struct{ method, path string }{
		{http.MethodGet, adapter.RouteAccountStatus},
		{http.MethodPost, adapter.RouteModifyZones},
		{http.MethodPost, adapter.RouteZoneChanges},
		{http.MethodGet, adapter.RouteSubscriptions},
		{http.MethodPost, adapter.RouteModifySubscriptions},
		{http.MethodPost, adapter.RouteModifyRecords},
		{http.MethodGet, adapter.RoutePush},
	}

	for _, route := range routes {
		t.Run(route.path, func(t *testing.T) {
			req, err := http.NewRequest(route.method, srv.URL+route.path, strings.NewReader("{}"))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestInit_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, remote.Options{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+adapter.RouteModifyRecords, strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "acc-1", testSignKey))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope adapter.Envelope[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, adapter.CodeBadRequest, envelope.Error.Code)
}
