package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name        string
		incoming    string
		wantEchoed  bool
		wantNewUUID bool
	}{
		{name: "incoming trace ID is reused", incoming: "my-custom-trace-id", wantEchoed: true},
		{name: "missing trace ID is generated", wantNewUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var captured *http.Request
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { captured = r })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantEchoed {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantNewUUID {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}

			require.NotNil(t, captured)
			assert.NotNil(t, logger.FromRequest(captured))
		})
	}
}
