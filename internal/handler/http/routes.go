package http

import (
	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouteVersion serves the server version as plain text.
const RouteVersion = "/api/version"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(RouteVersion, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// the push channel hijacks the connection, so it stays out of gzip
		r.Get(adapter.RoutePush, h.push)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Get(adapter.RouteAccountStatus, h.accountStatus)
			r.Post(adapter.RouteModifyZones, h.modifyZones)
			r.Post(adapter.RouteZoneChanges, h.zoneChanges)
			r.Get(adapter.RouteSubscriptions, h.subscriptions)
			r.Post(adapter.RouteModifySubscriptions, h.modifySubscriptions)
			r.Post(adapter.RouteModifyRecords, h.modifyRecords)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
