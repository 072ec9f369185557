package adapter

import "github.com/MKhiriev/go-cloud-sync/models"

// API routes of the remote record store.
const (
	RouteModifyZones         = "/api/zones/modify"
	RouteZoneChanges         = "/api/zones/changes"
	RouteModifySubscriptions = "/api/subscriptions/modify"
	RouteSubscriptions       = "/api/subscriptions"
	RouteModifyRecords       = "/api/records/modify"
	RouteAccountStatus       = "/api/account/status"
	RoutePush                = "/api/push"
)

// Envelope is the body of every remote store response. Error may be set next
// to a partial Result.
type Envelope[T any] struct {
	Result T      `json:"result"`
	Error  *Error `json:"error,omitempty"`
}

// ModifyZonesRequest is the body of [RouteModifyZones].
type ModifyZonesRequest struct {
	Save   []models.RemoteZone `json:"save,omitempty"`
	Delete []models.ZoneID     `json:"delete,omitempty"`
}

// ModifySubscriptionsRequest is the body of [RouteModifySubscriptions].
type ModifySubscriptionsRequest struct {
	Save   []models.Subscription `json:"save,omitempty"`
	Delete []string              `json:"delete,omitempty"`
}
