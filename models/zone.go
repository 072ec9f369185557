// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the value types shared by the synchronization core,
// the remote store transport, and the local persistence layer.
//
// Record contents are opaque to everything in this module: a [RemoteRecord]
// carries its identity, type tag, and change tag, while its field values are
// kept as raw JSON and never interpreted.
package models

import "fmt"

// DefaultOwnerName is the owner placeholder used for zones that belong to the
// currently authenticated account.
const DefaultOwnerName = "__defaultOwner__"

// ZoneID identifies a logical partition of records in the remote store.
type ZoneID struct {
	// Name is the zone name chosen by the application.
	Name string `json:"name"`

	// OwnerName is the account that owns the zone. Empty is treated as
	// [DefaultOwnerName].
	OwnerName string `json:"owner_name,omitempty"`
}

// NewZoneID returns a ZoneID for name owned by the current account.
func NewZoneID(name string) ZoneID {
	return ZoneID{Name: name, OwnerName: DefaultOwnerName}
}

// Owner returns the effective owner name.
func (z ZoneID) Owner() string {
	if z.OwnerName == "" {
		return DefaultOwnerName
	}
	return z.OwnerName
}

// Key returns a stable string form of the zone ID, suitable for map keys and
// partial-error item keys.
func (z ZoneID) Key() string {
	return z.Owner() + "/" + z.Name
}

func (z ZoneID) String() string {
	return fmt.Sprintf("zone(%s)", z.Key())
}

// RemoteZone is a zone as submitted to or returned by the remote store.
// It is created once and immutable thereafter.
type RemoteZone struct {
	ID ZoneID `json:"id"`
}

// NewRemoteZone returns a RemoteZone with the given name owned by the current
// account.
func NewRemoteZone(name string) RemoteZone {
	return RemoteZone{ID: NewZoneID(name)}
}

// NotificationInfo configures how the remote store notifies the client about a
// subscription match.
type NotificationInfo struct {
	// ShouldSendContentAvailable asks for a silent wake-up instead of a
	// user-visible alert.
	ShouldSendContentAvailable bool `json:"should_send_content_available"`
}

// Subscription is a zone-level change subscription.
type Subscription struct {
	ID           string           `json:"id"`
	Zone         ZoneID           `json:"zone"`
	Notification NotificationInfo `json:"notification"`
}

// ZoneSubscriptionID returns the subscription ID used for zone-wide change
// subscriptions on zone.
func ZoneSubscriptionID(zone ZoneID) string {
	return "zone-" + zone.Name
}

// ModifyZonesResult lists the zones the remote store saved and deleted.
type ModifyZonesResult struct {
	Saved   []RemoteZone `json:"saved"`
	Deleted []ZoneID     `json:"deleted"`
}

// ModifySubscriptionsResult lists the subscriptions the remote store saved and
// deleted.
type ModifySubscriptionsResult struct {
	Saved   []Subscription `json:"saved"`
	Deleted []string       `json:"deleted"`
}
