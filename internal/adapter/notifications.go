package adapter

import (
	"sync"

	"github.com/MKhiriev/go-cloud-sync/models"
)

// NotificationCenter fans push notifications out to in-process observers.
// Observers are called synchronously on the posting goroutine and must not
// block.
type NotificationCenter struct {
	mu      sync.RWMutex
	nextID  uint64
	account map[uint64]func()
	zone    map[uint64]func(models.ZoneID)
}

// NewNotificationCenter returns an empty center.
func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{
		account: make(map[uint64]func()),
		zone:    make(map[uint64]func(models.ZoneID)),
	}
}

// ObserveAccountChanges registers fn for account-changed signals. The
// returned function unregisters it and may be called more than once.
func (c *NotificationCenter) ObserveAccountChanges(fn func()) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.account[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.account, id)
	}
}

// ObserveZoneChanges registers fn for zone-changed signals.
func (c *NotificationCenter) ObserveZoneChanges(fn func(models.ZoneID)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.zone[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.zone, id)
	}
}

// PostAccountChanged notifies account observers.
func (c *NotificationCenter) PostAccountChanged() {
	c.mu.RLock()
	observers := make([]func(), 0, len(c.account))
	for _, fn := range c.account {
		observers = append(observers, fn)
	}
	c.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// PostZoneChanged notifies zone observers.
func (c *NotificationCenter) PostZoneChanged(zone models.ZoneID) {
	c.mu.RLock()
	observers := make([]func(models.ZoneID), 0, len(c.zone))
	for _, fn := range c.zone {
		observers = append(observers, fn)
	}
	c.mu.RUnlock()

	for _, fn := range observers {
		fn(zone)
	}
}

// Post routes a push notification by kind. Unknown kinds and zone
// notifications without a zone are dropped.
func (c *NotificationCenter) Post(n models.PushNotification) {
	switch n.Kind {
	case models.PushAccountChanged:
		c.PostAccountChanged()
	case models.PushZoneChanged:
		if n.Zone != nil {
			c.PostZoneChanged(*n.Zone)
		}
	}
}
