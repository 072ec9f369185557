package models

import (
	"encoding/json"
	"time"
)

// RecordType is the type tag owned by every remote record.
type RecordType string

// FieldKey names a single field of a remote record.
type FieldKey string

// RecordID identifies a record within a zone.
type RecordID struct {
	Name string `json:"name"`
	Zone ZoneID `json:"zone"`
}

// Key returns a stable string form of the record ID used as a partial-error
// item key.
func (id RecordID) Key() string {
	return id.Zone.Key() + "/" + id.Name
}

// RemoteRecord is an opaque record blob. The synchronization core reads only
// the identity and system fields; Fields is passed through untouched.
type RemoteRecord struct {
	ID   RecordID   `json:"id"`
	Type RecordType `json:"type"`

	// ChangeTag is the server-assigned version of the record. It is empty for
	// records that were never saved.
	ChangeTag string `json:"change_tag,omitempty"`

	CreatedAt  time.Time `json:"created_at,omitempty"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`

	Fields map[FieldKey]json.RawMessage `json:"fields,omitempty"`

	// ChangedKeys lists the fields modified locally since the record was
	// fetched. Used by the ChangedKeys and IfServerRecordUnchanged policies.
	ChangedKeys []FieldKey `json:"changed_keys,omitempty"`
}

// SystemFields returns a copy of r with only the identity and system fields
// set.
func (r RemoteRecord) SystemFields() RemoteRecord {
	return RemoteRecord{
		ID:         r.ID,
		Type:       r.Type,
		ChangeTag:  r.ChangeTag,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}

// DeletedRecord is a tombstone delivered by the change feed.
type DeletedRecord struct {
	ID   RecordID   `json:"id"`
	Type RecordType `json:"type"`
}

// SavePolicy controls how saved records are merged with the server copy.
type SavePolicy string

const (
	// SavePolicyChangedKeys writes only ChangedKeys and never compares change
	// tags.
	SavePolicyChangedKeys SavePolicy = "changed_keys"
	// SavePolicyIfServerRecordUnchanged writes ChangedKeys only if the
	// submitted change tag matches the server's.
	SavePolicyIfServerRecordUnchanged SavePolicy = "if_server_record_unchanged"
	// SavePolicyAllKeys replaces the whole record.
	SavePolicyAllKeys SavePolicy = "all_keys"
)

// Valid reports whether p is a known save policy.
func (p SavePolicy) Valid() bool {
	switch p {
	case SavePolicyChangedKeys, SavePolicyIfServerRecordUnchanged, SavePolicyAllKeys:
		return true
	}
	return false
}
