package models

// ChangeCheckpoint is an opaque token meaning "all changes up to here have
// been observed". A nil *ChangeCheckpoint means "from the beginning".
type ChangeCheckpoint struct {
	Token []byte `json:"token"`
}

// PullResult is everything that changed in a zone since the previous
// checkpoint. Upserted and Deleted are set-like: no ordering is guaranteed
// between or within them.
type PullResult struct {
	Checkpoint *ChangeCheckpoint `json:"checkpoint,omitempty"`
	Upserted   []RemoteRecord    `json:"upserted"`
	Deleted    []DeletedRecord   `json:"deleted"`
}

// PushResult is exactly the subset of a submitted batch that the remote store
// committed.
type PushResult struct {
	Accepted   []RemoteRecord `json:"accepted"`
	DeletedIDs []RecordID     `json:"deleted_ids"`
}

// ZoneChangesRequest asks the remote store for a single page of changes in a
// zone.
type ZoneChangesRequest struct {
	Zone  ZoneID            `json:"zone"`
	Since *ChangeCheckpoint `json:"since,omitempty"`

	// DesiredKeys projects returned records to these fields. Nil returns
	// every field.
	DesiredKeys []FieldKey `json:"desired_keys,omitempty"`

	// ResultsLimit caps the number of changes per page. Zero lets the server
	// choose.
	ResultsLimit int `json:"results_limit,omitempty"`
}

// ZoneChangesPage is one page of a zone change feed.
type ZoneChangesPage struct {
	Upserted []RemoteRecord  `json:"upserted"`
	Deleted  []DeletedRecord `json:"deleted"`

	// Checkpoint marks the end of this page.
	Checkpoint *ChangeCheckpoint `json:"checkpoint,omitempty"`

	// MoreComing reports that another page is available from Checkpoint.
	MoreComing bool `json:"more_coming"`
}

// ModifyRecordsRequest submits saves and deletes as one remote operation.
type ModifyRecordsRequest struct {
	Save       []RemoteRecord `json:"save,omitempty"`
	Delete     []RecordID     `json:"delete,omitempty"`
	SavePolicy SavePolicy     `json:"save_policy"`
	Atomic     bool           `json:"atomic"`
}

// ModifyRecordsResult lists what the remote store committed.
type ModifyRecordsResult struct {
	Saved   []RemoteRecord `json:"saved"`
	Deleted []RecordID     `json:"deleted"`
}

// PushNotificationKind classifies a server push.
type PushNotificationKind string

const (
	PushAccountChanged PushNotificationKind = "account_changed"
	PushZoneChanged    PushNotificationKind = "zone_changed"
)

// PushNotification is delivered over the push channel.
type PushNotification struct {
	Kind           PushNotificationKind `json:"kind"`
	Zone           *ZoneID              `json:"zone,omitempty"`
	SubscriptionID string               `json:"subscription_id,omitempty"`
}
