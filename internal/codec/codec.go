// Package codec turns record system fields and change checkpoints into
// opaque byte blobs for local persistence, and back.
//
// Blobs carry a format version. Decoding a blob of an unknown version, or a
// malformed blob, returns [ErrMalformed]; callers treat that as "no value"
// and resynchronize.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-sync/models"
)

const formatVersion = 1

// ErrMalformed is returned for blobs that cannot be decoded.
var ErrMalformed = errors.New("malformed blob")

type envelope[T any] struct {
	Version int `json:"v"`
	Value   T   `json:"value"`
}

func encode[T any](value T) ([]byte, error) {
	data, err := json.Marshal(envelope[T]{Version: formatVersion, Value: value})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

func decode[T any](data []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return env.Value, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if env.Version != formatVersion {
		var zero T
		return zero, fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.Version)
	}
	return env.Value, nil
}

// RecordCoder encodes only the identity and system fields of a record:
// ID, type, change tag and timestamps. Field values are never persisted.
type RecordCoder struct{}

// NewRecordCoder returns a RecordCoder.
func NewRecordCoder() *RecordCoder { return &RecordCoder{} }

// Encode returns the system-field blob of record.
func (RecordCoder) Encode(record models.RemoteRecord) ([]byte, error) {
	return encode(record.SystemFields())
}

// Decode restores a record carrying only system fields.
func (RecordCoder) Decode(data []byte) (models.RemoteRecord, error) {
	record, err := decode[models.RemoteRecord](data)
	if err != nil {
		return models.RemoteRecord{}, err
	}
	if record.ID.Name == "" {
		return models.RemoteRecord{}, fmt.Errorf("%w: record without id", ErrMalformed)
	}
	return record.SystemFields(), nil
}

// CheckpointCoder encodes change checkpoints.
type CheckpointCoder struct{}

// NewCheckpointCoder returns a CheckpointCoder.
func NewCheckpointCoder() *CheckpointCoder { return &CheckpointCoder{} }

// Encode returns the blob of checkpoint. A nil checkpoint encodes to nil.
func (CheckpointCoder) Encode(checkpoint *models.ChangeCheckpoint) ([]byte, error) {
	if checkpoint == nil {
		return nil, nil
	}
	return encode(checkpoint.Token)
}

// Decode restores a checkpoint. An empty blob decodes to nil, meaning "from
// the beginning".
func (CheckpointCoder) Decode(data []byte) (*models.ChangeCheckpoint, error) {
	if len(data) == 0 {
		return nil, nil
	}
	token, err := decode[[]byte](data)
	if err != nil {
		return nil, err
	}
	return &models.ChangeCheckpoint{Token: token}, nil
}
