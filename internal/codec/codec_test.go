package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCoder_KeepsOnlySystemFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	record := models.RemoteRecord{
		ID:          models.RecordID{Name: "r1", Zone: models.NewZoneID("notes")},
		Type:        "Note",
		ChangeTag:   "tag-1",
		CreatedAt:   created,
		ModifiedAt:  created.Add(time.Minute),
		Fields:      map[models.FieldKey]json.RawMessage{"body": json.RawMessage(`"secret"`)},
		ChangedKeys: []models.FieldKey{"body"},
	}

	coder := NewRecordCoder()
	data, err := coder.Encode(record)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	got, err := coder.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, record.SystemFields(), got)
	assert.Nil(t, got.Fields)
	assert.Nil(t, got.ChangedKeys)
}

func TestRecordCoder_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not json")},
		{"wrong version", []byte(`{"v":99,"value":{"id":{"name":"r1"}}}`)},
		{"missing id", []byte(`{"v":1,"value":{"type":"Note"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecordCoder().Decode(tt.data)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestCheckpointCoder(t *testing.T) {
	coder := NewCheckpointCoder()

	data, err := coder.Encode(&models.ChangeCheckpoint{Token: []byte{0x00, 0xff, 0x10}})
	require.NoError(t, err)

	got, err := coder.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, got.Token)
}

func TestCheckpointCoder_NilMeansFromBeginning(t *testing.T) {
	coder := NewCheckpointCoder()

	data, err := coder.Encode(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	got, err := coder.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckpointCoder_DecodeMalformed(t *testing.T) {
	_, err := NewCheckpointCoder().Decode([]byte(`{"v":2,"value":"AA=="}`))
	assert.ErrorIs(t, err, ErrMalformed)
}
