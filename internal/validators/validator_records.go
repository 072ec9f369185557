package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-sync/models"
)

// Field names accepted by [RecordStoreValidator.Validate].
const (
	// FieldZone targets the zone of a record, record ID, subscription or
	// change request.
	FieldZone = "zone"

	// FieldRecordName targets the record name within its zone.
	FieldRecordName = "record_name"

	// FieldRecordType targets the type tag of a saved record.
	FieldRecordType = "record_type"

	// FieldSubscriptionID targets the subscription ID.
	FieldSubscriptionID = "subscription_id"

	// FieldSavePolicy targets the save policy of a modify request. Empty
	// means the default policy.
	FieldSavePolicy = "save_policy"

	// FieldSave and FieldDelete target every item of a modify request.
	FieldSave   = "save"
	FieldDelete = "delete"

	FieldResultsLimit = "results_limit"
	FieldDesiredKeys  = "desired_keys"
)

type RecordStoreValidator struct{}

func NewRecordStoreValidator() Validator {
	return &RecordStoreValidator{}
}

func (v *RecordStoreValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ZoneID:
		return v.validateZone(value)
	case models.RemoteZone:
		return v.validateZone(value.ID)
	case *models.RemoteZone:
		return v.validateZone(value.ID)

	case models.RecordID:
		return v.validateRecordID(value, fields...)
	case *models.RecordID:
		return v.validateRecordID(*value, fields...)

	case models.RemoteRecord:
		return v.validateRecord(value, fields...)
	case *models.RemoteRecord:
		return v.validateRecord(*value, fields...)

	case models.Subscription:
		return v.validateSubscription(value, fields...)
	case *models.Subscription:
		return v.validateSubscription(*value, fields...)

	case models.ZoneChangesRequest:
		return v.validateZoneChangesRequest(value, fields...)
	case *models.ZoneChangesRequest:
		return v.validateZoneChangesRequest(*value, fields...)

	case models.ModifyRecordsRequest:
		return v.validateModifyRecordsRequest(ctx, value, fields...)
	case *models.ModifyRecordsRequest:
		return v.validateModifyRecordsRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordStoreValidator) validateZone(zone models.ZoneID) error {
	if zone.Name == "" {
		return ErrEmptyZoneName
	}
	return nil
}

func (v *RecordStoreValidator) validateRecordID(id models.RecordID, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone, FieldRecordName}
	}

	for _, f := range fields {
		switch f {
		case FieldZone:
			if err := v.validateZone(id.Zone); err != nil {
				return err
			}
		case FieldRecordName:
			if id.Name == "" {
				return ErrEmptyRecordName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordStoreValidator) validateRecord(record models.RemoteRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone, FieldRecordName, FieldRecordType}
	}

	for _, f := range fields {
		switch f {
		case FieldZone, FieldRecordName:
			if err := v.validateRecordID(record.ID, f); err != nil {
				return err
			}
		case FieldRecordType:
			if record.Type == "" {
				return ErrEmptyRecordType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordStoreValidator) validateSubscription(sub models.Subscription, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubscriptionID, FieldZone}
	}

	for _, f := range fields {
		switch f {
		case FieldSubscriptionID:
			if sub.ID == "" {
				return ErrEmptySubscriptionID
			}
		case FieldZone:
			if err := v.validateZone(sub.Zone); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordStoreValidator) validateZoneChangesRequest(req models.ZoneChangesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone, FieldResultsLimit, FieldDesiredKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldZone:
			if err := v.validateZone(req.Zone); err != nil {
				return err
			}
		case FieldResultsLimit:
			if req.ResultsLimit < 0 {
				return ErrInvalidResultsLimit
			}
		case FieldDesiredKeys:
			for _, key := range req.DesiredKeys {
				if key == "" {
					return ErrEmptyDesiredKey
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordStoreValidator) validateModifyRecordsRequest(ctx context.Context, req models.ModifyRecordsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSavePolicy, FieldSave, FieldDelete}
	}

	for _, f := range fields {
		switch f {
		case FieldSavePolicy:
			if req.SavePolicy != "" && !req.SavePolicy.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidSavePolicy, req.SavePolicy)
			}
		case FieldSave:
			seen := make(map[string]struct{}, len(req.Save))
			for i, record := range req.Save {
				if err := v.Validate(ctx, record); err != nil {
					return fmt.Errorf("save[%d]: %w", i, err)
				}
				if _, dup := seen[record.ID.Key()]; dup {
					return fmt.Errorf("save[%d]: %w", i, ErrDuplicateRecordInSet)
				}
				seen[record.ID.Key()] = struct{}{}
			}
		case FieldDelete:
			for i, id := range req.Delete {
				if err := v.Validate(ctx, id); err != nil {
					return fmt.Errorf("delete[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
