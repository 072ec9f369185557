package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyZoneName        = errors.New("zone name is required")
	ErrEmptyRecordName      = errors.New("record name is required")
	ErrEmptyRecordType      = errors.New("record type is required")
	ErrEmptySubscriptionID  = errors.New("subscription id is required")
	ErrInvalidSavePolicy    = errors.New("unknown save policy")
	ErrInvalidResultsLimit  = errors.New("results limit cannot be negative")
	ErrEmptyDesiredKey      = errors.New("desired keys cannot contain an empty key")
	ErrDuplicateRecordInSet = errors.New("record appears more than once in the request")
)
