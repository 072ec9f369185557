package models

// AccountAvailability is the tri-state availability of the remote account.
// The zero value is AccountUnknown.
type AccountAvailability int

const (
	AccountUnknown AccountAvailability = iota
	AccountAvailable
	AccountUnavailable
)

func (a AccountAvailability) String() string {
	switch a {
	case AccountAvailable:
		return "available"
	case AccountUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// AccountStatus is the raw session state reported by the account
// collaborator.
type AccountStatus string

const (
	AccountStatusCouldNotDetermine AccountStatus = "could_not_determine"
	AccountStatusAvailable         AccountStatus = "available"
	AccountStatusRestricted        AccountStatus = "restricted"
	AccountStatusNoAccount         AccountStatus = "no_account"
)

// AccountStatusResponse is the wire form of an account status query.
type AccountStatusResponse struct {
	Status    AccountStatus `json:"status"`
	AccountID string        `json:"account_id,omitempty"`
}
