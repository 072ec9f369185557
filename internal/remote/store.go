// Package remote is an in-memory remote record store. It backs the reference
// server in cmd/server and doubles as a realistic collaborator in tests.
//
// State is partitioned per account; the account is taken from the request
// context (see [utils.WithAccountID]). Calls without an account fail with
// [adapter.CodeNotAuthenticated].
package remote

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/adapter"
	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/internal/validators"
	"github.com/MKhiriev/go-cloud-sync/models"
)

// DefaultPageSize is used when a change request does not set a limit.
const DefaultPageSize = 100

// Options tunes a MemoryStore.
type Options struct {
	// HashKey signs change tokens.
	HashKey string
	// QuotaRecords caps the number of records per account. Zero is unlimited.
	QuotaRecords int
	// ChangeLogLimit caps the tombstones kept per zone. Tokens older than the
	// newest purged tombstone expire. Zero keeps everything.
	ChangeLogLimit int
	// PageSize is the default page size of change requests.
	PageSize int
}

// NotifyFunc receives push notifications for accountID.
type NotifyFunc func(accountID string, n models.PushNotification)

type accountState struct {
	status        models.AccountStatus
	zones         map[string]*zoneState
	userDeleted   map[string]bool
	subscriptions map[string]models.Subscription
	recordCount   int
}

func newAccountState() *accountState {
	return &accountState{
		status:        models.AccountStatusAvailable,
		zones:         make(map[string]*zoneState),
		userDeleted:   make(map[string]bool),
		subscriptions: make(map[string]models.Subscription),
	}
}

// MemoryStore implements [adapter.RecordDatabase] and [adapter.AccountService].
type MemoryStore struct {
	mu        sync.Mutex
	opts      Options
	accounts  map[string]*accountState
	notify    []NotifyFunc
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewMemoryStore(opts Options, log *logger.Logger) *MemoryStore {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &MemoryStore{
		opts:      opts,
		accounts:  make(map[string]*accountState),
		validator: validators.NewRecordStoreValidator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    log,
	}
}

// OnNotify registers fn for push notifications. It must be called before the
// store is shared.
func (m *MemoryStore) OnNotify(fn NotifyFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify = append(m.notify, fn)
}

// AccountStatus reports the session state of the account in ctx.
func (m *MemoryStore) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return models.AccountStatusNoAccount, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account(accountID).status, nil
}

// SetAccountStatus changes the session state of accountID and pushes an
// account-changed notification.
func (m *MemoryStore) SetAccountStatus(accountID string, status models.AccountStatus) {
	m.mu.Lock()
	m.account(accountID).status = status
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "MemoryStore.SetAccountStatus").
		Str("account_id", accountID).
		Str("status", string(status)).
		Msg("account status changed")
	m.emit(accountID, models.PushNotification{Kind: models.PushAccountChanged})
}

// account returns the state of accountID, creating it on first use.
// m.mu must be held.
func (m *MemoryStore) account(accountID string) *accountState {
	acc, ok := m.accounts[accountID]
	if !ok {
		acc = newAccountState()
		m.accounts[accountID] = acc
	}
	return acc
}

// lockAccount locks the store and returns the state of the account in ctx.
// The caller must unlock m.mu when err is nil.
func (m *MemoryStore) lockAccount(ctx context.Context) (string, *accountState, error) {
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return "", nil, adapter.NewError(adapter.CodeNotAuthenticated, "no account in request")
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	m.mu.Lock()
	acc := m.account(accountID)
	switch acc.status {
	case models.AccountStatusNoAccount, models.AccountStatusRestricted:
		m.mu.Unlock()
		return "", nil, adapter.NewError(adapter.CodeNotAuthenticated, "account %s is %s", accountID, acc.status)
	}
	return accountID, acc, nil
}

// emit delivers n to the registered hooks. m.mu must not be held.
func (m *MemoryStore) emit(accountID string, n models.PushNotification) {
	m.mu.Lock()
	hooks := append([]NotifyFunc(nil), m.notify...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(accountID, n)
	}
}

// zoneChanged builds zone-changed notifications for the subscribed zones in
// keys. m.mu must be held.
func zoneChanged(acc *accountState, zones map[string]models.ZoneID) []models.PushNotification {
	var out []models.PushNotification
	for _, sub := range acc.subscriptions {
		if zone, ok := zones[sub.Zone.Key()]; ok {
			out = append(out, models.PushNotification{
				Kind:           models.PushZoneChanged,
				Zone:           &zone,
				SubscriptionID: sub.ID,
			})
		}
	}
	return out
}

// Session binds a MemoryStore to one account so it can be used where the
// caller does not put the account in the context.
type Session struct {
	store     *MemoryStore
	accountID string
}

// Session returns a view of m acting as accountID.
func (m *MemoryStore) Session(accountID string) *Session {
	return &Session{store: m, accountID: accountID}
}

func (s *Session) ctx(ctx context.Context) context.Context {
	return utils.WithAccountID(ctx, s.accountID)
}

func (s *Session) ModifyZones(ctx context.Context, save []models.RemoteZone, deleteIDs []models.ZoneID) (models.ModifyZonesResult, error) {
	return s.store.ModifyZones(s.ctx(ctx), save, deleteIDs)
}

func (s *Session) ModifySubscriptions(ctx context.Context, save []models.Subscription, deleteIDs []string) (models.ModifySubscriptionsResult, error) {
	return s.store.ModifySubscriptions(s.ctx(ctx), save, deleteIDs)
}

func (s *Session) FetchAllSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return s.store.FetchAllSubscriptions(s.ctx(ctx))
}

func (s *Session) FetchZoneChanges(ctx context.Context, req models.ZoneChangesRequest) (models.ZoneChangesPage, error) {
	return s.store.FetchZoneChanges(s.ctx(ctx), req)
}

func (s *Session) ModifyRecords(ctx context.Context, req models.ModifyRecordsRequest) (models.ModifyRecordsResult, error) {
	return s.store.ModifyRecords(s.ctx(ctx), req)
}

func (s *Session) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	return s.store.AccountStatus(s.ctx(ctx))
}

var (
	_ adapter.RecordDatabase = (*MemoryStore)(nil)
	_ adapter.AccountService = (*MemoryStore)(nil)
	_ adapter.RecordDatabase = (*Session)(nil)
	_ adapter.AccountService = (*Session)(nil)
)
