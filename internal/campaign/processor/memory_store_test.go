package processor

import (
	"campaign-server/internal/campaign/conflict"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

// memoryStore mirrors the storage contract of store.Store, lock tables included.
type memoryStore struct {
	mu sync.Mutex

	nextID           int64
	campaigns        map[int64]store.Campaign
	configs          map[int64]store.GroupShareConfig
	campaignAccounts map[int64][]int64
	accountLocks     map[int64]int64
	deviceLocks      map[string]int64

	extractions map[int64]store.GroupExtraction
	accounts    map[int64]store.SocialAccount
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		campaigns:        make(map[int64]store.Campaign),
		configs:          make(map[int64]store.GroupShareConfig),
		campaignAccounts: make(map[int64][]int64),
		accountLocks:     make(map[int64]int64),
		deviceLocks:      make(map[string]int64),
		extractions:      make(map[int64]store.GroupExtraction),
		accounts:         make(map[int64]store.SocialAccount),
	}
}

func (m *memoryStore) addExtraction(id, customerID int64, groups int) {
	m.extractions[id] = store.GroupExtraction{ID: id, CustomerID: customerID, GroupsCount: groups}
}

func (m *memoryStore) addAccount(id, customerID int64, username string) {
	m.accounts[id] = store.SocialAccount{ID: id, CustomerID: customerID, Username: username, Status: store.SocialAccountStatusActive}
}

// insertCampaign writes rows directly, bypassing the lock tables.
func (m *memoryStore) insertCampaign(c store.Campaign, config *store.GroupShareConfig, accountIDs []int64) {
	m.nextID++
	c.ID = m.nextID
	m.campaigns[c.ID] = c
	if config != nil {
		config.CampaignID = c.ID
		m.configs[c.ID] = *config
	}
	m.campaignAccounts[c.ID] = accountIDs
}

func deviceKey(deviceID, typeCode string) string {
	return deviceID + "|" + typeCode
}

func (m *memoryStore) GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[campaignID]
	if !ok {
		return store.Campaign{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memoryStore) GetCampaignsByDeviceAndType(ctx context.Context, deviceID, typeCode string, statuses []string) ([]store.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Campaign
	for _, c := range m.sortedCampaigns() {
		if c.DeviceID != nil && *c.DeviceID == deviceID && c.CampaignTypeCode == typeCode && contains(statuses, c.Status) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) GetCustomerCampaignsByDevice(ctx context.Context, customerID int64, deviceID string, statuses []string) ([]store.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Campaign
	for _, c := range m.sortedCampaigns() {
		if c.CustomerID == customerID && c.DeviceID != nil && *c.DeviceID == deviceID && contains(statuses, c.Status) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) GetGroupShareConfig(ctx context.Context, campaignID int64) (store.GroupShareConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.configs[campaignID]
	if !ok {
		return store.GroupShareConfig{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memoryStore) GetCampaignAccountIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.campaignAccounts[campaignID]...), nil
}

func (m *memoryStore) CreateGroupShareCampaign(ctx context.Context, params store.CreateGroupShareCampaignParams) (store.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var locked []int64
	for _, id := range params.AccountIDs {
		if _, held := m.accountLocks[id]; held {
			locked = append(locked, id)
		}
	}
	if len(locked) > 0 {
		return store.Campaign{}, &store.AccountLockError{AccountIDs: locked}
	}
	if params.DeviceID != nil {
		if _, held := m.deviceLocks[deviceKey(*params.DeviceID, store.CampaignTypeFacebookGroupShare)]; held {
			return store.Campaign{}, store.ErrDeviceLocked
		}
	}

	now := time.Now()
	m.nextID++
	c := store.Campaign{
		ID:               m.nextID,
		CampaignTypeCode: store.CampaignTypeFacebookGroupShare,
		CustomerID:       params.CustomerID,
		DeviceID:         params.DeviceID,
		Status:           store.CampaignStatusRunning,
		StartedAt:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.campaigns[c.ID] = c
	m.configs[c.ID] = store.GroupShareConfig{
		CampaignID:      c.ID,
		ExtractionID:    params.ExtractionID,
		Message:         params.Message,
		Link:            params.Link,
		MinDelaySeconds: params.MinDelaySeconds,
		MaxDelaySeconds: params.MaxDelaySeconds,
	}
	m.campaignAccounts[c.ID] = append([]int64(nil), params.AccountIDs...)
	for _, id := range params.AccountIDs {
		m.accountLocks[id] = c.ID
	}
	if params.DeviceID != nil {
		m.deviceLocks[deviceKey(*params.DeviceID, store.CampaignTypeFacebookGroupShare)] = c.ID
	}
	return c, nil
}

func (m *memoryStore) TransitionCampaign(ctx context.Context, params store.TransitionCampaignParams) (store.TransitionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.campaigns[params.CampaignID]
	if !ok || c.Status != params.FromStatus {
		return store.TransitionResult{}, store.ErrStatusChanged
	}

	var result store.TransitionResult
	if params.LastProcessedIndex != nil {
		config, ok := m.configs[params.CampaignID]
		if !ok {
			return store.TransitionResult{}, store.ErrNotFound
		}
		previous := config.LastProcessedIndex
		result.PreviousLastProcessedIndex = &previous
		config.LastProcessedIndex = max(0, *params.LastProcessedIndex)
		m.configs[params.CampaignID] = config
	}

	c.Status = params.ToStatus
	c.UpdatedAt = time.Now()
	m.campaigns[c.ID] = c

	if params.ReleaseLocks {
		for account, holder := range m.accountLocks {
			if holder == c.ID {
				delete(m.accountLocks, account)
			}
		}
		for key, holder := range m.deviceLocks {
			if holder == c.ID {
				delete(m.deviceLocks, key)
			}
		}
	}

	result.Campaign = c
	return result, nil
}

func (m *memoryStore) FindReservations(ctx context.Context, accountIDs []int64, statuses []string, excludeCampaignID *int64) ([]store.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}

	var out []store.Reservation
	for _, c := range m.sortedCampaigns() {
		if excludeCampaignID != nil && c.ID == *excludeCampaignID {
			continue
		}
		if !contains(statuses, c.Status) {
			continue
		}
		for _, account := range m.campaignAccounts[c.ID] {
			if wanted[account] {
				out = append(out, store.Reservation{CampaignID: c.ID, SocialAccountID: account, Status: c.Status})
			}
		}
	}
	return out, nil
}

func (m *memoryStore) GetGroupExtractionByID(ctx context.Context, extractionID int64) (store.GroupExtraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.extractions[extractionID]
	if !ok {
		return store.GroupExtraction{}, store.ErrNotFound
	}
	return e, nil
}

func (m *memoryStore) GetSocialAccountsByIDs(ctx context.Context, ids []int64) ([]store.SocialAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.SocialAccount
	for _, id := range ids {
		if a, ok := m.accounts[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) sortedCampaigns() []store.Campaign {
	out := make([]store.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

type recordedEvent struct {
	kind       string
	campaign   store.Campaign
	fromStatus string
	cursor     *int
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (r *recordingPublisher) PublishCampaignStarted(ctx context.Context, campaign store.Campaign, extractionID int64, accountIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{kind: "started", campaign: campaign})
	return r.err
}

func (r *recordingPublisher) PublishCampaignTransitioned(ctx context.Context, campaign store.Campaign, fromStatus string, lastProcessedIndex *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{kind: "transitioned", campaign: campaign, fromStatus: fromStatus, cursor: lastProcessedIndex})
	return r.err
}

func testLogger() *observability.Logger {
	return observability.NewLoggerWithCore(zapcore.NewNopCore())
}

// newMemoryProcessor wires a processor over memoryStore with customer 5 owning
// extraction 10 (25 groups) and accounts 1..4, and customer 6 owning account 7.
func newMemoryProcessor(t *testing.T) (CampaignProcessor, *memoryStore, *recordingPublisher) {
	t.Helper()

	mem := newMemoryStore()
	mem.addExtraction(10, 5, 25)
	mem.addExtraction(20, 6, 8)
	mem.addAccount(1, 5, "alice")
	mem.addAccount(2, 5, "bob")
	mem.addAccount(3, 5, "carol")
	mem.addAccount(4, 5, "dave")
	mem.addAccount(7, 6, "mallory")

	logger := testLogger()
	publisher := &recordingPublisher{}
	detector := conflict.New(mem, logger)
	return New(mem, mem, mem, detector, publisher, nil, logger), mem, publisher
}

func newDetector(mem *memoryStore) conflict.Detector {
	return conflict.New(mem, testLogger())
}
