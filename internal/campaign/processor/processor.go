package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/campaign/conflict"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
	"time"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	GetCampaignsByDeviceAndType(ctx context.Context, deviceID, typeCode string, statuses []string) ([]store.Campaign, error)
	GetCustomerCampaignsByDevice(ctx context.Context, customerID int64, deviceID string, statuses []string) ([]store.Campaign, error)
	GetGroupShareConfig(ctx context.Context, campaignID int64) (store.GroupShareConfig, error)
	GetCampaignAccountIDs(ctx context.Context, campaignID int64) ([]int64, error)
	CreateGroupShareCampaign(ctx context.Context, params store.CreateGroupShareCampaignParams) (store.Campaign, error)
	TransitionCampaign(ctx context.Context, params store.TransitionCampaignParams) (store.TransitionResult, error)
}

// ExtractionStore reads extraction headers. Extractions are never modified.
type ExtractionStore interface {
	GetGroupExtractionByID(ctx context.Context, extractionID int64) (store.GroupExtraction, error)
}

// AccountRegistry resolves social accounts and their owners
type AccountRegistry interface {
	GetSocialAccountsByIDs(ctx context.Context, ids []int64) ([]store.SocialAccount, error)
}

// ConflictDetector reports active reservations on accounts
type ConflictDetector interface {
	FindActive(ctx context.Context, accountIDs []int64, excludeCampaignID *int64) ([]store.Reservation, error)
}

// EventPublisher emits campaign lifecycle events after commit
type EventPublisher interface {
	PublishCampaignStarted(ctx context.Context, campaign store.Campaign, extractionID int64, accountIDs []int64) error
	PublishCampaignTransitioned(ctx context.Context, campaign store.Campaign, fromStatus string, lastProcessedIndex *int) error
}

// StartLocker serializes starts of one customer
type StartLocker interface {
	Acquire(ctx context.Context, customerID int64) (release func(), acquired bool, err error)
}

// Account skip reasons reported by StartGroupShare
const (
	SkipReasonNotFound = "not_found"
	SkipReasonNotOwned = "not_owned"
)

// Identity is the already authenticated caller
type Identity struct {
	CustomerID int64
	DeviceID   *string
}

func (i Identity) device() (string, bool) {
	if i.DeviceID == nil || *i.DeviceID == "" {
		return "", false
	}
	return *i.DeviceID, true
}

// GroupShareParams are the free-form FB_GROUP_SHARE parameters
type GroupShareParams struct {
	Message         *string `json:"message,omitempty"`
	Link            *string `json:"link,omitempty"`
	MinDelaySeconds *int    `json:"min_delay_seconds,omitempty"`
	MaxDelaySeconds *int    `json:"max_delay_seconds,omitempty"`
}

// StartParams represents parameters for starting a group-share campaign
type StartParams struct {
	ExtractionID int64
	AccountIDs   []int64
	Params       GroupShareParams
}

type SkippedAccount struct {
	AccountID int64  `json:"account_id"`
	Reason    string `json:"reason"`
}

type StartResult struct {
	CampaignID         int64            `json:"campaign_id"`
	TotalGroups        int              `json:"total_groups"`
	LastProcessedIndex int              `json:"last_processed_index"`
	Status             string           `json:"status"`
	SkippedAccounts    []SkippedAccount `json:"skipped_accounts"`
}

type Progress struct {
	CampaignID         int64  `json:"campaign_id"`
	LastProcessedIndex int    `json:"last_processed_index"`
	TotalGroups        int    `json:"total_groups"`
	Status             string `json:"status"`
}

type ResumableCampaign struct {
	CampaignID            int64            `json:"campaign_id"`
	Status                string           `json:"status"`
	StartedAt             time.Time        `json:"started_at"`
	ExtractionID          int64            `json:"extraction_id"`
	TotalGroups           int              `json:"total_groups"`
	LastProcessedIndex    int              `json:"last_processed_index"`
	Params                GroupShareParams `json:"params"`
	AccountIDs            []int64          `json:"account_ids"`
	ConflictingAccountIDs []int64          `json:"conflicting_account_ids"`
}

type ResumableList struct {
	Campaigns []ResumableCampaign `json:"campaigns"`
	// SkippedCampaignIDs are active campaigns of the device without a group-share config row.
	SkippedCampaignIDs []int64 `json:"skipped_campaign_ids"`
}

type CampaignProcessor struct {
	store       CampaignStore
	extractions ExtractionStore
	accounts    AccountRegistry
	detector    ConflictDetector
	publisher   EventPublisher
	startLocker StartLocker
	logger      *observability.Logger
}

func New(
	store CampaignStore,
	extractions ExtractionStore,
	accounts AccountRegistry,
	detector ConflictDetector,
	publisher EventPublisher,
	startLocker StartLocker,
	logger *observability.Logger,
) CampaignProcessor {
	return CampaignProcessor{
		store:       store,
		extractions: extractions,
		accounts:    accounts,
		detector:    detector,
		publisher:   publisher,
		startLocker: startLocker,
		logger:      logger,
	}
}

// StartGroupShare starts a FB_GROUP_SHARE campaign on the caller's device
func (p *CampaignProcessor) StartGroupShare(ctx context.Context, identity Identity, params StartParams) (StartResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: identity.CustomerID},
		observability.Field{Key: "extraction_id", Value: params.ExtractionID},
	)
	deviceID, hasDevice := identity.device()
	if hasDevice {
		ctx = observability.WithFields(ctx, observability.Field{Key: "device_id", Value: deviceID})
	}

	if err := validateStartParams(params); err != nil {
		return StartResult{}, err
	}
	if identity.CustomerID <= 0 {
		return StartResult{}, ErrUnauthenticated
	}

	release, err := p.acquireStartLock(ctx, identity.CustomerID)
	if err != nil {
		return StartResult{}, err
	}
	defer release()

	if hasDevice {
		active, err := p.store.GetCampaignsByDeviceAndType(ctx, deviceID, store.CampaignTypeFacebookGroupShare, store.ActiveCampaignStatuses)
		if err != nil {
			return StartResult{}, fmt.Errorf("failed to check device campaigns: %w", err)
		}
		if len(active) > 0 {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "active_campaign_id", Value: active[0].ID},
			), "device already has an active group share campaign")
			return StartResult{}, ErrDeviceCampaignActive
		}
	}

	extraction, err := p.extractions.GetGroupExtractionByID(ctx, params.ExtractionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StartResult{}, ErrExtractionNotFound
		}
		return StartResult{}, fmt.Errorf("failed to get extraction: %w", err)
	}
	if extraction.CustomerID != identity.CustomerID {
		p.logger.Warn(ctx, "extraction belongs to another customer")
		return StartResult{}, ErrForbidden
	}

	usable, usernames, skipped, err := p.filterOwnedAccounts(ctx, identity.CustomerID, params.AccountIDs)
	if err != nil {
		return StartResult{}, err
	}
	if len(skipped) > 0 {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "skipped_accounts", Value: len(skipped)},
		), "skipping accounts not owned by customer")
	}
	if len(usable) == 0 {
		return StartResult{}, ErrNoUsableAccounts
	}

	reservations, err := p.detector.FindActive(ctx, usable, nil)
	if err != nil {
		return StartResult{}, fmt.Errorf("failed to check account reservations: %w", err)
	}
	if len(reservations) > 0 {
		return StartResult{}, newAccountConflictError(conflict.AccountIDs(reservations), usernames)
	}

	campaign, err := p.store.CreateGroupShareCampaign(ctx, store.CreateGroupShareCampaignParams{
		CustomerID:      identity.CustomerID,
		DeviceID:        identity.DeviceID,
		ExtractionID:    extraction.ID,
		AccountIDs:      usable,
		Message:         params.Params.Message,
		Link:            params.Params.Link,
		MinDelaySeconds: params.Params.MinDelaySeconds,
		MaxDelaySeconds: params.Params.MaxDelaySeconds,
	})
	if err != nil {
		var lockErr *store.AccountLockError
		switch {
		case errors.As(err, &lockErr):
			p.logger.Warn(ctx, "account reservation lost to a concurrent start")
			return StartResult{}, newAccountConflictError(lockErr.AccountIDs, usernames)
		case errors.Is(err, store.ErrDeviceLocked):
			p.logger.Warn(ctx, "device lock lost to a concurrent start")
			return StartResult{}, ErrDeviceCampaignActive
		default:
			return StartResult{}, fmt.Errorf("failed to create campaign: %w", err)
		}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})
	p.logger.Info(ctx, "group share campaign started")

	if p.publisher != nil {
		if err := p.publisher.PublishCampaignStarted(ctx, campaign, extraction.ID, usable); err != nil {
			p.logger.Error(ctx, "failed to publish campaign started event", err)
		}
	}

	if skipped == nil {
		skipped = []SkippedAccount{}
	}
	return StartResult{
		CampaignID:         campaign.ID,
		TotalGroups:        extraction.GroupsCount,
		LastProcessedIndex: 0,
		Status:             campaign.Status,
		SkippedAccounts:    skipped,
	}, nil
}

func validateStartParams(params StartParams) error {
	if params.ExtractionID <= 0 {
		return fmt.Errorf("%w: extraction_id is required", ErrInvalidRequest)
	}
	if len(params.AccountIDs) == 0 {
		return fmt.Errorf("%w: account_ids must not be empty", ErrInvalidRequest)
	}
	for _, id := range params.AccountIDs {
		if id <= 0 {
			return fmt.Errorf("%w: account id %d is invalid", ErrInvalidRequest, id)
		}
	}

	minDelay, maxDelay := params.Params.MinDelaySeconds, params.Params.MaxDelaySeconds
	if minDelay != nil && *minDelay < 0 {
		return fmt.Errorf("%w: min_delay_seconds must not be negative", ErrInvalidRequest)
	}
	if maxDelay != nil && *maxDelay < 0 {
		return fmt.Errorf("%w: max_delay_seconds must not be negative", ErrInvalidRequest)
	}
	if minDelay != nil && maxDelay != nil && *minDelay > *maxDelay {
		return fmt.Errorf("%w: min_delay_seconds must not exceed max_delay_seconds", ErrInvalidRequest)
	}
	return nil
}

func (p *CampaignProcessor) acquireStartLock(ctx context.Context, customerID int64) (func(), error) {
	if p.startLocker == nil {
		return func() {}, nil
	}

	release, acquired, err := p.startLocker.Acquire(ctx, customerID)
	if err != nil {
		// The lock rows written by the start transaction still reject conflicting starts.
		p.logger.Error(ctx, "start lock unavailable, continuing without it", err)
		return func() {}, nil
	}
	if !acquired {
		return nil, ErrStartInProgress
	}
	return release, nil
}

// filterOwnedAccounts keeps the requested accounts that exist and belong to the
// customer, in ascending id order, and reports the others.
func (p *CampaignProcessor) filterOwnedAccounts(ctx context.Context, customerID int64, requested []int64) ([]int64, map[int64]string, []SkippedAccount, error) {
	ids := conflict.Distinct(requested)

	accounts, err := p.accounts.GetSocialAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get social accounts: %w", err)
	}

	byID := make(map[int64]store.SocialAccount, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	var usable []int64
	var skipped []SkippedAccount
	usernames := make(map[int64]string, len(accounts))
	for _, id := range ids {
		account, ok := byID[id]
		switch {
		case !ok:
			skipped = append(skipped, SkippedAccount{AccountID: id, Reason: SkipReasonNotFound})
		case account.CustomerID != customerID:
			skipped = append(skipped, SkippedAccount{AccountID: id, Reason: SkipReasonNotOwned})
		default:
			usable = append(usable, id)
			usernames[id] = account.Username
		}
	}
	return usable, usernames, skipped, nil
}

func newAccountConflictError(accountIDs []int64, usernames map[int64]string) *AccountConflictError {
	accounts := make([]ConflictingAccount, 0, len(accountIDs))
	for _, id := range accountIDs {
		accounts = append(accounts, ConflictingAccount{AccountID: id, Username: usernames[id]})
	}
	return &AccountConflictError{Accounts: accounts}
}
