package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// CreateGroupShareCampaignParams represents parameters for starting a FB_GROUP_SHARE campaign
type CreateGroupShareCampaignParams struct {
	CustomerID      int64
	DeviceID        *string
	ExtractionID    int64
	AccountIDs      []int64
	Message         *string
	Link            *string
	MinDelaySeconds *int
	MaxDelaySeconds *int
}

// TransitionCampaignParams represents a compare-and-set status change
type TransitionCampaignParams struct {
	CampaignID int64
	FromStatus string
	ToStatus   string
	// LastProcessedIndex, when set, overwrites the group-share cursor in the same transaction.
	LastProcessedIndex *int
	// ReleaseLocks deletes the account and device lock rows owned by the campaign.
	ReleaseLocks bool
}

// TransitionResult carries the updated campaign and the cursor it replaced, if any
type TransitionResult struct {
	Campaign                   Campaign
	PreviousLastProcessedIndex *int
}

const campaignColumns = `id, campaign_type_code, customer_id, device_id, status, started_at, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (campaign_type_code, customer_id, device_id, status, started_at)
VALUES ($1, $2, $3, $4, NOW())
RETURNING ` + campaignColumns

const sqlCreateGroupShareConfig = `
INSERT INTO fb_group_share_campaigns (campaign_id, extraction_id, message, link, min_delay_seconds, max_delay_seconds, last_processed_index)
VALUES ($1, $2, $3, $4, $5, $6, 0)
`

const sqlCreateCampaignAccounts = `
INSERT INTO campaign_accounts (campaign_id, social_account_id)
SELECT $1, unnest($2::bigint[])
`

const sqlLockCampaignAccounts = `
INSERT INTO campaign_account_locks (social_account_id, campaign_id)
SELECT unnest($1::bigint[]), $2
ON CONFLICT (social_account_id) DO NOTHING
RETURNING social_account_id
`

const sqlLockDeviceCampaign = `
INSERT INTO device_campaign_locks (device_id, campaign_type_code, campaign_id)
VALUES ($1, $2, $3)
ON CONFLICT (device_id, campaign_type_code) DO NOTHING
`

// CreateGroupShareCampaign creates a RUNNING campaign with its config, account
// reservations and lock rows in a single transaction. A lock row that already
// exists aborts the whole transaction with ErrDeviceLocked or an *AccountLockError.
func (s *Store) CreateGroupShareCampaign(ctx context.Context, params CreateGroupShareCampaignParams) (Campaign, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Campaign{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var campaign Campaign
	err = tx.GetContext(ctx, &campaign, sqlCreateCampaign,
		CampaignTypeFacebookGroupShare,
		params.CustomerID,
		params.DeviceID,
		CampaignStatusRunning)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlCreateGroupShareConfig,
		campaign.ID,
		params.ExtractionID,
		params.Message,
		params.Link,
		params.MinDelaySeconds,
		params.MaxDelaySeconds)
	if err != nil {
		s.logger.Error(ctx, "failed to create group share config", err)
		return Campaign{}, fmt.Errorf("failed to create group share config: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlCreateCampaignAccounts, campaign.ID, pq.Array(params.AccountIDs))
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign accounts", err)
		return Campaign{}, fmt.Errorf("failed to create campaign accounts: %w", err)
	}

	var locked []int64
	err = tx.SelectContext(ctx, &locked, sqlLockCampaignAccounts, pq.Array(params.AccountIDs), campaign.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to lock campaign accounts", err)
		return Campaign{}, fmt.Errorf("failed to lock campaign accounts: %w", err)
	}
	if missing := difference(params.AccountIDs, locked); len(missing) > 0 {
		return Campaign{}, &AccountLockError{AccountIDs: missing}
	}

	if params.DeviceID != nil {
		res, err := tx.ExecContext(ctx, sqlLockDeviceCampaign, *params.DeviceID, CampaignTypeFacebookGroupShare, campaign.ID)
		if err != nil {
			s.logger.Error(ctx, "failed to lock device campaign", err)
			return Campaign{}, fmt.Errorf("failed to lock device campaign: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return Campaign{}, fmt.Errorf("failed to read affected rows: %w", err)
		}
		if rows == 0 {
			return Campaign{}, ErrDeviceLocked
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Campaign{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignsByDeviceAndType = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE device_id = $1 AND campaign_type_code = $2 AND status = ANY($3)
ORDER BY started_at DESC, id DESC
`

// GetCampaignsByDeviceAndType retrieves the campaigns of one type started by a device in the given statuses
func (s *Store) GetCampaignsByDeviceAndType(ctx context.Context, deviceID, typeCode string, statuses []string) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetCampaignsByDeviceAndType, deviceID, typeCode, pq.Array(statuses))
	if err != nil {
		s.logger.Error(ctx, "failed to get campaigns by device and type", err)
		return nil, fmt.Errorf("failed to get campaigns by device and type: %w", err)
	}
	return campaigns, nil
}

const sqlGetCustomerCampaignsByDevice = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE customer_id = $1 AND device_id = $2 AND status = ANY($3)
ORDER BY started_at DESC, id DESC
`

// GetCustomerCampaignsByDevice retrieves a customer's campaigns of any type started by a device
func (s *Store) GetCustomerCampaignsByDevice(ctx context.Context, customerID int64, deviceID string, statuses []string) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetCustomerCampaignsByDevice, customerID, deviceID, pq.Array(statuses))
	if err != nil {
		s.logger.Error(ctx, "failed to get customer campaigns by device", err)
		return nil, fmt.Errorf("failed to get customer campaigns by device: %w", err)
	}
	return campaigns, nil
}

const sqlTransitionCampaign = `
UPDATE campaigns
SET status = $3,
    updated_at = NOW()
WHERE id = $1 AND status = $2
RETURNING ` + campaignColumns

const sqlLockGroupShareCursor = `
SELECT last_processed_index
FROM fb_group_share_campaigns
WHERE campaign_id = $1
FOR UPDATE
`

const sqlUpdateGroupShareCursor = `
UPDATE fb_group_share_campaigns
SET last_processed_index = GREATEST(0, $2)
WHERE campaign_id = $1
`

const sqlReleaseAccountLocks = `
DELETE FROM campaign_account_locks
WHERE campaign_id = $1
`

const sqlReleaseDeviceLock = `
DELETE FROM device_campaign_locks
WHERE campaign_id = $1
`

// TransitionCampaign moves a campaign from FromStatus to ToStatus. The status
// flip, the optional cursor update and the lock release commit together.
// ErrStatusChanged is returned when the campaign is no longer in FromStatus.
func (s *Store) TransitionCampaign(ctx context.Context, params TransitionCampaignParams) (TransitionResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return TransitionResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result TransitionResult
	err = tx.GetContext(ctx, &result.Campaign, sqlTransitionCampaign, params.CampaignID, params.FromStatus, params.ToStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TransitionResult{}, ErrStatusChanged
		}
		s.logger.Error(ctx, "failed to update campaign status", err)
		return TransitionResult{}, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if params.LastProcessedIndex != nil {
		var previous int
		err = tx.GetContext(ctx, &previous, sqlLockGroupShareCursor, params.CampaignID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return TransitionResult{}, ErrNotFound
			}
			s.logger.Error(ctx, "failed to read group share cursor", err)
			return TransitionResult{}, fmt.Errorf("failed to read group share cursor: %w", err)
		}
		result.PreviousLastProcessedIndex = &previous

		_, err = tx.ExecContext(ctx, sqlUpdateGroupShareCursor, params.CampaignID, *params.LastProcessedIndex)
		if err != nil {
			s.logger.Error(ctx, "failed to update group share cursor", err)
			return TransitionResult{}, fmt.Errorf("failed to update group share cursor: %w", err)
		}
	}

	if params.ReleaseLocks {
		if _, err = tx.ExecContext(ctx, sqlReleaseAccountLocks, params.CampaignID); err != nil {
			s.logger.Error(ctx, "failed to release account locks", err)
			return TransitionResult{}, fmt.Errorf("failed to release account locks: %w", err)
		}
		if _, err = tx.ExecContext(ctx, sqlReleaseDeviceLock, params.CampaignID); err != nil {
			s.logger.Error(ctx, "failed to release device lock", err)
			return TransitionResult{}, fmt.Errorf("failed to release device lock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return TransitionResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// difference returns the ids in want that are absent from got, in want order.
func difference(want, got []int64) []int64 {
	seen := make(map[int64]struct{}, len(got))
	for _, id := range got {
		seen[id] = struct{}{}
	}
	var missing []int64
	for _, id := range want {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
