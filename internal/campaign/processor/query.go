package processor

import (
	"campaign-server/internal/campaign/conflict"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
)

// GetProgress returns the cursor and size of a campaign's work list
func (p *CampaignProcessor) GetProgress(ctx context.Context, identity Identity, campaignID int64) (Progress, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: identity.CustomerID},
		observability.Field{Key: "campaign_id", Value: campaignID},
	)

	if identity.CustomerID <= 0 {
		return Progress{}, ErrUnauthenticated
	}

	campaign, err := p.getOwnedCampaign(ctx, identity, campaignID)
	if err != nil {
		return Progress{}, err
	}

	config, err := p.store.GetGroupShareConfig(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Progress{}, ErrCampaignConfigNotFound
		}
		return Progress{}, fmt.Errorf("failed to get campaign config: %w", err)
	}

	totalGroups, err := p.totalGroups(ctx, config.ExtractionID, nil)
	if err != nil {
		return Progress{}, err
	}

	return Progress{
		CampaignID:         campaign.ID,
		LastProcessedIndex: config.LastProcessedIndex,
		TotalGroups:        totalGroups,
		Status:             campaign.Status,
	}, nil
}

// ListResumable lists the caller's active campaigns started by the caller's device
func (p *CampaignProcessor) ListResumable(ctx context.Context, identity Identity) (ResumableList, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: identity.CustomerID})

	if identity.CustomerID <= 0 {
		return ResumableList{}, ErrUnauthenticated
	}
	deviceID, ok := identity.device()
	if !ok {
		return ResumableList{}, ErrDeviceRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "device_id", Value: deviceID})

	campaigns, err := p.store.GetCustomerCampaignsByDevice(ctx, identity.CustomerID, deviceID, store.ActiveCampaignStatuses)
	if err != nil {
		return ResumableList{}, fmt.Errorf("failed to list device campaigns: %w", err)
	}

	list := ResumableList{
		Campaigns:          make([]ResumableCampaign, 0, len(campaigns)),
		SkippedCampaignIDs: []int64{},
	}
	groupCounts := make(map[int64]int)

	for _, campaign := range campaigns {
		config, err := p.store.GetGroupShareConfig(ctx, campaign.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				list.SkippedCampaignIDs = append(list.SkippedCampaignIDs, campaign.ID)
				continue
			}
			return ResumableList{}, fmt.Errorf("failed to get campaign config: %w", err)
		}

		totalGroups, err := p.totalGroups(ctx, config.ExtractionID, groupCounts)
		if err != nil {
			return ResumableList{}, err
		}

		accountIDs, err := p.store.GetCampaignAccountIDs(ctx, campaign.ID)
		if err != nil {
			return ResumableList{}, fmt.Errorf("failed to get campaign accounts: %w", err)
		}

		campaignID := campaign.ID
		reservations, err := p.detector.FindActive(ctx, accountIDs, &campaignID)
		if err != nil {
			return ResumableList{}, fmt.Errorf("failed to check account reservations: %w", err)
		}

		conflicting := conflict.AccountIDs(reservations)
		if len(conflicting) > 0 {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "campaign_id", Value: campaign.ID},
				observability.Field{Key: "conflicting_accounts", Value: len(conflicting)},
			), "resumable campaign shares accounts with another active campaign")
		}

		if accountIDs == nil {
			accountIDs = []int64{}
		}
		if conflicting == nil {
			conflicting = []int64{}
		}
		list.Campaigns = append(list.Campaigns, ResumableCampaign{
			CampaignID:         campaign.ID,
			Status:             campaign.Status,
			StartedAt:          campaign.StartedAt,
			ExtractionID:       config.ExtractionID,
			TotalGroups:        totalGroups,
			LastProcessedIndex: config.LastProcessedIndex,
			Params: GroupShareParams{
				Message:         config.Message,
				Link:            config.Link,
				MinDelaySeconds: config.MinDelaySeconds,
				MaxDelaySeconds: config.MaxDelaySeconds,
			},
			AccountIDs:            accountIDs,
			ConflictingAccountIDs: conflicting,
		})
	}

	return list, nil
}

// totalGroups returns the extraction's group count, 0 when it no longer exists.
// cache may be nil.
func (p *CampaignProcessor) totalGroups(ctx context.Context, extractionID int64, cache map[int64]int) (int, error) {
	if count, ok := cache[extractionID]; ok {
		return count, nil
	}

	extraction, err := p.extractions.GetGroupExtractionByID(ctx, extractionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("failed to get extraction: %w", err)
	}

	if cache != nil {
		cache[extractionID] = extraction.GroupsCount
	}
	return extraction.GroupsCount, nil
}
