package processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
)

// PauseCampaign moves a campaign to PAUSED. Reservations stay in force.
func (p *CampaignProcessor) PauseCampaign(ctx context.Context, identity Identity, campaignID int64, lastProcessedIndex *int) error {
	return p.transition(ctx, identity, campaignID, store.CampaignStatusPaused, lastProcessedIndex)
}

// ResumeCampaign moves a PAUSED campaign back to RUNNING
func (p *CampaignProcessor) ResumeCampaign(ctx context.Context, identity Identity, campaignID int64, lastProcessedIndex *int) error {
	return p.transition(ctx, identity, campaignID, store.CampaignStatusRunning, lastProcessedIndex)
}

// CompleteCampaign moves a campaign to COMPLETED and releases its reservations
func (p *CampaignProcessor) CompleteCampaign(ctx context.Context, identity Identity, campaignID int64, lastProcessedIndex *int) error {
	return p.transition(ctx, identity, campaignID, store.CampaignStatusCompleted, lastProcessedIndex)
}

// CancelCampaign moves a campaign to CANCELLED and releases its reservations
func (p *CampaignProcessor) CancelCampaign(ctx context.Context, identity Identity, campaignID int64, lastProcessedIndex *int) error {
	return p.transition(ctx, identity, campaignID, store.CampaignStatusCancelled, lastProcessedIndex)
}

func (p *CampaignProcessor) transition(ctx context.Context, identity Identity, campaignID int64, toStatus string, lastProcessedIndex *int) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: identity.CustomerID},
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "to_status", Value: toStatus},
	)

	if identity.CustomerID <= 0 {
		return ErrUnauthenticated
	}

	campaign, err := p.getOwnedCampaign(ctx, identity, campaignID)
	if err != nil {
		return err
	}

	fromStatus := campaign.Status
	if !CanTransition(fromStatus, toStatus) {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "from_status", Value: fromStatus},
		), "rejected campaign status transition")
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, fromStatus, toStatus)
	}

	var cursor *int
	if lastProcessedIndex != nil {
		clamped := max(0, *lastProcessedIndex)
		cursor = &clamped
	}

	result, err := p.store.TransitionCampaign(ctx, store.TransitionCampaignParams{
		CampaignID:         campaignID,
		FromStatus:         fromStatus,
		ToStatus:           toStatus,
		LastProcessedIndex: cursor,
		ReleaseLocks:       store.IsTerminalCampaignStatus(toStatus),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStatusChanged):
			p.logger.Warn(ctx, "campaign status changed during transition")
			return ErrConcurrentModification
		case errors.Is(err, store.ErrNotFound):
			return ErrCampaignConfigNotFound
		default:
			return fmt.Errorf("failed to transition campaign: %w", err)
		}
	}

	if cursor != nil && result.PreviousLastProcessedIndex != nil && *cursor < *result.PreviousLastProcessedIndex {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "previous_index", Value: *result.PreviousLastProcessedIndex},
			observability.Field{Key: "reported_index", Value: *cursor},
		), "campaign cursor moved backwards")
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "from_status", Value: fromStatus},
	), "campaign status changed")

	if p.publisher != nil {
		if err := p.publisher.PublishCampaignTransitioned(ctx, result.Campaign, fromStatus, cursor); err != nil {
			p.logger.Error(ctx, "failed to publish campaign transition event", err)
		}
	}
	return nil
}

func (p *CampaignProcessor) getOwnedCampaign(ctx context.Context, identity Identity, campaignID int64) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.CustomerID != identity.CustomerID {
		p.logger.Warn(ctx, "campaign belongs to another customer")
		return store.Campaign{}, ErrForbidden
	}
	return campaign, nil
}
