package events

import (
	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Campaign lifecycle event types
const (
	EventCampaignStarted   = "campaign.started"
	EventCampaignPaused    = "campaign.paused"
	EventCampaignResumed   = "campaign.resumed"
	EventCampaignCompleted = "campaign.completed"
	EventCampaignCancelled = "campaign.cancelled"
)

// EventProducer writes a serialized event to the stream
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing campaign lifecycle events to Kafka.
// A Publisher without a producer drops every event.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishCampaignStarted publishes a campaign.started event
func (p *Publisher) PublishCampaignStarted(ctx context.Context, campaign store.Campaign, extractionID int64, accountIDs []int64) error {
	return p.publish(ctx, EventCampaignStarted, campaign, map[string]interface{}{
		"campaign_type": campaign.CampaignTypeCode,
		"device_id":     campaign.DeviceID,
		"extraction_id": extractionID,
		"account_ids":   accountIDs,
		"status":        campaign.Status,
	})
}

// PublishCampaignTransitioned publishes the event matching the campaign's new status
func (p *Publisher) PublishCampaignTransitioned(ctx context.Context, campaign store.Campaign, fromStatus string, lastProcessedIndex *int) error {
	data := map[string]interface{}{
		"from_status": fromStatus,
		"status":      campaign.Status,
	}
	if lastProcessedIndex != nil {
		data["last_processed_index"] = *lastProcessedIndex
	}
	return p.publish(ctx, TransitionEventType(fromStatus, campaign.Status), campaign, data)
}

// TransitionEventType names the event emitted for a status change
func TransitionEventType(fromStatus, toStatus string) string {
	switch toStatus {
	case store.CampaignStatusPaused:
		return EventCampaignPaused
	case store.CampaignStatusCompleted:
		return EventCampaignCompleted
	case store.CampaignStatusCancelled:
		return EventCampaignCancelled
	case store.CampaignStatusRunning:
		if fromStatus == store.CampaignStatusPaused {
			return EventCampaignResumed
		}
		return EventCampaignStarted
	default:
		return "campaign.status_changed"
	}
}

func (p *Publisher) publish(ctx context.Context, eventType string, campaign store.Campaign, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}

	campaignID := strconv.FormatInt(campaign.ID, 10)
	data["campaign_id"] = campaign.ID

	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		CustomerID: strconv.FormatInt(campaign.CustomerID, 10),
		CampaignID: &campaignID,
		Data:       data,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}
