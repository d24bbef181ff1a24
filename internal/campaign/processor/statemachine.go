package processor

import "campaign-server/internal/store"

// allowedTransitions lists the target statuses reachable from each non-terminal status.
// PAUSED -> PAUSED is accepted so that a retried pause from the device succeeds.
var allowedTransitions = map[string]map[string]bool{
	store.CampaignStatusRunning: {
		store.CampaignStatusPaused:    true,
		store.CampaignStatusCompleted: true,
		store.CampaignStatusCancelled: true,
	},
	store.CampaignStatusPaused: {
		store.CampaignStatusRunning:   true,
		store.CampaignStatusPaused:    true,
		store.CampaignStatusCompleted: true,
		store.CampaignStatusCancelled: true,
	},
}

// CanTransition reports whether a campaign in from may move to to
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// IsValidStatus reports whether status belongs to the campaign status domain
func IsValidStatus(status string) bool {
	switch status {
	case store.CampaignStatusRunning, store.CampaignStatusPaused, store.CampaignStatusCompleted, store.CampaignStatusCancelled:
		return true
	}
	return false
}
