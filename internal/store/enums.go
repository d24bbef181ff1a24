package store

// Campaign status ENUMs
const (
	CampaignStatusRunning   = "RUNNING"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusCancelled = "CANCELLED"
)

// ActiveCampaignStatuses are the statuses during which reservations are in force.
var ActiveCampaignStatuses = []string{CampaignStatusRunning, CampaignStatusPaused}

// Campaign type codes
const (
	CampaignTypeFacebookGroupShare = "FB_GROUP_SHARE"
)

// Social account ENUMs
const (
	SocialAccountStatusActive    = "active"
	SocialAccountStatusInactive  = "inactive"
	SocialAccountStatusBlocked   = "blocked"
	SocialAccountStatusDeleted   = "deleted"
	SocialAccountStatusSuspended = "suspended"
)

// IsTerminalCampaignStatus reports whether no transition may leave the status.
func IsTerminalCampaignStatus(status string) bool {
	return status == CampaignStatusCompleted || status == CampaignStatusCancelled
}
