package store

import "time"

type Campaign struct {
	ID               int64     `db:"id"`
	CampaignTypeCode string    `db:"campaign_type_code"`
	CustomerID       int64     `db:"customer_id"`
	DeviceID         *string   `db:"device_id"`
	Status           string    `db:"status"`
	StartedAt        time.Time `db:"started_at"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// CampaignAccount reserves a social account for a campaign while it is active
type CampaignAccount struct {
	CampaignID      int64     `db:"campaign_id"`
	SocialAccountID int64     `db:"social_account_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// GroupShareConfig is the FB_GROUP_SHARE specific configuration and cursor
type GroupShareConfig struct {
	CampaignID         int64   `db:"campaign_id"`
	ExtractionID       int64   `db:"extraction_id"`
	Message            *string `db:"message"`
	Link               *string `db:"link"`
	MinDelaySeconds    *int    `db:"min_delay_seconds"`
	MaxDelaySeconds    *int    `db:"max_delay_seconds"`
	LastProcessedIndex int     `db:"last_processed_index"`
}

type GroupExtraction struct {
	ID          int64     `db:"id"`
	CustomerID  int64     `db:"customer_id"`
	GroupsCount int       `db:"groups_count"`
	CreatedAt   time.Time `db:"created_at"`
}

type SocialAccount struct {
	ID         int64  `db:"id"`
	CustomerID int64  `db:"customer_id"`
	Username   string `db:"username"`
	Status     string `db:"status"`
}

// Reservation is a (campaign, account) pairing under a campaign in a given status
type Reservation struct {
	CampaignID      int64  `db:"campaign_id"`
	SocialAccountID int64  `db:"social_account_id"`
	Status          string `db:"status"`
}
