package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Close() error

	// Campaign operations
	CreateGroupShareCampaign(ctx context.Context, params CreateGroupShareCampaignParams) (Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID int64) (Campaign, error)
	GetCampaignsByDeviceAndType(ctx context.Context, deviceID, typeCode string, statuses []string) ([]Campaign, error)
	GetCustomerCampaignsByDevice(ctx context.Context, customerID int64, deviceID string, statuses []string) ([]Campaign, error)
	TransitionCampaign(ctx context.Context, params TransitionCampaignParams) (TransitionResult, error)

	// Campaign account (reservation) operations
	GetCampaignAccountIDs(ctx context.Context, campaignID int64) ([]int64, error)
	FindReservations(ctx context.Context, accountIDs []int64, statuses []string, excludeCampaignID *int64) ([]Reservation, error)

	// Group share config operations
	GetGroupShareConfig(ctx context.Context, campaignID int64) (GroupShareConfig, error)

	// Read-only views of external data
	GetGroupExtractionByID(ctx context.Context, extractionID int64) (GroupExtraction, error)
	GetSocialAccountsByIDs(ctx context.Context, ids []int64) ([]SocialAccount, error)
}

var _ Storer = (*Store)(nil)
