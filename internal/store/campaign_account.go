package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

const sqlGetCampaignAccountIDs = `
SELECT social_account_id
FROM campaign_accounts
WHERE campaign_id = $1
ORDER BY social_account_id
`

// GetCampaignAccountIDs retrieves the accounts reserved by a campaign
func (s *Store) GetCampaignAccountIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	var ids []int64
	err := s.db.SelectContext(ctx, &ids, sqlGetCampaignAccountIDs, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign account ids", err)
		return nil, fmt.Errorf("failed to get campaign account ids: %w", err)
	}
	return ids, nil
}

const sqlFindReservations = `
SELECT ca.campaign_id, ca.social_account_id, c.status
FROM campaign_accounts ca
JOIN campaigns c ON c.id = ca.campaign_id
WHERE ca.social_account_id = ANY($1)
  AND c.status = ANY($2)
  AND ($3::bigint IS NULL OR ca.campaign_id <> $3)
ORDER BY ca.social_account_id, ca.campaign_id
`

// FindReservations returns every (campaign, account) pairing for the given
// accounts under campaigns in one of the statuses, optionally excluding one campaign.
func (s *Store) FindReservations(ctx context.Context, accountIDs []int64, statuses []string, excludeCampaignID *int64) ([]Reservation, error) {
	if len(accountIDs) == 0 || len(statuses) == 0 {
		return nil, nil
	}

	var reservations []Reservation
	err := s.db.SelectContext(ctx, &reservations, sqlFindReservations,
		pq.Array(accountIDs),
		pq.Array(statuses),
		excludeCampaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to find reservations", err)
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	return reservations, nil
}
