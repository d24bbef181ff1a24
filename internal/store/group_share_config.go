package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlGetGroupShareConfig = `
SELECT campaign_id, extraction_id, message, link, min_delay_seconds, max_delay_seconds, last_processed_index
FROM fb_group_share_campaigns
WHERE campaign_id = $1
`

// GetGroupShareConfig retrieves the FB_GROUP_SHARE config row of a campaign
func (s *Store) GetGroupShareConfig(ctx context.Context, campaignID int64) (GroupShareConfig, error) {
	var config GroupShareConfig
	err := s.db.GetContext(ctx, &config, sqlGetGroupShareConfig, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GroupShareConfig{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get group share config", err)
		return GroupShareConfig{}, fmt.Errorf("failed to get group share config: %w", err)
	}
	return config, nil
}
