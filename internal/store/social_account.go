package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

const sqlGetSocialAccountsByIDs = `
SELECT id, customer_id, username, status
FROM social_accounts
WHERE id = ANY($1)
ORDER BY id
`

// GetSocialAccountsByIDs retrieves the accounts that exist among ids
func (s *Store) GetSocialAccountsByIDs(ctx context.Context, ids []int64) ([]SocialAccount, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var accounts []SocialAccount
	err := s.db.SelectContext(ctx, &accounts, sqlGetSocialAccountsByIDs, pq.Array(ids))
	if err != nil {
		s.logger.Error(ctx, "failed to get social accounts by ids", err)
		return nil, fmt.Errorf("failed to get social accounts by ids: %w", err)
	}
	return accounts, nil
}
