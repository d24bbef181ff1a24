package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlGetGroupExtractionByID = `
SELECT id, customer_id, groups_count, created_at
FROM group_extractions
WHERE id = $1
`

// GetGroupExtractionByID retrieves an extraction header. Extractions are never written here.
func (s *Store) GetGroupExtractionByID(ctx context.Context, extractionID int64) (GroupExtraction, error) {
	var extraction GroupExtraction
	err := s.db.GetContext(ctx, &extraction, sqlGetGroupExtractionByID, extractionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GroupExtraction{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get group extraction by id", err)
		return GroupExtraction{}, fmt.Errorf("failed to get group extraction by id: %w", err)
	}
	return extraction, nil
}
