package conflict

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"fmt"
	"sort"
)

// ReservationStore is the read side of the campaign repository used for conflict detection
type ReservationStore interface {
	FindReservations(ctx context.Context, accountIDs []int64, statuses []string, excludeCampaignID *int64) ([]store.Reservation, error)
}

// Query selects reservations on a set of accounts held by campaigns in Statuses.
// Empty Statuses means the active statuses (RUNNING, PAUSED).
type Query struct {
	AccountIDs        []int64
	Statuses          []string
	ExcludeCampaignID *int64
}

type Detector struct {
	store  ReservationStore
	logger *observability.Logger
}

func New(store ReservationStore, logger *observability.Logger) Detector {
	return Detector{
		store:  store,
		logger: logger,
	}
}

// Find returns every (campaign, account) pairing matching the query
func (d Detector) Find(ctx context.Context, q Query) ([]store.Reservation, error) {
	accountIDs := Distinct(q.AccountIDs)
	if len(accountIDs) == 0 {
		return nil, nil
	}

	statuses := q.Statuses
	if len(statuses) == 0 {
		statuses = store.ActiveCampaignStatuses
	}

	reservations, err := d.store.FindReservations(ctx, accountIDs, statuses, q.ExcludeCampaignID)
	if err != nil {
		d.logger.Error(ctx, "failed to find account reservations", err)
		return nil, fmt.Errorf("failed to find account reservations: %w", err)
	}
	return reservations, nil
}

// FindActive returns the active reservations on accounts, excluding one campaign when set
func (d Detector) FindActive(ctx context.Context, accountIDs []int64, excludeCampaignID *int64) ([]store.Reservation, error) {
	return d.Find(ctx, Query{
		AccountIDs:        accountIDs,
		Statuses:          store.ActiveCampaignStatuses,
		ExcludeCampaignID: excludeCampaignID,
	})
}

// AccountIDs returns the sorted, distinct account ids of reservations
func AccountIDs(reservations []store.Reservation) []int64 {
	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.SocialAccountID)
	}
	return Distinct(ids)
}

// Distinct returns ids sorted ascending without duplicates
func Distinct(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
