package processor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// InvalidRequest
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNoUsableAccounts = errors.New("none of the requested accounts belong to the customer")
	ErrDeviceRequired   = errors.New("a registered device is required")

	// Unauthenticated
	ErrUnauthenticated = errors.New("customer could not be resolved")

	// Forbidden
	ErrForbidden = errors.New("resource does not belong to the customer")

	// NotFound
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignConfigNotFound = errors.New("campaign configuration not found")
	ErrExtractionNotFound     = errors.New("extraction not found")

	// Conflict
	ErrDeviceCampaignActive   = errors.New("device already has an active campaign of this type")
	ErrAccountsReserved       = errors.New("accounts already reserved by an active campaign")
	ErrInvalidTransition      = errors.New("invalid campaign status transition")
	ErrConcurrentModification = errors.New("campaign was modified concurrently")
	ErrStartInProgress        = errors.New("another campaign start is in progress for this customer")
)

// ConflictingAccount identifies an account held by another active campaign
type ConflictingAccount struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
}

// AccountConflictError names the contended accounts of a rejected start
type AccountConflictError struct {
	Accounts []ConflictingAccount
}

func (e *AccountConflictError) Error() string {
	names := make([]string, len(e.Accounts))
	for i, a := range e.Accounts {
		names[i] = fmt.Sprintf("%s (%d)", a.Username, a.AccountID)
	}
	return fmt.Sprintf("%s: %s", ErrAccountsReserved.Error(), strings.Join(names, ", "))
}

func (e *AccountConflictError) Unwrap() error {
	return ErrAccountsReserved
}

// AccountIDs returns the contended account ids in order
func (e *AccountConflictError) AccountIDs() []int64 {
	ids := make([]int64, len(e.Accounts))
	for i, a := range e.Accounts {
		ids[i] = a.AccountID
	}
	return ids
}
