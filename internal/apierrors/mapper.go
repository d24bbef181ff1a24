package apierrors

import (
	"errors"

	campaignProcessor "campaign-server/internal/campaign/processor"
)

// AccountConflictDetails is the body detail of an ACCOUNTS_RESERVED response
type AccountConflictDetails struct {
	Accounts []campaignProcessor.ConflictingAccount `json:"accounts"`
}

// MapError converts processor errors to APIErrors.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var conflictErr *campaignProcessor.AccountConflictError
	if errors.As(err, &conflictErr) {
		mapped := Conflict(CodeAccountsReserved, "Some accounts are already used by another active campaign")
		mapped.Details = AccountConflictDetails{Accounts: conflictErr.Accounts}
		return mapped
	}

	switch {
	case errors.Is(err, campaignProcessor.ErrInvalidRequest):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, campaignProcessor.ErrNoUsableAccounts):
		return BadRequest(CodeNoUsableAccounts, "None of the requested accounts can be used")

	case errors.Is(err, campaignProcessor.ErrDeviceRequired):
		return BadRequest(CodeDeviceRequired, "A device id is required")

	case errors.Is(err, campaignProcessor.ErrUnauthenticated):
		return Unauthorized("Authentication required")

	case errors.Is(err, campaignProcessor.ErrForbidden):
		return Forbidden("You do not have access to this resource")

	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrCampaignConfigNotFound):
		return NotFound(CodeCampaignConfigNotFound, "Campaign configuration not found")

	case errors.Is(err, campaignProcessor.ErrExtractionNotFound):
		return NotFound(CodeExtractionNotFound, "Extraction not found")

	case errors.Is(err, campaignProcessor.ErrDeviceCampaignActive):
		return Conflict(CodeDeviceCampaignActive, "This device already has an active group share campaign")

	case errors.Is(err, campaignProcessor.ErrAccountsReserved):
		return Conflict(CodeAccountsReserved, "Some accounts are already used by another active campaign")

	case errors.Is(err, campaignProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "Campaign cannot move to the requested status")

	case errors.Is(err, campaignProcessor.ErrConcurrentModification):
		return Conflict(CodeConcurrentModification, "Campaign was modified concurrently, reload and retry")

	case errors.Is(err, campaignProcessor.ErrStartInProgress):
		return Conflict(CodeStartInProgress, "Another campaign start is in progress")

	default:
		return InternalError(err)
	}
}
