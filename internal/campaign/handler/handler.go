package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"campaign-server/internal/apierrors"
	authHandler "campaign-server/internal/auth/handler"
	"campaign-server/internal/campaign/processor"
	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// CampaignProcessor is the orchestration surface exposed over HTTP
type CampaignProcessor interface {
	StartGroupShare(ctx context.Context, identity processor.Identity, params processor.StartParams) (processor.StartResult, error)
	PauseCampaign(ctx context.Context, identity processor.Identity, campaignID int64, lastProcessedIndex *int) error
	ResumeCampaign(ctx context.Context, identity processor.Identity, campaignID int64, lastProcessedIndex *int) error
	CompleteCampaign(ctx context.Context, identity processor.Identity, campaignID int64, lastProcessedIndex *int) error
	CancelCampaign(ctx context.Context, identity processor.Identity, campaignID int64, lastProcessedIndex *int) error
	GetProgress(ctx context.Context, identity processor.Identity, campaignID int64) (processor.Progress, error)
	ListResumable(ctx context.Context, identity processor.Identity) (processor.ResumableList, error)
}

type Handler struct {
	processor CampaignProcessor
	logger    *observability.Logger
}

func New(processor CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// StartGroupShareRequest represents the HTTP request for starting a group-share campaign
type StartGroupShareRequest struct {
	ExtractionID    int64   `json:"extraction_id" binding:"required,gt=0"`
	AccountIDs      []int64 `json:"account_ids" binding:"required,min=1,dive,gt=0"`
	Message         *string `json:"message,omitempty"`
	Link            *string `json:"link,omitempty" binding:"omitempty,url"`
	MinDelaySeconds *int    `json:"min_delay_seconds,omitempty" binding:"omitempty,gte=0"`
	MaxDelaySeconds *int    `json:"max_delay_seconds,omitempty" binding:"omitempty,gte=0"`
}

// TransitionRequest is the optional body of pause, resume, complete and cancel
type TransitionRequest struct {
	LastProcessedIndex *int `json:"last_processed_index,omitempty"`
}

type transitionFunc func(ctx context.Context, identity processor.Identity, campaignID int64, lastProcessedIndex *int) error

// HandleStartGroupShare starts a FB_GROUP_SHARE campaign
func (h *Handler) HandleStartGroupShare(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.getIdentity(c)
	if !ok {
		return
	}

	var req StartGroupShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.StartGroupShare(ctx, identity, processor.StartParams{
		ExtractionID: req.ExtractionID,
		AccountIDs:   req.AccountIDs,
		Params: processor.GroupShareParams{
			Message:         req.Message,
			Link:            req.Link,
			MinDelaySeconds: req.MinDelaySeconds,
			MaxDelaySeconds: req.MaxDelaySeconds,
		},
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	h.handleTransition(c, h.processor.PauseCampaign)
}

func (h *Handler) HandleResumeCampaign(c *gin.Context) {
	h.handleTransition(c, h.processor.ResumeCampaign)
}

func (h *Handler) HandleCompleteCampaign(c *gin.Context) {
	h.handleTransition(c, h.processor.CompleteCampaign)
}

func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	h.handleTransition(c, h.processor.CancelCampaign)
}

func (h *Handler) handleTransition(c *gin.Context, transition transitionFunc) {
	ctx := c.Request.Context()

	identity, ok := h.getIdentity(c)
	if !ok {
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := transition(ctx, identity, campaignID, req.LastProcessedIndex); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleGetProgress returns the cursor and size of a campaign's work list
func (h *Handler) HandleGetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.getIdentity(c)
	if !ok {
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	progress, err := h.processor.GetProgress(ctx, identity, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// HandleListResumable lists the active campaigns started by the caller's device
func (h *Handler) HandleListResumable(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := h.getIdentity(c)
	if !ok {
		return
	}

	list, err := h.processor.ListResumable(ctx, identity)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) getIdentity(c *gin.Context) (processor.Identity, bool) {
	customerID, ok := authHandler.CustomerID(c)
	if !ok {
		apierrors.RespondWithError(c, processor.ErrUnauthenticated)
		return processor.Identity{}, false
	}
	return processor.Identity{
		CustomerID: customerID,
		DeviceID:   authHandler.DeviceID(c),
	}, true
}

func (h *Handler) getCampaignID(c *gin.Context) (int64, bool) {
	campaignID, err := strconv.ParseInt(c.Param("campaign_id"), 10, 64)
	if err != nil || campaignID <= 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return 0, false
	}
	return campaignID, true
}
