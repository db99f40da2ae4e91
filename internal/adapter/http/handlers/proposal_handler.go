package handlers

import (
	"context"
	"errors"
	"net/http"

	request "imobtech_xpto/internal/adapter/http/dto/request"
	response "imobtech_xpto/internal/adapter/http/dto/response"
	"imobtech_xpto/internal/domain/entities"
	"imobtech_xpto/internal/usecase"
	"imobtech_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles proposal snapshots and their status lifecycle.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal assembles the quote and persists it as a write-once snapshot.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	cfg, err := payload.ToConfig()
	if err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Generate(c.Request.Context(), payload.ToIdentification(), cfg)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// GetProposal fetches a persisted snapshot by id.
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	h.patchProposalStatusByRequest(c, h.usecase.AcceptByID)
}

func (h *ProposalHandler) RefuseProposal(c *gin.Context) {
	h.patchProposalStatusByRequest(c, h.usecase.RefuseByID)
}

func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	h.patchProposalStatusByRequest(c, h.usecase.CancelByID)
}

func (h *ProposalHandler) patchProposalStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	var payload request.ProposalActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	id := payload.ResolveProposalID()
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	proposal, err := updater(c.Request.Context(), id)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConfiguration):
		return pkg.NewDomainError("INVALID_CONFIGURATION", "Configuration does not match the pricing catalog", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
