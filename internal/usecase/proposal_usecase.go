package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/domain/entities"
	"imobtech_xpto/internal/domain/pricing"
	"imobtech_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrMissingClientName = errors.New("missing client name")
)

// IProposalUseCase exposes proposal operations.
//
// Generating a proposal assembles the full pricing snapshot and persists it
// write-once; afterwards only the status moves (accept/refuse/cancel).

type IProposalUseCase interface {
	Generate(ctx context.Context, ident pricing.Identification, cfg pricing.Config) (entities.Proposal, error)
	AcceptByID(ctx context.Context, id string) (entities.Proposal, error)
	RefuseByID(ctx context.Context, id string) (entities.Proposal, error)
	CancelByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	catalog *catalog.Catalog
	repo    interfaces.IProposalRepository
	now     func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(cat *catalog.Catalog, repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{catalog: cat, repo: repo, now: time.Now}
}

func (u *ProposalUseCase) Generate(ctx context.Context, ident pricing.Identification, cfg pricing.Config) (entities.Proposal, error) {
	ident.ClientName = strings.TrimSpace(ident.ClientName)
	ident.SellerName = strings.TrimSpace(ident.SellerName)
	if ident.ClientName == "" {
		return entities.Proposal{}, ErrMissingClientName
	}

	now := u.now().UTC()
	data, err := pricing.AssembleProposal(u.catalog, cfg, ident, now)
	if err != nil {
		return entities.Proposal{}, wrapConfigError(err)
	}

	p, err := entities.NewProposal(uuid.NewString(), data, now)
	if err != nil {
		return entities.Proposal{}, err
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) AcceptByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusAceita)
}

func (u *ProposalUseCase) RefuseByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusRecusada)
}

func (u *ProposalUseCase) CancelByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusCancelada)
}

func (u *ProposalUseCase) updateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}
