package interfaces

import (
	"context"

	"imobtech_xpto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// The pricing-service must be able to:
//   - create a write-once proposal snapshot when the salesperson exports it
//   - move a proposal through its status lifecycle (accept/refuse/cancel)
//   - fetch a snapshot for rendering or payment

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
