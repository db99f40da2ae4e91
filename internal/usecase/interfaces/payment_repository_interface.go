package interfaces

import (
	"context"

	"imobtech_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for ProposalPayment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProposalPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error)
}
