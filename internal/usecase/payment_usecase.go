package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"imobtech_xpto/internal/domain/entities"
	"imobtech_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentProposalID   = errors.New("invalid proposal_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrProposalNotAccepted        = errors.New("proposal not accepted")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates charging a proposal's implementation fee.
//
// The amount always comes from the stored proposal snapshot; the caller
// payload only carries payment method and payer data.

type IPaymentUseCase interface {
	CreateForProposal(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.ProposalPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProposalPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	proposalRepo interfaces.IProposalRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, proposalRepo interfaces.IProposalRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, proposalRepo: proposalRepo, gateway: gateway}
}

func (u *PaymentUseCase) CreateForProposal(ctx context.Context, proposalID string, mpPayload json.RawMessage) (entities.ProposalPayment, error) {
	log.Printf("[payment][usecase] create start raw_proposal_id=%q payload_len=%d", proposalID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.ProposalPayment{}, ErrInvalidPaymentProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload proposal_id=%s", proposalID)
			return entities.ProposalPayment{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		return entities.ProposalPayment{}, errors.New("payment gateway not configured")
	}
	if u.proposalRepo == nil {
		return entities.ProposalPayment{}, errors.New("proposal repository not configured")
	}

	prop, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading proposal proposal_id=%s err=%v", proposalID, err)
		return entities.ProposalPayment{}, err
	}
	if prop.ID == "" {
		return entities.ProposalPayment{}, ErrProposalNotFound
	}
	if !mockMode && prop.Status != entities.ProposalStatusAceita {
		log.Printf("[payment][usecase] proposal not accepted proposal_id=%s status=%s", proposalID, prop.Status)
		return entities.ProposalPayment{}, ErrProposalNotAccepted
	}

	// Basic linkage with the proposal when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events. The
	// charged amount is always the stored implementation fee.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.ProposalPayment{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = proposalID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Implantação proposta %s", proposalID)
		}
		reqMap["transaction_amount"] = prop.TotalImplementation
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external gateway proposal_id=%s", proposalID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = prop.TotalImplementation
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.ProposalPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed proposal_id=%s err=%v", proposalID, err)
			if isGatewayUnauthorized(err) {
				return entities.ProposalPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.ProposalPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.ProposalPayment{}, err
		}
	}
	log.Printf("[payment][usecase] gateway success proposal_id=%s provider_payment_id=%s provider_status=%s", proposalID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed proposal_id=%s err=%v", proposalID, err)
	}

	p := entities.ProposalPayment{
		ID:           providerPaymentID,
		ProposalID:   proposalID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed proposal_id=%s payment_id=%s err=%v", proposalID, p.ID, err)
		return entities.ProposalPayment{}, err
	}
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProposalPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProposalPayment{}, err
	}
	if p.ID == "" {
		return entities.ProposalPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidPaymentProposalID
	}
	return u.repo.ListByProposalID(ctx, proposalID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
