package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/domain/entities"
	"imobtech_xpto/internal/domain/pricing"
	mock_interfaces "imobtech_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProposalUseCase_Generate(t *testing.T) {
	ident := pricing.Identification{ClientName: "Imobiliária Central", SellerName: "Maria"}

	t.Run("assembles and persists a snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)
		uc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" {
					t.Error("proposal id must be generated")
				}
				if p.Status != entities.ProposalStatusEnviada {
					t.Errorf("status = %q, want enviada", p.Status)
				}
				if p.ClientName != "Imobiliária Central" {
					t.Errorf("client name = %q", p.ClientName)
				}
				if len(p.Data) == 0 {
					t.Error("snapshot data must be stored")
				}
				return p, nil
			})

		created, err := uc.Generate(context.Background(), ident, validQuoteConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TotalImplementation != 1497 {
			t.Errorf("total implementation = %v, want 1497", created.TotalImplementation)
		}
	})

	t.Run("requires a client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		_, err := uc.Generate(context.Background(), pricing.Identification{ClientName: "   "}, validQuoteConfig())
		if !errors.Is(err, ErrMissingClientName) {
			t.Fatalf("expected ErrMissingClientName, got %v", err)
		}
	})

	t.Run("rejects invalid configurations before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		cfg := validQuoteConfig()
		cfg.PlanImob = "mega"
		_, err := uc.Generate(context.Background(), ident, cfg)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		repoErr := errors.New("dynamodb unavailable")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, repoErr)

		_, err := uc.Generate(context.Background(), ident, validQuoteConfig())
		if !errors.Is(err, repoErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}

func TestProposalUseCase_StatusTransitions(t *testing.T) {
	tests := []struct {
		name   string
		call   func(uc *ProposalUseCase, ctx context.Context, id string) (entities.Proposal, error)
		status entities.ProposalStatus
	}{
		{"accept", (*ProposalUseCase).AcceptByID, entities.ProposalStatusAceita},
		{"refuse", (*ProposalUseCase).RefuseByID, entities.ProposalStatusRecusada},
		{"cancel", (*ProposalUseCase).CancelByID, entities.ProposalStatusCancelada},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIProposalRepository(ctrl)
			uc := NewProposalUseCase(catalog.Default(), repo)

			repo.EXPECT().
				UpdateStatusByID(gomock.Any(), "prop-1", tt.status).
				Return(entities.Proposal{ID: "prop-1", Status: tt.status}, nil)

			updated, err := tt.call(uc, context.Background(), "prop-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Status != tt.status {
				t.Errorf("status = %q, want %q", updated.Status, tt.status)
			}
		})
	}

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		_, err := uc.AcceptByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("missing proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		repo.EXPECT().
			UpdateStatusByID(gomock.Any(), "ghost", entities.ProposalStatusAceita).
			Return(entities.Proposal{}, nil)

		_, err := uc.AcceptByID(context.Background(), "ghost")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		repo.EXPECT().
			GetByID(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusEnviada}, nil)

		p, err := uc.GetByID(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "prop-1" {
			t.Errorf("id = %q", p.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(catalog.Default(), repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Proposal{}, nil)

		_, err := uc.GetByID(context.Background(), "ghost")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}
