package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"imobtech_xpto/internal/adapter/http/handlers/mocks"
	"imobtech_xpto/internal/domain/entities"
	"imobtech_xpto/internal/domain/pricing"
	"imobtech_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const proposalBody = `{
	"product": "loc",
	"plan_loc": "k",
	"frequency": "annual",
	"addons": ["pay", "assinatura"],
	"client_name": "Imobiliária Central",
	"seller_name": "Maria",
	"metrics": {"contracts_managed": 300}
}`

func newProposalRouter(uc usecase.IProposalUseCase) *gin.Engine {
	h := NewProposalHandler(uc)
	router := gin.New()
	router.POST("/v1/proposals", h.CreateProposal)
	router.GET("/v1/proposals/:proposal_id", h.GetProposal)
	router.PATCH("/v1/proposals/accept", h.AcceptProposal)
	router.PATCH("/v1/proposals/refuse", h.RefuseProposal)
	router.PATCH("/v1/proposals/cancel", h.CancelProposal)
	return router
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, ident pricing.Identification, cfg pricing.Config) (entities.Proposal, error) {
				if ident.ClientName != "Imobiliária Central" {
					t.Errorf("client name = %q", ident.ClientName)
				}
				if cfg.Metrics.ContractsManaged != 300 {
					t.Errorf("contracts managed = %d", cfg.Metrics.ContractsManaged)
				}
				return entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusEnviada, ClientName: ident.ClientName}, nil
			})

		w := performRequest(router, http.MethodPost, "/v1/proposals", proposalBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			ProposalID string `json:"proposal_id"`
			Status     string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ProposalID != "prop-1" || resp.Status != "enviada" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("missing client name is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		w := performRequest(router, http.MethodPost, "/v1/proposals",
			`{"product":"imob","plan_imob":"k","frequency":"annual"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("invalid configuration is a 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrInvalidConfiguration)

		w := performRequest(router, http.MethodPost, "/v1/proposals", proposalBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", w.Code)
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			GetByID(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusEnviada}, nil)

		w := performRequest(router, http.MethodGet, "/v1/proposals/prop-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			GetByID(gomock.Any(), "ghost").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := performRequest(router, http.MethodGet, "/v1/proposals/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestProposalHandler_StatusActions(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			AcceptByID(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAceita}, nil)

		w := performRequest(router, http.MethodPatch, "/v1/proposals/accept", `{"proposal_id":"prop-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Status != "aceita" {
			t.Errorf("status = %q, want aceita", resp.Status)
		}
	})

	t.Run("refuse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			RefuseByID(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusRecusada}, nil)

		w := performRequest(router, http.MethodPatch, "/v1/proposals/refuse", `{"proposal_id":"prop-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			CancelByID(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusCancelada}, nil)

		w := performRequest(router, http.MethodPatch, "/v1/proposals/cancel", `{"proposal_id":"prop-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("missing proposal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		w := performRequest(router, http.MethodPatch, "/v1/proposals/accept", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		router := newProposalRouter(uc)

		uc.EXPECT().
			AcceptByID(gomock.Any(), "ghost").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := performRequest(router, http.MethodPatch, "/v1/proposals/accept", `{"proposal_id":"ghost"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
