package routes

import (
	"imobtech_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathProposals = "/proposals"
	PathPayments  = "/payments"
	PathCatalog   = "/catalog"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	proposalHandler *handlers.ProposalHandler,
	paymentHandler *handlers.PaymentHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.ComputeQuote)
		quotes.POST("/postpaid", quoteHandler.ComputePostPaid)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("/:proposal_id", proposalHandler.GetProposal)
		proposals.PATCH("/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/refuse", proposalHandler.RefuseProposal)
		proposals.PATCH("/cancel", proposalHandler.CancelProposal)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:proposal_id", paymentHandler.CreatePaymentByProposalID)
		payments.GET("/:proposal_id", paymentHandler.GetPaymentByProposalID)
	}

	rg.GET(PathCatalog, catalogHandler.GetCatalog)
}
