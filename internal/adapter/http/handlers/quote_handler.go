package handlers

import (
	"errors"
	"net/http"

	request "imobtech_xpto/internal/adapter/http/dto/request"
	response "imobtech_xpto/internal/adapter/http/dto/response"
	"imobtech_xpto/internal/domain/pricing"
	"imobtech_xpto/internal/usecase"
	"imobtech_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles the calculator endpoints consumed by the sales UI.
// Nothing here persists; every call is a pure recomputation.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuote returns the full quote for a configuration: line items,
// post-paid breakdown, comparison tables and totals.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	cfg, ok := bindQuoteConfig(c)
	if !ok {
		return
	}

	data, err := h.usecase.ComputeQuote(cfg)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(data))
}

// ComputePostPaid returns only the variable-cost breakdown (the summary view).
func (h *QuoteHandler) ComputePostPaid(c *gin.Context) {
	cfg, ok := bindQuoteConfig(c)
	if !ok {
		return
	}

	breakdown, err := h.usecase.ComputePostPaid(cfg)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPostPaid(breakdown))
}

func bindQuoteConfig(c *gin.Context) (pricing.Config, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return pricing.Config{}, false
	}
	cfg, err := payload.ToConfig()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return pricing.Config{}, false
	}
	return cfg, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfiguration):
		return pkg.NewDomainError("INVALID_CONFIGURATION", "Configuration does not match the pricing catalog", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
