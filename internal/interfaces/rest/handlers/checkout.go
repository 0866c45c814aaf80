package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bigspay/pg-backoffice/internal/application/services"
	"github.com/bigspay/pg-backoffice/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	PartnerID int64           `json:"partnerId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CardBin   *string         `json:"cardBin,omitempty"`
	CardLast4 *string         `json:"cardLast4,omitempty"`
}

func (h *Handlers) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_BODY",
			Message: "request body must be valid JSON",
		})
		return
	}

	payment, err := h.checkoutService.Checkout(r.Context(), services.CheckoutCommand{
		PartnerID: req.PartnerID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		CardBin:   req.CardBin,
		CardLast4: req.CardLast4,
	})
	if err != nil {
		h.logger.Error("checkout failed", "partner_id", req.PartnerID, "error", err)
		rest.RespondWithError(w, err)
		return
	}

	rest.RespondWithJSON(w, http.StatusCreated, rest.ToPaymentDTO(*payment))
}
