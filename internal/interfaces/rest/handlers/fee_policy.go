package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/bigspay/pg-backoffice/internal/interfaces/rest"
)

// HandleEffectivePolicy exposes the point-in-time policy lookup for ops
// tooling. An optional "at" parameter resolves against a past (or future)
// instant; otherwise the service clock is used.
func (h *Handlers) HandleEffectivePolicy(w http.ResponseWriter, r *http.Request) {
	partnerID, err := strconv.ParseInt(r.PathValue("partnerID"), 10, 64)
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PARAMETER",
			Message: "partnerID must be an integer",
		})
		return
	}

	var policy *domain.FeePolicy
	if raw := r.URL.Query().Get("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
				Code:    "INVALID_PARAMETER",
				Message: "at must be an RFC3339 timestamp",
			})
			return
		}
		p, err := h.policyService.EffectivePolicyAt(r.Context(), partnerID, at)
		if err != nil {
			rest.RespondWithError(w, err)
			return
		}
		policy = p
	} else {
		p, err := h.policyService.EffectivePolicy(r.Context(), partnerID)
		if err != nil {
			rest.RespondWithError(w, err)
			return
		}
		policy = p
	}

	if policy == nil {
		rest.RespondWithJSON(w, http.StatusNotFound, &rest.APIError{
			Code:    "NO_FEE_POLICY",
			Message: "no fee policy effective at the requested instant",
		})
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, rest.ToFeePolicyDTO(policy))
}
