package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application/services"
	"github.com/bigspay/pg-backoffice/internal/interfaces/rest"
)

// HandleListPayments serves the paginated payment history plus the summary
// over the full filtered set. Status and cursor are untrusted free text and
// degrade to "no filter" / "first page" inside the query engine; only the
// partner id and blatantly broken date parameters are client errors here.
func (h *Handlers) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	partnerID, err := strconv.ParseInt(r.PathValue("partnerID"), 10, 64)
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PARAMETER",
			Message: "partnerID must be an integer",
		})
		return
	}

	filter := services.QueryFilter{
		PartnerID: partnerID,
		Limit:     h.pageSize(r.URL.Query().Get("limit")),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = &s
	}
	if c := r.URL.Query().Get("cursor"); c != "" {
		filter.Cursor = &c
	}

	var ok bool
	if filter.From, ok = parseTimeParam(w, r.URL.Query().Get("from"), "from"); !ok {
		return
	}
	if filter.To, ok = parseTimeParam(w, r.URL.Query().Get("to"), "to"); !ok {
		return
	}

	result, err := h.queryService.Query(r.Context(), filter)
	if err != nil {
		h.logger.Error("payment history query failed", "partner_id", partnerID, "error", err)
		rest.RespondWithError(w, err)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, rest.QueryResponseDTO{
		Items:      rest.ToPaymentDTOs(result.Items),
		Summary:    rest.ToSummaryDTO(result.Summary),
		NextCursor: result.NextCursor,
		HasNext:    result.HasNext,
	})
}

func (h *Handlers) HandleFindByApproval(w http.ResponseWriter, r *http.Request) {
	partnerID, err := strconv.ParseInt(r.PathValue("partnerID"), 10, 64)
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PARAMETER",
			Message: "partnerID must be an integer",
		})
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "MISSING_PARAMETER",
			Message: "code is required",
		})
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PARAMETER",
			Message: "date must be YYYY-MM-DD",
		})
		return
	}

	payment, err := h.queryService.FindByApproval(r.Context(), partnerID, code, date)
	if err != nil {
		rest.RespondWithError(w, err)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, rest.ToPaymentDTO(*payment))
}

// pageSize clamps the requested limit to the configured bounds. The query
// engine itself passes the limit through untouched; bounding happens here
// at the API boundary.
func (h *Handlers) pageSize(raw string) int {
	limit := h.queryCfg.DefaultPageSize
	if raw != "" {
		if l, err := strconv.Atoi(raw); err == nil {
			limit = l
		}
	}
	if limit < 1 {
		limit = h.queryCfg.DefaultPageSize
	}
	if limit > h.queryCfg.MaxPageSize {
		limit = h.queryCfg.MaxPageSize
	}
	return limit
}

func parseTimeParam(w http.ResponseWriter, raw, name string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PARAMETER",
			Message: name + " must be an RFC3339 timestamp",
		})
		return nil, false
	}
	t = t.UTC()
	return &t, true
}
