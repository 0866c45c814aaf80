package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application/services"
	"github.com/bigspay/pg-backoffice/internal/config"
	"github.com/bigspay/pg-backoffice/internal/domain"
)

type QueryService interface {
	Query(ctx context.Context, filter services.QueryFilter) (*services.QueryResult, error)
	FindByApproval(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, cmd services.CheckoutCommand) (*domain.Payment, error)
}

type FeePolicyService interface {
	EffectivePolicy(ctx context.Context, partnerID int64) (*domain.FeePolicy, error)
	EffectivePolicyAt(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error)
}

type Handlers struct {
	queryService    QueryService
	checkoutService CheckoutService
	policyService   FeePolicyService
	queryCfg        config.QueryConfig
	logger          *slog.Logger
}

func NewHandlers(
	queryService QueryService,
	checkoutService CheckoutService,
	policyService FeePolicyService,
	queryCfg config.QueryConfig,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		queryService:    queryService,
		checkoutService: checkoutService,
		policyService:   policyService,
		queryCfg:        queryCfg,
		logger:          logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/partners/{partnerID}/payments", h.HandleListPayments)
	mux.HandleFunc("GET /api/v1/partners/{partnerID}/payments/approval", h.HandleFindByApproval)
	mux.HandleFunc("GET /api/v1/partners/{partnerID}/fee-policy", h.HandleEffectivePolicy)
	mux.HandleFunc("POST /api/v1/payments", h.HandleCheckout)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
