package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
)

// BalanceAuditOutput wraps an audit result.
type BalanceAuditOutput struct {
	Body BalanceAudit
}

// AuditAccountHandler handles GET /v1/accounts/{id}/audit.
type AuditAccountHandler struct {
	AccountService accountService
}

func NewAuditAccountHandler(svc accountService) *AuditAccountHandler {
	return &AuditAccountHandler{AccountService: svc}
}

func (h *AuditAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "audit-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/audit",
		Summary:     "Audit an account balance",
		Description: "Compares the stored balance with the starting balance plus all of the account's transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *AuditAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*BalanceAuditOutput, error) {
	audit, err := h.AccountService.AuditAccount(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to audit account", err)
	}
	return &BalanceAuditOutput{Body: fromAudit(audit)}, nil
}

// RepairBalanceHandler handles POST /v1/accounts/{id}/repair.
type RepairBalanceHandler struct {
	AccountService accountService
}

func NewRepairBalanceHandler(svc accountService) *RepairBalanceHandler {
	return &RepairBalanceHandler{AccountService: svc}
}

func (h *RepairBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "repair-account-balance",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{id}/repair",
		Summary:     "Repair an account balance",
		Description: "Overwrites the stored balance with the one implied by the ledger. The response shows the balance before and after.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *RepairBalanceHandler) handle(ctx context.Context, input *AccountIDInput) (*BalanceAuditOutput, error) {
	audit, err := h.AccountService.RepairBalance(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to repair balance", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("repairedDrift", audit.Drift.String())
	}
	return &BalanceAuditOutput{Body: fromAudit(audit)}, nil
}
