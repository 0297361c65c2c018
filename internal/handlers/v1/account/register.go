package account

import "github.com/danielgtaylor/huma/v2"

// Register registers every account endpoint.
func Register(api huma.API, svc accountService) {
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	NewAuditAccountHandler(svc).Register(api)
	NewRepairBalanceHandler(svc).Register(api)
}
