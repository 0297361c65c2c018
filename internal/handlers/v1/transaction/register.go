package transaction

import "github.com/danielgtaylor/huma/v2"

// Register registers every transaction endpoint.
func Register(api huma.API, svc transactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewSearchTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
}
