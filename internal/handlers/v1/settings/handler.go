package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/config"
)

type SettingsOutput struct {
	Body config.Settings
}

// Handler serves the read-only app settings.
type Handler struct {
	Settings config.Settings
}

func NewHandler(settings config.Settings) *Handler {
	return &Handler{Settings: settings}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: h.Settings}, nil
}
