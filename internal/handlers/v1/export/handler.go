package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

type exportService interface {
	WriteCSV(ctx context.Context, w io.Writer, filter service.ExportFilter) (int, error)
}

type ExportInput struct {
	Start string `query:"start" doc:"Inclusive start date, YYYY-MM-DD"`
	End   string `query:"end" doc:"Inclusive end date, YYYY-MM-DD"`
}

type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	RowCount           string `header:"X-Row-Count"`
	Body               []byte
}

// Handler serves GET /v1/export.
type Handler struct {
	ExportService exportService
	now           func() time.Time
}

func NewHandler(svc exportService) *Handler {
	return &Handler{ExportService: svc, now: time.Now}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/export",
		Summary:     "Export transactions as CSV",
		Description: "Returns every transaction in the range, newest first, as a CSV attachment.",
		Tags:        []string{"Export"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "CSV file",
				Content:     map[string]*huma.MediaType{"text/csv": {}},
			},
		},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportMs")
	}
	var buf bytes.Buffer
	rows, err := h.ExportService.WriteCSV(ctx, &buf, service.ExportFilter{Start: input.Start, End: input.End})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to export transactions", err)
	}

	if logData != nil {
		logData.AddData("rowCount", rows)
	}

	return &ExportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", service.ExportFileName(h.now())),
		RowCount:           strconv.Itoa(rows),
		Body:               buf.Bytes(),
	}, nil
}
