package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware attaches a LogData and a request id to every Huma operation and
// writes one log line when the operation finishes.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)

		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}
		ctx.SetHeader(RequestIDHeader, requestID)

		name := "unknown"
		if op := ctx.Operation(); op != nil {
			name = op.OperationID
		}
		logData.AddData("requestID", requestID)
		logData.AddData("operation", name)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		entry := logData.Log()
		switch {
		case status >= http.StatusInternalServerError:
			entry.Errorf("Handler.%v.Error", name)
		case status >= http.StatusBadRequest:
			entry.Warnf("Handler.%v.Rejected", name)
		default:
			entry.Infof("Handler.%v.Complete", name)
		}
	}
}
