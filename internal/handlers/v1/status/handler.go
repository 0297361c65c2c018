package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// Database is the part of storage the status check looks at.
type Database interface {
	Read() (*storage.Reader, error)
	MigrationVersion() (uint, bool, error)
}

type Response struct {
	Status        string `json:"status"`
	SchemaVersion uint   `json:"schemaVersion"`
	Dirty         bool   `json:"dirty,omitempty"`
}

type Handler struct {
	Database Database
}

func NewHandler(db Database) Handler {
	return Handler{Database: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if _, err := h.Database.Read(); err != nil {
		if errors.Is(err, ledger.ErrNotInitialized) {
			writeJSON(w, http.StatusServiceUnavailable, Response{Status: "starting"})
			return nil
		}
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	endTimer := logData.AddTiming("migrationVersionMs")
	version, dirty, err := h.Database.MigrationVersion()
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	logData.AddData("schemaVersion", version)

	if dirty {
		writeJSON(w, http.StatusServiceUnavailable, Response{Status: "dirty", SchemaVersion: version, Dirty: true})
		return nil
	}
	writeJSON(w, http.StatusOK, Response{Status: "ok", SchemaVersion: version})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
