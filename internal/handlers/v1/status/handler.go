package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/cashti-console/internal/logging"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports service health on GET /status.
type Handler struct {
	Database Pinger
}

// NewHandler creates a status Handler that pings db.
func NewHandler(db Pinger) Handler {
	return Handler{Database: db}
}

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Handler serves GET /status, pinging the database when one is set.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := response{Status: "ok", Database: "ok"}
	code := http.StatusOK

	if h.Database != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		stopTimer := logData.AddTiming("pingMs")
		err := h.Database.Ping(ctx)
		stopTimer()
		if err != nil {
			body = response{Status: "degraded", Database: "unreachable"}
			code = http.StatusServiceUnavailable
			logData.AddData("pingError", err.Error())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("status: writing body: %w", err)
	}
	if code != http.StatusOK {
		return errors.New("status: database unreachable")
	}
	return nil
}
