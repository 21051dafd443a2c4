package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
	"github.com/m-mizutani/rtcfetch/pkg/utils/async"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

// maxRequestBody bounds the fetch request payload
const maxRequestBody = 64 << 10

// ConnectorHandler serves connector metadata and accepts fetch requests
type ConnectorHandler struct {
	fetchUC    interfaces.FetchUseCase
	metadataUC interfaces.MetadataUseCase
}

// NewConnectorHandler creates a new ConnectorHandler
func NewConnectorHandler(fetchUC interfaces.FetchUseCase, metadataUC interfaces.MetadataUseCase) *ConnectorHandler {
	return &ConnectorHandler{
		fetchUC:    fetchUC,
		metadataUC: metadataUC,
	}
}

// ConnectionData returns the connector type and required fields
func (h *ConnectorHandler) ConnectionData(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.metadataUC.ConnectionData())
}

// Icon returns the connector icon as SVG
func (h *ConnectorHandler) Icon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, h.metadataUC.Icon()); err != nil {
		logging.From(r.Context()).Error("Failed to write icon", "error", err)
	}
}

// fetchAccepted is the body of a 202 response
type fetchAccepted struct {
	Status string `json:"status"`
}

// Fetch validates the connection parameters and starts the fetch in the
// background, detached from the request. Incomplete parameters are rejected
// with 400.
func (h *ConnectorHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	var raw map[string]string
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&raw); err != nil {
		logger.Warn("Failed to decode fetch request", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}

	params, err := model.ParseConnectionParams(raw)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrMissingParameter) {
			status = http.StatusBadRequest
		}
		logger.Warn("Rejected fetch request", "error", err)
		writeError(ctx, w, err, status)
		return
	}

	logger.Info("Accepted fetch request",
		"repository_workspace", params.RepositoryWorkspace,
		"target_directory", params.TargetDirectory,
	)

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := h.fetchUC.Fetch(ctx, params)
		return err
	})

	writeJSON(ctx, w, http.StatusAccepted, &fetchAccepted{Status: "accepted"})
}
