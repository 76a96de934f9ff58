package handlers

import (
	"net/http"

	"github.com/londonlets/api/internal/infra/worker"
)

// PublisherHandler exposes the manual pipeline trigger for admins and
// tests. Goes through the worker so the single-flight guard (when
// enabled) also covers manual runs.
type PublisherHandler struct {
	Worker *worker.PublisherWorker
}

func NewPublisherHandler(w *worker.PublisherWorker) *PublisherHandler {
	return &PublisherHandler{Worker: w}
}

func (h *PublisherHandler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	result := h.Worker.RunNow(r.Context())
	writeJSON(w, http.StatusOK, result)
}
