package handlers

import (
	"net/http"

	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/monitoring"
)

// SystemHandler exposes host stats and the static vocabularies.
type SystemHandler struct {
	sampler *monitoring.StatsSampler
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(sampler *monitoring.StatsSampler) *SystemHandler {
	return &SystemHandler{sampler: sampler}
}

// Stats returns the latest host resource snapshot.
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sampler.Latest())
}

// Languages lists the supported content languages.
func (h *SystemHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Languages)
}

// Industries lists the industry choices for business setup.
func (h *SystemHandler) Industries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Industries)
}
