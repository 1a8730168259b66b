package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/service"
)

// AlternateProductHandler serves /api/alternate-products.
type AlternateProductHandler struct {
	alts   *service.AlternateProductService
	logger *slog.Logger
}

func NewAlternateProductHandler(alts *service.AlternateProductService, logger *slog.Logger) *AlternateProductHandler {
	return &AlternateProductHandler{alts: alts, logger: logger}
}

// HTTP: POST /api/alternate-products
func (h *AlternateProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateAlternateProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	alt, err := h.alts.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, alt)
}

// HTTP: PATCH /api/alternate-products/{id}
func (h *AlternateProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var in model.UpdateAlternateProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	alt, err := h.alts.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, alt)
}

// HTTP: DELETE /api/alternate-products/{id}
func (h *AlternateProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ok, err := h.alts.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DeleteResult{Success: ok})
}
