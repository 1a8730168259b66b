package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/service"
)

// GearItemHandler serves /api/gear-items.
type GearItemHandler struct {
	items  *service.GearItemService
	logger *slog.Logger
}

func NewGearItemHandler(items *service.GearItemService, logger *slog.Logger) *GearItemHandler {
	return &GearItemHandler{items: items, logger: logger}
}

// HandleCreate adds a gear item to an existing list.
//
// HTTP: POST /api/gear-items
// REQUEST BODY:
//
//	{"packing_list_id": 1, "name": "Tent", "individual_weight": 1500,
//	 "quantity": 1, "category": "shelter", "notes": null}
func (h *GearItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateGearItemInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.items.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// HandleUpdate applies any subset of name, individual_weight, quantity,
// category and notes.
//
// HTTP: PATCH /api/gear-items/{id}
func (h *GearItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var in model.UpdateGearItemInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	item, err := h.items.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// HTTP: DELETE /api/gear-items/{id}
func (h *GearItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ok, err := h.items.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DeleteResult{Success: ok})
}
