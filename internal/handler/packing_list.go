package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/service"
)

// PackingListHandler serves /api/packing-lists.
type PackingListHandler struct {
	lists  *service.PackingListService
	logger *slog.Logger
}

func NewPackingListHandler(lists *service.PackingListService, logger *slog.Logger) *PackingListHandler {
	return &PackingListHandler{lists: lists, logger: logger}
}

// HandleCreate creates a packing list.
//
// HTTP: POST /api/packing-lists
// REQUEST BODY: {"name": "PCT Section A", "description": "Campo to Warner Springs"}
func (h *PackingListHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreatePackingListInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	pl, err := h.lists.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, pl)
}

// HandleList returns every packing list, oldest first.
//
// HTTP: GET /api/packing-lists
func (h *PackingListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// HandleGet returns the detail view: list fields, gear items with their
// alternates and total weight, and the summary. 404 when the list is unknown.
//
// HTTP: GET /api/packing-lists/{id}
func (h *PackingListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	detail, err := h.lists.Detail(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleUpdate applies a partial update. Absent fields are left alone;
// "description": null clears the description.
//
// HTTP: PATCH /api/packing-lists/{id}
func (h *PackingListHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var in model.UpdatePackingListInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.logger, err)
		return
	}

	pl, err := h.lists.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

// HandleDelete removes a list and everything under it.
//
// HTTP: DELETE /api/packing-lists/{id}
// RESPONSE: {"success": true} or {"success": false} when nothing matched.
func (h *PackingListHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ok, err := h.lists.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DeleteResult{Success: ok})
}

// HandleSummary returns the weight summary. Unknown lists get zero totals.
//
// HTTP: GET /api/packing-lists/{id}/summary
func (h *PackingListHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	sum, err := h.lists.Summary(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
