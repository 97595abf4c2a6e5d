package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// CreateCamp handles POST /camps
func (h *Handler) CreateCamp(w http.ResponseWriter, r *http.Request) {
	var req model.CampRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.camps.CreateCamp(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "failed to create camp")
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ListCamps handles GET /camps?search=&sort=
func (h *Handler) ListCamps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	camps, err := h.camps.ListCamps(r.Context(), q.Get("search"), q.Get("sort"))
	if err != nil {
		h.fail(w, r, err, "failed to list camps")
		return
	}
	writeCamps(w, camps)
}

// GetCamp handles GET /camps-details/{id} and GET /update-camps/{id}
func (h *Handler) GetCamp(w http.ResponseWriter, r *http.Request) {
	camp, err := h.camps.GetCamp(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "failed to get camp")
		return
	}
	writeJSON(w, http.StatusOK, camp)
}

// PopularCamps handles GET /high-participant
func (h *Handler) PopularCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.camps.PopularCamps(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to list camps")
		return
	}
	writeCamps(w, camps)
}

// ManageCamps handles GET /manage-camps?search=
func (h *Handler) ManageCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.camps.ManageCamps(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, err, "failed to list camps")
		return
	}
	writeCamps(w, camps)
}

// UpdateCamp handles PUT /camps-update/{id}
func (h *Handler) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	var req model.CampRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.camps.UpdateCamp(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, err, "failed to update camp")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// DeleteCamp handles DELETE /delete-camp/{id}
func (h *Handler) DeleteCamp(w http.ResponseWriter, r *http.Request) {
	res, err := h.camps.DeleteCamp(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "failed to delete camp")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeCamps(w http.ResponseWriter, camps []model.Camp) {
	if camps == nil {
		camps = []model.Camp{}
	}
	writeJSON(w, http.StatusOK, camps)
}
