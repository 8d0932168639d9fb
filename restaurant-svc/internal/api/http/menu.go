package httpapi

import (
	"net/http"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type promotionRequest struct {
	Discount int    `json:"discount"`
	EndDate  string `json:"end_date"`
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	items, err := h.Catalog.Menu(category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	var item domain.MenuItem
	if !decode(w, r, &item) {
		return
	}
	created, err := h.Catalog.CreateMenuItem(category, item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created.View())
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var item domain.MenuItem
	if !decode(w, r, &item) {
		return
	}
	updated, err := h.Catalog.UpdateMenuItem(category, id, item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated.View())
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.RemoveMenuItem(category, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setPromotion(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req promotionRequest
	if !decode(w, r, &req) {
		return
	}
	item, err := h.Catalog.SetPromotion(category, id, req.Discount, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item.View())
}

func (h *Handler) clearPromotion(w http.ResponseWriter, r *http.Request) {
	category, ok := pathCategory(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.Catalog.ClearPromotion(category, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item.View())
}
