package httpapi

import (
	"fmt"
	"net/http"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.Orders()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.Order(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) requestDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req locationRequest
	if !decode(w, r, &req) {
		return
	}
	location, err := h.Orders.ResolveDeliveryLocation(req.LocationID, req.Query)
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.RequestDelivery(r.Context(), id, location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getAdminOrders(w http.ResponseWriter, r *http.Request) {
	var (
		orders []domain.Order
		err    error
	)
	switch view := r.URL.Query().Get("view"); view {
	case "", "pending":
		orders, err = h.Orders.PendingOrders()
	case "completed":
		orders, err = h.Orders.CompletedOrders()
	default:
		http.Error(w, fmt.Sprintf("unknown view %q", view), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.SetOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) validateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.ValidateOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// getReceipt serves plain text unless the client asks for JSON.
func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	receipt, err := h.Orders.Receipt(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.Header.Get("Accept") == "application/json" {
		writeJSON(w, http.StatusOK, receipt)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt.Text()))
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	png, err := h.Orders.ReceiptQRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Orders.Summary()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
