package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type addCartItemRequest struct {
	Category string `json:"category"`
	ItemID   int64  `json:"item_id"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type fulfillmentRequest struct {
	Type string `json:"type"`
}

type locationRequest struct {
	LocationID string `json:"location_id"`
	Query      string `json:"query"`
}

type paymentRequest struct {
	Phone string `json:"phone"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.Cart())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if !decode(w, r, &req) {
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	cart, err := h.Cart.AddToCart(category, req.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	cart, err := h.Cart.SetCartQuantity(id, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cart, err := h.Cart.SetCartQuantity(id, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) getDeliveryLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.DeliveryLocations())
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	session, err := h.Checkout.StartCheckout()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	session, err := h.Checkout.Checkout(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.Checkout.CancelCheckout(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) chooseFulfillment(w http.ResponseWriter, r *http.Request) {
	var req fulfillmentRequest
	if !decode(w, r, &req) {
		return
	}
	fulfillment, err := domain.ParseFulfillment(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	session, err := h.Checkout.ChooseFulfillment(mux.Vars(r)["id"], fulfillment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) selectDeliveryLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decode(w, r, &req) {
		return
	}
	session, err := h.Checkout.SelectDeliveryLocation(mux.Vars(r)["id"], req.LocationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) searchDeliveryAddress(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decode(w, r, &req) {
		return
	}
	session, err := h.Checkout.SearchDeliveryAddress(mux.Vars(r)["id"], req.Query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) confirmDeliveryAddress(w http.ResponseWriter, r *http.Request) {
	session, err := h.Checkout.ConfirmDeliveryAddress(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// confirmPayment answers 202: the payment and the order are finalised in the
// background and show up when the session is polled.
func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	session, err := h.Checkout.ConfirmPayment(r.Context(), mux.Vars(r)["id"], req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, session)
}
