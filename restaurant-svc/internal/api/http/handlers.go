package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"

	"restaurant-digital/restaurant-svc/internal/domain"
	"restaurant-digital/restaurant-svc/internal/service"
)

var log = logging.MustGetLogger("restaurant-svc")

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, cart service.CartServiceInterface, checkout service.CheckoutServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu/{category}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{category}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{category}/items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{category}/items/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{category}/items/{id}/promotion", h.setPromotion).Methods("PUT")
	r.HandleFunc("/api/menu/{category}/items/{id}/promotion", h.clearPromotion).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.setCartQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/delivery/locations", h.getDeliveryLocations).Methods("GET")

	r.HandleFunc("/api/checkout", h.startCheckout).Methods("POST")
	r.HandleFunc("/api/checkout/{id}", h.getCheckout).Methods("GET")
	r.HandleFunc("/api/checkout/{id}", h.cancelCheckout).Methods("DELETE")
	r.HandleFunc("/api/checkout/{id}/fulfillment", h.chooseFulfillment).Methods("POST")
	r.HandleFunc("/api/checkout/{id}/delivery/select", h.selectDeliveryLocation).Methods("POST")
	r.HandleFunc("/api/checkout/{id}/delivery/search", h.searchDeliveryAddress).Methods("POST")
	r.HandleFunc("/api/checkout/{id}/delivery/confirm", h.confirmDeliveryAddress).Methods("POST")
	r.HandleFunc("/api/checkout/{id}/payment", h.confirmPayment).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/delivery", h.requestDelivery).Methods("POST")

	r.HandleFunc("/api/admin/orders", h.getAdminOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.setOrderStatus).Methods("PUT")
	r.HandleFunc("/api/admin/orders/{id}/validate", h.validateOrder).Methods("POST")
	r.HandleFunc("/api/admin/orders/{id}/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/receipt/qrcode", h.getReceiptQRCode).Methods("GET")
	r.HandleFunc("/api/admin/stats", h.getStats).Methods("GET")

	r.HandleFunc("/api/summary", h.getSummary).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warningf("encode response: %v", err)
	}
}

func statusFor(err error) int {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCheckoutNotFound),
		errors.Is(err, service.ErrCartLineNotFound),
		errors.Is(err, service.ErrUnknownLocation):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrOrderCompleted),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDeliveryNotAllowed),
		errors.Is(err, service.ErrCheckoutState):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorf("request failed: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func pathCategory(w http.ResponseWriter, r *http.Request) (domain.Category, bool) {
	category, err := domain.ParseCategory(mux.Vars(r)["category"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return category, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
