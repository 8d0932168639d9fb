package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"

	"restaurant-digital/agg-svc/internal/service"
)

var log = logging.MustGetLogger("agg-svc")

type Handler struct {
	Analytics service.AnalyticsServiceInterface
}

func NewHandler(analytics service.AnalyticsServiceInterface) *Handler {
	return &Handler{Analytics: analytics}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/top-items", h.getTopItems).Methods("GET")
	r.HandleFunc("/api/analytics/served", h.getServed).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warningf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if service.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("analytics query failed: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, service.ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = n
	}

	items, err := h.Analytics.TopItems(r.Context(), query.Get("period"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getServed(w http.ResponseWriter, r *http.Request) {
	count, err := h.Analytics.Served(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, count)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "agg-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
