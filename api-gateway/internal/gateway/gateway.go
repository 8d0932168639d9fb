package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"
	"github.com/rs/cors"
)

var log = logging.MustGetLogger("api-gateway")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	RestaurantSvcURL string
	AggSvcURL        string
}

// restaurantPrefixes are the API paths served by restaurant-svc.
var restaurantPrefixes = []string{
	"/api/menu/",
	"/api/cart",
	"/api/delivery/",
	"/api/checkout",
	"/api/orders",
	"/api/admin/",
	"/api/summary",
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warningf("encode response: %v", err)
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// ServicesHealth asks every backend for its /health and answers 503 when
// any of them is down.
func (g *Gateway) ServicesHealth(w http.ResponseWriter, r *http.Request) {
	backends := map[string]string{
		"restaurant-svc": g.config.RestaurantSvcURL,
		"agg-svc":        g.config.AggSvcURL,
	}

	status := http.StatusOK
	report := make(map[string]string, len(backends))
	for name, base := range backends {
		report[name] = "healthy"
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, base+"/health", nil)
		if err != nil {
			report[name], status = "unreachable", http.StatusServiceUnavailable
			continue
		}
		resp, err := g.client.Do(req)
		if err != nil {
			log.Warningf("%s health check failed: %v", name, err)
			report[name], status = "unreachable", http.StatusServiceUnavailable
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			report[name], status = "unhealthy", http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, report)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Debugf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Errorf("Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Errorf("Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/analytics/") {
		g.ProxyRequest(w, r, g.config.AggSvcURL)
		return
	}

	for _, prefix := range restaurantPrefixes {
		if strings.HasPrefix(path, prefix) {
			g.ProxyRequest(w, r, g.config.RestaurantSvcURL)
			return
		}
	}

	log.Infof("Unmatched route: %s %s", r.Method, path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/health/services", g.ServicesHealth).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return cors.AllowAll().Handler(r)
}
