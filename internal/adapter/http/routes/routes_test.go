package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"offer_agent/internal/config"

	"github.com/gin-gonic/gin"
)

func TestGetRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.Config{
		StorageDriver:      config.StorageSQLite,
		SQLitePath:         filepath.Join(dir, "offers.db"),
		PaymentProvider:    config.ProviderStripe,
		PaymentGatewayMock: true,
		DocumentStore:      config.DocumentStoreLocal,
		OffersDir:          filepath.Join(dir, "offers"),
		TemplatesDir:       filepath.Join(dir, "templates"),
		AppURL:             "http://localhost:3000",
	}

	if err := getRoutes(context.Background(), cfg); err != nil {
		t.Fatalf("getRoutes: %v", err)
	}

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /health",
		"GET /v1/ping",
		"GET /offers/:name",
		"POST /api/property/extract",
		"GET /api/property/:property_id",
		"POST /api/offer/create",
		"GET /api/offer/:offer_id",
		"GET /api/offer/:offer_id/download",
		"POST /api/payment/create-checkout",
		"GET /api/payment/verify",
		"POST /api/webhooks/stripe",
		"POST /api/webhooks/mercadopago",
	} {
		if !registered[want] {
			t.Fatalf("route %q not registered", want)
		}
	}

	t.Run("unknown offer is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/offer/does-not-exist", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("download without payment is 403", func(t *testing.T) {
		body := `{"address":"1 Main St","city":"Austin","state":"TX","zipCode":"78701",` +
			`"financingType":"Cash","offerPrice":445000}`
		req := httptest.NewRequest(http.MethodPost, "/api/offer/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("create: expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var created struct {
			OfferID string `json:"offerId"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.OfferID == "" {
			t.Fatalf("no offer id in %s (err=%v)", w.Body.String(), err)
		}

		req = httptest.NewRequest(http.MethodGet, "/api/offer/"+created.OfferID+"/download", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("download: expected 403, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
