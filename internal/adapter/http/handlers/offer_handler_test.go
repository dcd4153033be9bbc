package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"offer_agent/internal/adapter/http/handlers/mocks"
	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOfferHandler_CreateOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/api/offer/create", h.CreateOffer)

		req := httptest.NewRequest(http.MethodPost, "/api/offer/create", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/api/offer/create", h.CreateOffer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Offer{}, usecase.ErrPropertyNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/offer/create", bytes.NewBufferString(`{"propertyId":"nope","financingType":"Cash","offerPrice":445000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/api/offer/create", h.CreateOffer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CreateOfferInput) (entities.Offer, error) {
			if in.PropertyID != "prop-1" || in.OfferPrice != 445000 || in.BuyerEmail != "jane@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Contingencies["inspection"] != true {
				t.Fatalf("contingencies not forwarded: %+v", in.Contingencies)
			}
			return entities.Offer{ID: "off-1", Status: entities.OfferStatusGenerated}, nil
		})

		body := `{"propertyId":"prop-1","financingType":"Conventional","offerPrice":445000,` +
			`"contingencies":{"inspection":true},"buyerEmail":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/offer/create", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["offerId"] != "off-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOfferHandler_GetOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/api/offer/:offer_id", h.GetOffer)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(usecase.OfferDetails{}, usecase.ErrOfferNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/offer/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/api/offer/:offer_id", h.GetOffer)

		uc.EXPECT().GetByID(gomock.Any(), "off-1").Return(usecase.OfferDetails{
			Offer:    entities.Offer{ID: "off-1", PropertyID: "prop-1"},
			Property: entities.Property{ID: "prop-1", City: "Austin"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/offer/off-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		prop, _ := body["property"].(map[string]any)
		if body["id"] != "off-1" || prop["city"] != "Austin" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOfferHandler_DownloadOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		result   usecase.OfferDownload
		err      error
		wantCode int
		check    func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:     "payment required",
			err:      usecase.ErrPaymentRequired,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "letter not ready",
			err:      usecase.ErrOfferLetterNotReady,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "document missing",
			err:      usecase.ErrOfferDocumentMissing,
			wantCode: http.StatusNotFound,
		},
		{
			name: "pdf document",
			result: usecase.OfferDownload{
				Kind:        usecase.DownloadDocument,
				FileName:    "offer-letter-off-1.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.7"),
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				if got := w.Header().Get("Content-Type"); got != "application/pdf" {
					t.Fatalf("unexpected content type %q", got)
				}
				if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="offer-letter-off-1.pdf"` {
					t.Fatalf("unexpected disposition %q", got)
				}
				if w.Body.String() != "%PDF-1.7" {
					t.Fatalf("unexpected body %q", w.Body.String())
				}
			},
		},
		{
			name:     "external url",
			result:   usecase.OfferDownload{Kind: usecase.DownloadRedirect, RedirectURL: "https://cdn.example.com/offer.pdf"},
			wantCode: http.StatusTemporaryRedirect,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				if got := w.Header().Get("Location"); got != "https://cdn.example.com/offer.pdf" {
					t.Fatalf("unexpected location %q", got)
				}
			},
		},
		{
			name: "text preview",
			result: usecase.OfferDownload{
				Kind:        usecase.DownloadText,
				FileName:    "offer-letter-off-1.txt",
				ContentType: "text/plain",
				Data:        []byte("Dear seller"),
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				if w.Body.String() != "Dear seller" {
					t.Fatalf("unexpected body %q", w.Body.String())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOfferUseCase(ctrl)
			h := NewOfferHandler(uc)

			r := gin.New()
			r.GET("/api/offer/:offer_id/download", h.DownloadOffer)

			uc.EXPECT().Download(gomock.Any(), "off-1").Return(tt.result, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/offer/off-1/download", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}
