package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"offer_agent/internal/adapter/http/handlers/mocks"
	"offer_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestWebhookHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("raw body and headers reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/api/webhooks/stripe", h.Stripe)

		payload := `{"id":"evt_1","type":"checkout.session.completed"}`
		uc.EXPECT().Handle(gomock.Any(), "stripe", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, got []byte, headers http.Header) error {
				if string(got) != payload {
					t.Fatalf("payload altered: %s", got)
				}
				if headers.Get("Stripe-Signature") != "t=1,v1=abc" {
					t.Fatalf("signature header missing: %v", headers)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewBufferString(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mercado pago route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/api/webhooks/mercadopago", h.MercadoPago)

		uc.EXPECT().Handle(gomock.Any(), "mercadopago", gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"1"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{fmt.Errorf("%w: bad sig", usecase.ErrInvalidWebhookSignature), http.StatusBadRequest},
			{usecase.ErrInvalidWebhookPayload, http.StatusBadRequest},
			{usecase.ErrWebhookProviderNotConfigured, http.StatusInternalServerError},
			{usecase.ErrWebhookProcessing, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIWebhookUseCase(ctrl)
			h := NewWebhookHandler(uc)

			r := gin.New()
			r.POST("/api/webhooks/stripe", h.Stripe)

			uc.EXPECT().Handle(gomock.Any(), "stripe", gomock.Any(), gomock.Any()).Return(tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewBufferString(`{}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("err=%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", nil)
		c.Request.Body = failingReadCloser{}

		h.Stripe(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
