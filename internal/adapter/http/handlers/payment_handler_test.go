package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"offer_agent/internal/adapter/http/handlers/mocks"
	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/create-checkout", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-checkout", bytes.NewBufferString(`{"offer_id":"off-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrInvalidPaymentType, http.StatusBadRequest},
			{fmt.Errorf("%w: subscriptions", usecase.ErrUnsupportedPaymentType), http.StatusBadRequest},
			{usecase.ErrOfferNotFound, http.StatusNotFound},
			{usecase.ErrPaymentGatewayNotSet, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			h := NewPaymentHandler(uc)

			r := gin.New()
			r.POST("/api/payment/create-checkout", h.CreateCheckout)

			uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/payment/create-checkout", bytes.NewBufferString(`{"offer_id":"off-1","payment_type":"SINGLE_DOWNLOAD"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("err=%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/create-checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CheckoutInput) (usecase.CheckoutResult, error) {
			if in.OfferID != "off-1" || in.PaymentType != "SINGLE_DOWNLOAD" || !in.RequiresReview {
				t.Fatalf("unexpected input: %+v", in)
			}
			return usecase.CheckoutResult{URL: "https://checkout.stripe.com/c/pay/cs_1", SessionID: "cs_1"}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-checkout",
			bytes.NewBufferString(`{"offer_id":"off-1","payment_type":"SINGLE_DOWNLOAD","requires_review":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "cs_1" || body["url"] != "https://checkout.stripe.com/c/pay/cs_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/verify", h.VerifyPayment)

		uc.EXPECT().Verify(gomock.Any(), "").Return(entities.Payment{}, usecase.ErrInvalidSessionID)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/verify", h.VerifyPayment)

		uc.EXPECT().Verify(gomock.Any(), "cs_x").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/verify?session_id=cs_x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/verify", h.VerifyPayment)

		uc.EXPECT().Verify(gomock.Any(), "cs_1").Return(entities.Payment{ID: "pay-1", OfferID: "off-1", Status: entities.PaymentStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/verify?session_id=cs_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["offer_id"] != "off-1" || body["status"] != "COMPLETED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
