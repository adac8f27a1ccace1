package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	response "obsydia_retail/internal/adapter/http/dto/response"
	"obsydia_retail/internal/adapter/http/handlers/mocks"
	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/domain/intake"
	"obsydia_retail/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(h *AdminHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/admin/login", h.Login)
	r.GET("/v1/admin/orders", h.ListOrders)
	r.GET("/v1/admin/orders/:id", h.GetOrder)
	r.POST("/v1/admin/orders/:id/quote", h.IssueQuote)
	return r
}

func TestAdminHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		body       string
		setup      func(auth *mocks.MockIAdminAuthUseCase)
		wantStatus int
	}{
		{
			name:       "missing fields",
			body:       `{"username":"admin"}`,
			setup:      func(*mocks.MockIAdminAuthUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: `{"username":"admin","password":"nope"}`,
			setup: func(auth *mocks.MockIAdminAuthUseCase) {
				auth.EXPECT().Login(gomock.Any(), "admin", "nope").Return("", usecase.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "not configured",
			body: `{"username":"admin","password":"x"}`,
			setup: func(auth *mocks.MockIAdminAuthUseCase) {
				auth.EXPECT().Login(gomock.Any(), "admin", "x").Return("", usecase.ErrAdminNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "success",
			body: `{"username":"admin","password":"s3cret"}`,
			setup: func(auth *mocks.MockIAdminAuthUseCase) {
				auth.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return("tok", nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			auth := mocks.NewMockIAdminAuthUseCase(ctrl)
			tc.setup(auth)
			h := NewAdminHandler(mocks.NewMockIOrderUseCase(ctrl), auth)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/login", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newAdminRouter(h).ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tc.wantStatus, w.Code, w.Body.String())
			}
			if tc.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), `"token":"tok"`) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestAdminHandler_Orders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		uc.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "ORD-2"}, {ID: "ORD-1"}}, nil)

		w := httptest.NewRecorder()
		newAdminRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 2 || out[0].ID != "ORD-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list without storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		uc.EXPECT().List(gomock.Any()).Return(nil, usecase.ErrRepositoryNotConfigured)

		w := httptest.NewRecorder()
		newAdminRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		uc.EXPECT().GetByID(gomock.Any(), "ORD-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		newAdminRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/orders/ORD-404", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		uc.EXPECT().GetByID(gomock.Any(), "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusNew}, nil)

		w := httptest.NewRecorder()
		newAdminRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/orders/ORD-1", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"new"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func postQuoteForm(h *AdminHandler, id string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/orders/"+id+"/quote", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	newAdminRouter(h).ServeHTTP(w, req)
	return w
}

func TestAdminHandler_IssueQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("form fields reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		want := intake.QuoteForm{
			PC:           "450",
			ExtraStorage: "20",
			Notes:        "Ships Monday",
			OtherLabels:  []string{"Cable", "Fan"},
			OtherAmounts: []string{"5", "7.5"},
		}
		q := entities.Quote{Currency: "USD", Items: []entities.QuoteItem{{Key: "pc", Amount: 450}}, Total: 482.5}
		uc.EXPECT().IssueQuote(gomock.Any(), "ORD-1", want).Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusQuoted, Quote: &q}, nil)

		w := postQuoteForm(h, "ORD-1", url.Values{
			"pc":            {"450"},
			"extra-storage": {"20"},
			"quoteNotes":    {"Ships Monday"},
			"otherLabel[]":  {"Cable", "Fan"},
			"otherAmount[]": {"5", "7.5"},
		})
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"quoted"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid sheet echoes defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

		defaults := intake.QuoteForm{PC: "0", OtherLabels: []string{"Cable"}, OtherAmounts: []string{""}}
		uc.EXPECT().IssueQuote(gomock.Any(), "ORD-1", gomock.Any()).Return(entities.Order{}, &usecase.QuoteValidationError{
			Cause:    &intake.QuoteError{Field: entities.QuoteItemPC, Reason: intake.ReasonPCRequired},
			Defaults: defaults,
		})

		w := postQuoteForm(h, "ORD-1", url.Values{"pc": {"0"}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var out response.QuoteErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Key != "quote.pc.required" || out.QuoteDefaults.OtherLabels[0] != "Cable" || out.Message == "" {
			t.Fatalf("unexpected body: %+v", out)
		}
	})

	statusCases := []struct {
		name string
		err  error
		want int
	}{
		{"blank id", usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{"not found", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"send failed", fmt.Errorf("%w: smtp", usecase.ErrNotificationFailed), http.StatusBadGateway},
		{"sent but not saved", fmt.Errorf("%w: db", usecase.ErrQuoteNotPersisted), http.StatusInternalServerError},
		{"vanished after send", fmt.Errorf("%w: %w", usecase.ErrQuoteNotPersisted, usecase.ErrOrderNotFound), http.StatusInternalServerError},
		{"no storage", usecase.ErrRepositoryNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderUseCase(ctrl)
			h := NewAdminHandler(uc, mocks.NewMockIAdminAuthUseCase(ctrl))

			uc.EXPECT().IssueQuote(gomock.Any(), "ORD-1", gomock.Any()).Return(entities.Order{}, tc.err)

			w := postQuoteForm(h, "ORD-1", url.Values{"pc": {"10"}})
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}
