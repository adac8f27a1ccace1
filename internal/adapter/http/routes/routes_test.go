package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"obsydia_retail/internal/adapter/http/handlers/mocks"
	"obsydia_retail/internal/config"
	"obsydia_retail/internal/usecase"
	mock_interfaces "obsydia_retail/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(Dependencies{
		Orders:   mocks.NewMockIOrderUseCase(ctrl),
		Auth:     mocks.NewMockIAdminAuthUseCase(ctrl),
		Messages: mock_interfaces.NewMockIMessageBuilder(ctrl),
	})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin routes require a token", func(t *testing.T) {
		for _, path := range []string{"/v1/admin/orders", "/v1/admin/orders/ORD-1"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/admin/orders/ORD-1/quote", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("locales", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locales/en", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBuildDependencies_MemoryEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		Email:         config.EmailConfig{Notifier: config.NotifierSMTP2GO, Mock: true},
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "s3cret",
			TokenTTL: time.Hour,
		},
		PaymentNumber: "787-000-1111",
		QuoteCurrency: "USD",
	}
	deps, cleanup, err := BuildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	router := NewRouter(deps)

	// submit
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/order", bytes.NewBufferString(`{
		"fullName":"Ana Ruiz","email":"ana@example.com","phone":"787-555-0100",
		"address":"Calle Luna 12","location":"San Juan","services":["jellyfin"],"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var submitted struct {
		OK      bool   `json:"ok"`
		OrderID string `json:"orderId"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	assert.True(t, submitted.OK)
	assert.NotEmpty(t, submitted.OrderID)
	assert.Contains(t, submitted.Message, "787-000-1111")

	// login
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/admin/login", bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	// quote
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/admin/orders/"+submitted.OrderID+"/quote",
		bytes.NewBufferString(`{"pc":"100","jellyfin":"25.50","otherLabel":["Cable"],"otherAmount":["4.5"]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var quoted struct {
		Status string `json:"status"`
		Quote  struct {
			Total float64 `json:"total"`
			Items []struct {
				Key string `json:"key"`
			} `json:"items"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quoted))
	assert.Equal(t, "quoted", quoted.Status)
	assert.Equal(t, 130.0, quoted.Quote.Total)
	assert.Len(t, quoted.Quote.Items, 3)
}

func TestBuildDependencies_MissingPaymentNumberStoresNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		Email:         config.EmailConfig{Notifier: config.NotifierSMTP2GO, Mock: true},
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "s3cret",
			TokenTTL: time.Hour,
		},
	}
	deps, cleanup, err := BuildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	router := NewRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/order", bytes.NewBufferString(`{
		"fullName":"Ana Ruiz","email":"ana@example.com","phone":"787-555-0100",
		"address":"Calle Luna 12","location":"San Juan","services":["jellyfin"],"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/admin/login", bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var orders []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestBuildDependencies_Errors(t *testing.T) {
	_, _, err := BuildDependencies(context.Background(), config.Config{StorageDriver: "mongo"})
	assert.Error(t, err)

	_, _, err = BuildDependencies(context.Background(), config.Config{
		StorageDriver: config.StorageNone,
		Email:         config.EmailConfig{Notifier: "pigeon"},
	})
	assert.Error(t, err)
}

func TestBuildAdminAuth(t *testing.T) {
	auth, err := buildAdminAuth(config.AdminConfig{})
	require.NoError(t, err)
	_, err = auth.Login(context.Background(), "admin", "x")
	assert.ErrorIs(t, err, usecase.ErrAdminNotConfigured)

	auth, err = buildAdminAuth(config.AdminConfig{Username: "admin", Password: "pw", JWTSecret: "k"})
	require.NoError(t, err)
	token, err := auth.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	sub, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}
