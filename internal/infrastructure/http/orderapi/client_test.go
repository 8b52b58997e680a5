package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
	"storefront/internal/domain/order"
	"storefront/pkg/logger"
)

// nopLogger keeps client tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}

func (n nopLogger) WithFields(...logger.Field) logger.Logger { return n }

func (nopLogger) Sync() error { return nil }

func newTestClient(baseURL string) *Client {
	return NewClient(config.APIConfig{BaseURL: baseURL, TimeoutSec: 5, DialTimeoutSec: 1}, nopLogger{})
}

func TestClient_ListProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"product_id": 1, "product_name": "Widget", "price": "9.99"},
			{"product_id": 2, "product_name": "Gadget", "price": 4.5},
			{"product_id": 3, "product_name": "Mystery Box", "price": "N/A"}
		]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "$9.99", products[0].Price.Display())
	assert.Equal(t, "$4.50", products[1].Price.Display())
	assert.False(t, products[2].Price.Available())
}

func TestClient_ListProducts_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	products, err := client.ListProducts(context.Background())
	assert.Nil(t, products)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "something broke", statusErr.Body)
}

func TestClient_ListProducts_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode products")
}

func TestClient_ListProducts_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := newTestClient(server.URL)

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call order api")
}

func TestClient_CreateOrder_Success(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"order_id": 77}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	sub := order.Submission{
		Customer:    order.SubmissionCustomer{Name: "Alice", CPF: "111", Email: "a@example.com"},
		Products:    []order.SubmissionItem{{ProductID: 1, ProductName: "Widget", Price: "9.99", Quantity: 2}},
		TotalAmount: "19.98",
		OrderDate:   "2024-01-01T00:00:00.000Z",
	}

	conf, err := client.CreateOrder(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, int64(77), conf.OrderID)

	customer := received["customer"].(map[string]interface{})
	assert.Equal(t, "Alice", customer["name"])
	assert.Equal(t, "19.98", received["totalAmount"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", received["order_date"])
}

func TestClient_CreateOrder_RejectedWithBodyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid CPF", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	conf, err := client.CreateOrder(context.Background(), order.Submission{})
	assert.Nil(t, conf)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Invalid CPF", statusErr.Error())
}

func TestClient_CreateOrder_MalformedSuccessJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "created!")
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), order.Submission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode confirmation")
}

func TestClient_CreateOrder_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), order.Submission{})
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "network failure must not look like an API rejection")
}
