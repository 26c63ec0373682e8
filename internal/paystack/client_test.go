package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTransactionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/KH-123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","reference":"KH-123","amount":200000,"currency":"KES","gateway_response":"Successful"}}`))
	}))
	defer srv.Close()

	c := NewClient("sk_test_secret", srv.URL)
	v, err := c.VerifyTransaction(context.Background(), "KH-123")
	require.NoError(t, err)

	assert.True(t, v.Succeeded())
	assert.Equal(t, "KH-123", v.Reference)
	assert.Equal(t, int64(200000), v.Amount)
	assert.Equal(t, "KES", v.Currency)
}

func TestVerifyTransactionNotCompleted(t *testing.T) {
	for _, status := range []string{"failed", "abandoned", "pending"} {
		t.Run(status, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"status":"` + status + `","reference":"KH-9"}}`))
			}))
			defer srv.Close()

			c := NewClient("sk_test_secret", srv.URL)
			v, err := c.VerifyTransaction(context.Background(), "KH-9")
			require.NoError(t, err)
			assert.False(t, v.Succeeded())
			assert.Equal(t, status, v.Status)
		})
	}
}

func TestVerifyTransactionGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":false,"message":"Transaction reference not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("sk_test_secret", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "KH-missing")
	assert.Error(t, err)
}

func TestVerifyTransactionBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient("sk_test_secret", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "KH-1")
	assert.Error(t, err)
}

func TestVerifyTransactionUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient("sk_test_secret", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "KH-1")
	assert.Error(t, err)
}

func TestVerifyTransactionEscapesReference(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"status":true,"data":{"status":"success"}}`))
	}))
	defer srv.Close()

	c := NewClient("sk_test_secret", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "KH 1/2")
	require.NoError(t, err)
	assert.Equal(t, "/transaction/verify/KH%201%2F2", gotPath)
}
