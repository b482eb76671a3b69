package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes bbctl against srv. Commands share the global root and viper
// state, so these tests do not run in parallel.
func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--server", srv.URL, "--output", "table"}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestItemsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/items", r.URL.Path)
		assert.Equal(t, "listed", r.URL.Query().Get("ebay_status"))
		_, _ = w.Write([]byte(`{"items":[{"id":"item-1","item_name":"Oak desk","status":"listed",` +
			`"ebay_status":"listed","ebay_offer_id":"offer-1","price":120}],"total":1,"limit":50,"offset":0}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "items", "list", "--ebay-status", "listed")
	require.NoError(t, err)
	assert.Contains(t, out, "Oak desk")
	assert.Contains(t, out, "$120.00")
	assert.Contains(t, out, "offer-1")
	assert.Contains(t, out, "Showing 1 of 1 items")
}

func TestEbayList_FailureExitsNonZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/items/item-1/ebay/list", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"reconnect your marketplace account","kind":"authorization"}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "ebay", "list", "item-1")
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "reconnect your marketplace account")
	assert.Contains(t, out, "authorization")
}

func TestEbayUnlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"success":true,"message":"item unlisted",` +
			`"result":{"item_id":"item-1","ebay_sku":"BB-item-1","ebay_offer_id":"offer-1","ebay_status":"unlisted"}}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "ebay", "unlist", "item-1")
	require.NoError(t, err)
	assert.Contains(t, out, "item unlisted")
	assert.Contains(t, out, "BB-item-1")
}

func TestEbayAuthStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"configured": true, "authorized": false, "expired": false})
	}))
	defer srv.Close()

	out, err := run(t, srv, "ebay", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Authorized:")
	assert.Contains(t, out, "false")
	assert.NotContains(t, out, "Expires:")
}
