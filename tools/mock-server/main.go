// Package main implements a mock eBay API server for local development.
// It simulates the OAuth consent and token endpoints and the Sell Inventory
// offer lifecycle so the listing flow can run without real eBay credentials.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

const (
	mockCode   = "mock-auth-code"
	sellPrefix = "/sell/inventory/v1"
)

type offer struct {
	SKU       string
	ListingID string
	Published bool
}

// fakeEbay holds the tokens and offers issued since startup.
type fakeEbay struct {
	log      *slog.Logger
	tokenTTL time.Duration
	callback string

	mu      sync.Mutex
	access  map[string]time.Time
	refresh map[string]bool
	skus    map[string]json.RawMessage
	offers  map[string]*offer
	nextID  int
}

func newFakeEbay(log *slog.Logger, tokenTTL time.Duration, callback string) *fakeEbay {
	return &fakeEbay{
		log:      log,
		tokenTTL: tokenTTL,
		callback: callback,
		access:   make(map[string]time.Time),
		refresh:  make(map[string]bool),
		skus:     make(map[string]json.RawMessage),
		offers:   make(map[string]*offer),
	}
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	tokenTTL := flag.Duration("token-ttl", 2*time.Hour, "lifetime of issued access tokens")
	callback := flag.String("callback", "http://localhost:8080/api/v1/ebay/auth/callback",
		"URL the consent page redirects to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	fe := newFakeEbay(logger, *tokenTTL, *callback)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr, "token_ttl", *tokenTTL)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, fe.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (f *fakeEbay) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauth2/authorize", f.authorize)
	mux.HandleFunc("POST /identity/v1/oauth2/token", f.token)
	mux.HandleFunc("PUT "+sellPrefix+"/inventory_item/{sku}", f.bearer(f.putInventoryItem))
	mux.HandleFunc("POST "+sellPrefix+"/offer", f.bearer(f.createOffer))
	mux.HandleFunc("POST "+sellPrefix+"/offer/{offerId}/publish", f.bearer(f.publishOffer))
	mux.HandleFunc("POST "+sellPrefix+"/offer/{offerId}/withdraw", f.bearer(f.withdrawOffer))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func oauthError(w http.ResponseWriter, status int, code, desc string) {
	writeJSON(w, status, map[string]string{"error": code, "error_description": desc})
}

func sellError(w http.ResponseWriter, status int, id int, msg string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"errorId": id, "domain": "API_INVENTORY", "message": msg}},
	})
}

func randomToken(prefix string) string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return prefix + hex.EncodeToString(b)
}

// authorize stands in for the consent page: it approves immediately and
// redirects back with a fixed code.
func (f *fakeEbay) authorize(w http.ResponseWriter, r *http.Request) {
	q := url.Values{"code": {mockCode}}
	if state := r.URL.Query().Get("state"); state != "" {
		q.Set("state", state)
	}
	http.Redirect(w, r, f.callback+"?"+q.Encode(), http.StatusFound)
}

func (f *fakeEbay) token(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		f.log.Warn("token request missing Basic Auth header")
		oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
		return
	}
	if err := r.ParseForm(); err != nil {
		oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
		return
	}

	switch r.PostForm.Get("grant_type") {
	case "authorization_code":
		if r.PostForm.Get("code") != mockCode {
			oauthError(w, http.StatusBadRequest, "invalid_grant", "the authorization code is invalid or expired")
			return
		}
		f.issue(w, true)
	case "refresh_token":
		f.mu.Lock()
		known := f.refresh[r.PostForm.Get("refresh_token")]
		f.mu.Unlock()
		if !known {
			oauthError(w, http.StatusBadRequest, "invalid_grant", "the provided refresh token is invalid")
			return
		}
		f.issue(w, false)
	default:
		oauthError(w, http.StatusBadRequest, "unsupported_grant_type", "grant type not supported")
	}
}

// issue writes a fresh access token. Refresh grants do not rotate the
// refresh token and omit it from the response, matching eBay.
func (f *fakeEbay) issue(w http.ResponseWriter, withRefresh bool) {
	access := randomToken("mock-access-")
	body := map[string]any{
		"access_token": access,
		"expires_in":   int(f.tokenTTL.Seconds()),
		"token_type":   "User Access Token",
	}

	f.mu.Lock()
	f.access[access] = time.Now().Add(f.tokenTTL)
	if withRefresh {
		refresh := randomToken("mock-refresh-")
		f.refresh[refresh] = true
		body["refresh_token"] = refresh
		body["refresh_token_expires_in"] = 47304000
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, body)
	f.log.Info("issued mock token", "with_refresh", withRefresh)
}

func (f *fakeEbay) bearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		h := r.Header.Get("Authorization")
		if len(h) <= len(prefix) || h[:len(prefix)] != prefix {
			sellError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}

		f.mu.Lock()
		exp, ok := f.access[h[len(prefix):]]
		f.mu.Unlock()
		if !ok || time.Now().After(exp) {
			sellError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}
		next(w, r)
	}
}

func (f *fakeEbay) putInventoryItem(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sellError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}

	sku := r.PathValue("sku")
	f.mu.Lock()
	f.skus[sku] = body
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
	f.log.Info("inventory item stored", "sku", sku)
}

func (f *fakeEbay) createOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU string `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SKU == "" {
		sellError(w, http.StatusBadRequest, 25702, "The SKU is missing")
		return
	}

	f.mu.Lock()
	if _, ok := f.skus[req.SKU]; !ok {
		f.mu.Unlock()
		sellError(w, http.StatusBadRequest, 25702, "No inventory item found for SKU "+req.SKU)
		return
	}
	f.nextID++
	id := fmt.Sprintf("mock-offer-%d", f.nextID)
	f.offers[id] = &offer{SKU: req.SKU}
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"offerId": id})
	f.log.Info("offer created", "sku", req.SKU, "offer_id", id)
}

func (f *fakeEbay) publishOffer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("offerId")

	f.mu.Lock()
	o, ok := f.offers[id]
	if ok && !o.Published {
		f.nextID++
		o.ListingID = fmt.Sprintf("11%010d", f.nextID)
		o.Published = true
	}
	var listingID string
	if ok {
		listingID = o.ListingID
	}
	f.mu.Unlock()

	if !ok {
		sellError(w, http.StatusNotFound, 25713, "This Offer is not available")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
	f.log.Info("offer published", "offer_id", id, "listing_id", listingID)
}

func (f *fakeEbay) withdrawOffer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("offerId")

	f.mu.Lock()
	o, ok := f.offers[id]
	published := ok && o.Published
	var listingID string
	if published {
		listingID = o.ListingID
		o.Published = false
	}
	f.mu.Unlock()

	switch {
	case !ok:
		sellError(w, http.StatusNotFound, 25713, "This Offer is not available")
	case !published:
		sellError(w, http.StatusBadRequest, 25725, "The offer is not published")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
		f.log.Info("offer withdrawn", "offer_id", id)
	}
}
