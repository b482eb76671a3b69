package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bluberry/bluberry/internal/breaker"
	"github.com/bluberry/bluberry/internal/metrics"
)

const (
	defaultSellURL         = "https://api.ebay.com/sell/inventory/v1"
	defaultMarketplace     = "EBAY_US"
	defaultContentLanguage = "en-US"

	tracerName = "github.com/bluberry/bluberry/internal/ebay"
)

// SellClient implements Marketplace using the eBay Sell Inventory API.
// createInventoryItem is retried on transport failures and 5xx responses;
// the offer calls are never retried because eBay does not deduplicate them.
type SellClient struct {
	sellURL         string
	marketplace     string
	contentLanguage string
	client          *http.Client
	rateLimiter     *RateLimiter
	breaker         *breaker.Breaker
	log             *slog.Logger

	maxRetries    uint64
	retryInterval time.Duration
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithSellURL overrides the default Sell Inventory API base URL.
func WithSellURL(u string) SellOption {
	return func(c *SellClient) {
		c.sellURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithContentLanguage overrides the Content-Language sent with every call.
func WithContentLanguage(lang string) SellOption {
	return func(c *SellClient) {
		c.contentLanguage = lang
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter consulted before every call.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// WithBreaker injects a circuit breaker. Transport failures and 5xx
// responses count as failures; 4xx responses do not.
func WithBreaker(b *breaker.Breaker) SellOption {
	return func(c *SellClient) {
		c.breaker = b
	}
}

// WithInventoryRetries sets the retry budget for inventory upserts.
func WithInventoryRetries(n uint64, interval time.Duration) SellOption {
	return func(c *SellClient) {
		c.maxRetries = n
		c.retryInterval = interval
	}
}

// WithSellLogger sets a custom logger.
func WithSellLogger(l *slog.Logger) SellOption {
	return func(c *SellClient) {
		c.log = l
	}
}

// NewSellClient creates a new Sell Inventory API client.
func NewSellClient(opts ...SellOption) *SellClient {
	c := &SellClient{
		sellURL:         defaultSellURL,
		marketplace:     defaultMarketplace,
		contentLanguage: defaultContentLanguage,
		client:          &http.Client{Timeout: 10 * time.Second},
		log:             slog.Default(),
		maxRetries:      defaultMaxRetries,
		retryInterval:   defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Marketplace returns the marketplace id sent with every call.
func (c *SellClient) Marketplace() string {
	return c.marketplace
}

// CreateInventoryItem upserts the inventory record keyed by sku.
func (c *SellClient) CreateInventoryItem(
	ctx context.Context,
	token, sku string,
	item *InventoryItem,
) error {
	path := "/inventory_item/" + url.PathEscape(sku)

	return retryIdempotent(ctx, c.maxRetries, c.retryInterval, func() error {
		err := c.do(ctx, "create_inventory_item", ErrInventoryCreate, http.MethodPut, path, token, item, nil)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !retryable(apiErr.StatusCode) {
			return backoff.Permanent(err)
		}
		if errors.Is(err, ErrDailyLimitReached) || errors.Is(err, breaker.ErrOpen) {
			return backoff.Permanent(err)
		}
		c.log.Warn("inventory upsert failed, retrying", "sku", sku, "error", err)
		return err
	})
}

// CreateOffer creates a new unpublished offer and returns its id. Calling it
// twice for the same sku creates two offers.
func (c *SellClient) CreateOffer(
	ctx context.Context,
	token string,
	offer *Offer,
) (string, error) {
	if offer.MarketplaceID == "" {
		offer.MarketplaceID = c.marketplace
	}

	var resp createOfferResponse
	if err := c.do(ctx, "create_offer", ErrOfferCreate, http.MethodPost, "/offer", token, offer, &resp); err != nil {
		return "", err
	}
	if resp.OfferID == "" {
		return "", fmt.Errorf("%w: response carried no offerId", ErrOfferCreate)
	}
	return resp.OfferID, nil
}

// PublishOffer makes the offer live and returns the marketplace listing id.
func (c *SellClient) PublishOffer(
	ctx context.Context,
	token, offerID string,
) (string, error) {
	path := "/offer/" + url.PathEscape(offerID) + "/publish"

	var resp publishOfferResponse
	if err := c.do(ctx, "publish_offer", ErrPublish, http.MethodPost, path, token, nil, &resp); err != nil {
		return "", err
	}
	return resp.ListingID, nil
}

// WithdrawOffer ends a published offer.
func (c *SellClient) WithdrawOffer(
	ctx context.Context,
	token, offerID string,
) error {
	path := "/offer/" + url.PathEscape(offerID) + "/withdraw"
	return c.do(ctx, "withdraw_offer", ErrWithdraw, http.MethodPost, path, token, nil, nil)
}

// do executes one Sell API request. Non-2xx responses become *APIError
// wrapping opErr with the provider body attached.
func (c *SellClient) do(
	ctx context.Context,
	op string,
	opErr error,
	method, path, token string,
	body, dst any,
) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ebay."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if err := c.admit(ctx, op); err != nil {
		span.SetStatus(codes.Error, "not admitted")
		return fmt.Errorf("%w: %w", opErr, err)
	}

	start := time.Now()
	status, err := c.send(ctx, opErr, method, path, token, body, dst)
	metrics.EbayAPICallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	c.record(status, err)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, op+" failed")
	}

	switch {
	case err == nil:
		metrics.EbayAPICallsTotal.WithLabelValues(op, "success").Inc()
	case status == 0:
		metrics.EbayAPICallsTotal.WithLabelValues(op, "transport_error").Inc()
	default:
		metrics.EbayAPICallsTotal.WithLabelValues(op, fmt.Sprintf("%dxx", status/100)).Inc()
	}

	return err
}

func (c *SellClient) admit(ctx context.Context, op string) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			// A short-circuited call never reaches eBay, so it gives its
			// daily slot back.
			if c.rateLimiter != nil {
				c.rateLimiter.release()
				metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
			}
			metrics.EbayAPICallsTotal.WithLabelValues(op, "circuit_open").Inc()
			return err
		}
	}
	return nil
}

func (c *SellClient) record(status int, err error) {
	if c.breaker == nil {
		return
	}
	if err != nil && (status == 0 || status >= http.StatusInternalServerError) {
		c.breaker.Failure()
		return
	}
	c.breaker.Success()
}

func (c *SellClient) send(
	ctx context.Context,
	opErr error,
	method, path, token string,
	body, dst any,
) (int, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: marshaling request body: %w", opErr, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.sellURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("%w: creating HTTP request: %w", opErr, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	req.Header.Set("Content-Language", c.contentLanguage)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: executing request: %w", opErr, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: reading response body: %w", opErr, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &APIError{
			Op:         opErr,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: parsing response: %w", opErr, err)
		}
	}

	return resp.StatusCode, nil
}
