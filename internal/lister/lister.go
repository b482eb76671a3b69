// Package lister sequences the marketplace calls that list and unlist a
// submitted item and records the outcome on the item.
package lister

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bluberry/bluberry/internal/ebay"
	"github.com/bluberry/bluberry/internal/metrics"
	"github.com/bluberry/bluberry/internal/notify"
	"github.com/bluberry/bluberry/internal/store"
	"github.com/bluberry/bluberry/pkg/imageref"
	domain "github.com/bluberry/bluberry/pkg/types"
)

const (
	defaultTimeout  = 60 * time.Second
	defaultCurrency = "USD"
	defaultFormat   = "FIXED_PRICE"

	skuPrefix = "BB-"

	tracerName = "github.com/bluberry/bluberry/internal/lister"
)

// Defaults are the seller-level offer fields applied to every listing.
type Defaults struct {
	CategoryID          string
	MerchantLocationKey string
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
	Currency            string
}

func (d Defaults) missing() []string {
	var m []string
	if d.CategoryID == "" {
		m = append(m, "category_id")
	}
	if d.FulfillmentPolicyID == "" {
		m = append(m, "fulfillment_policy_id")
	}
	if d.PaymentPolicyID == "" {
		m = append(m, "payment_policy_id")
	}
	if d.ReturnPolicyID == "" {
		m = append(m, "return_policy_id")
	}
	return m
}

// ListOptions are per-request overrides for List.
type ListOptions struct {
	// Price overrides the item's asking price.
	Price *float64
	// Quantity defaults to 1.
	Quantity int
	// CategoryID overrides Defaults.CategoryID.
	CategoryID string
}

// Result carries the marketplace identifiers of a listed or unlisted item.
type Result struct {
	ItemID     string            `json:"item_id"`
	SKU        string            `json:"ebay_sku"`
	OfferID    string            `json:"ebay_offer_id"`
	ListingID  string            `json:"ebay_listing_id,omitempty"`
	EbayStatus domain.EbayStatus `json:"ebay_status"`
}

// Lister lists and unlists items on the marketplace.
type Lister struct {
	store    store.Store
	tokens   ebay.TokenProvider
	market   ebay.Marketplace
	notifier notify.Notifier
	tracer   trace.Tracer
	log      *slog.Logger
	defaults Defaults

	conditions ebay.ConditionTable
	imageBase  string
	timeout    time.Duration

	locks itemLocks
}

// Option configures the Lister.
type Option func(*Lister)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(ls *Lister) {
		ls.log = l
	}
}

// WithNotifier sets where listing events are sent.
func WithNotifier(n notify.Notifier) Option {
	return func(ls *Lister) {
		ls.notifier = n
	}
}

// WithTracerProvider sets the provider spans are recorded with.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(ls *Lister) {
		ls.tracer = tp.Tracer(tracerName)
	}
}

// WithDefaults sets the seller-level offer fields.
func WithDefaults(d Defaults) Option {
	return func(ls *Lister) {
		ls.defaults = d
	}
}

// WithConditionTable selects the condition table used for inventory items.
func WithConditionTable(t ebay.ConditionTable) Option {
	return func(ls *Lister) {
		ls.conditions = t
	}
}

// WithImageBaseURL sets the public base URL bare storage paths resolve
// against.
func WithImageBaseURL(u string) Option {
	return func(ls *Lister) {
		ls.imageBase = u
	}
}

// WithTimeout bounds a whole list or unlist operation.
func WithTimeout(d time.Duration) Option {
	return func(ls *Lister) {
		ls.timeout = d
	}
}

// New creates a Lister.
func New(s store.Store, tp ebay.TokenProvider, m ebay.Marketplace, opts ...Option) *Lister {
	ls := &Lister{
		store:      s,
		tokens:     tp,
		market:     m,
		tracer:     otel.Tracer(tracerName),
		log:        slog.Default(),
		conditions: ebay.ListingTable,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(ls)
	}
	if ls.defaults.Currency == "" {
		ls.defaults.Currency = defaultCurrency
	}
	if ls.notifier == nil {
		ls.notifier = notify.NewNoOpNotifier(ls.log)
	}
	return ls
}

// SKU returns the marketplace sku for an item id. It is stable, so a
// repeated inventory upsert for the same item overwrites one record.
// Re-listing creates a new offer on the same sku; eBay rejects that while
// the withdrawn offer still exists, and the rejection is returned as is.
func SKU(itemID string) string {
	return skuPrefix + itemID
}

// List publishes an item: inventory upsert, offer creation, offer publish,
// then the item is marked listed. A failure after the token step aborts the
// sequence without undoing earlier marketplace calls.
//
// The operation is detached from ctx cancellation so an abandoned request
// still records any offer it created. Operations on the same item run one at
// a time.
func (l *Lister) List(ctx context.Context, itemID string, opts ListOptions) (*Result, error) {
	ctx, cancel := l.detach(ctx)
	defer cancel()

	ctx, span := l.tracer.Start(ctx, "lister.List", trace.WithAttributes(attribute.String("item.id", itemID)))
	defer span.End()

	release := l.locks.acquire(itemID)
	defer release()

	res, err := l.list(ctx, itemID, opts)
	l.observe(ctx, span, "list", itemID, err)
	return res, err
}

// Unlist withdraws an item's offer and marks it unlisted. The sku and offer
// id stay on the item.
func (l *Lister) Unlist(ctx context.Context, itemID string) (*Result, error) {
	ctx, cancel := l.detach(ctx)
	defer cancel()

	ctx, span := l.tracer.Start(ctx, "lister.Unlist", trace.WithAttributes(attribute.String("item.id", itemID)))
	defer span.End()

	release := l.locks.acquire(itemID)
	defer release()

	res, err := l.unlist(ctx, itemID)
	l.observe(ctx, span, "unlist", itemID, err)
	return res, err
}

func (l *Lister) list(ctx context.Context, itemID string, opts ListOptions) (*Result, error) {
	it, err := l.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetching item: %w", err)
	}

	if it.IsListed() {
		return nil, fmt.Errorf("item %s (offer %s): %w", it.ID, it.EbayOfferID, ErrAlreadyListed)
	}
	if it.Name == "" {
		return nil, fmt.Errorf("item %s: %w", it.ID, ErrMissingName)
	}

	price := it.Price
	if opts.Price != nil {
		price = opts.Price
	}
	if price == nil || *price <= 0 {
		return nil, fmt.Errorf("item %s: %w", it.ID, ErrMissingPrice)
	}

	defaults := l.defaults
	if opts.CategoryID != "" {
		defaults.CategoryID = opts.CategoryID
	}
	if missing := defaults.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: listing defaults missing %v", ebay.ErrNotConfigured, missing)
	}

	quantity := opts.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	token, err := l.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining token: %w", err)
	}

	sku := SKU(it.ID)
	inv := &ebay.InventoryItem{
		Product: ebay.Product{
			Title:       it.Name,
			Description: it.Description,
			ImageURLs:   imageref.Normalize(it.ImageRef, l.imageBase),
		},
		Condition: l.conditionCode(it),
		Availability: ebay.Availability{
			ShipToLocationAvailability: ebay.ShipToLocationAvailability{Quantity: quantity},
		},
	}
	if err := l.market.CreateInventoryItem(ctx, token, sku, inv); err != nil {
		return nil, err
	}

	offerID, err := l.market.CreateOffer(ctx, token, &ebay.Offer{
		SKU:                 sku,
		Format:              defaultFormat,
		AvailableQuantity:   quantity,
		CategoryID:          defaults.CategoryID,
		ListingDescription:  it.Description,
		MerchantLocationKey: defaults.MerchantLocationKey,
		ListingPolicies: ebay.ListingPolicies{
			FulfillmentPolicyID: defaults.FulfillmentPolicyID,
			PaymentPolicyID:     defaults.PaymentPolicyID,
			ReturnPolicyID:      defaults.ReturnPolicyID,
		},
		PricingSummary: ebay.PricingSummary{
			Price: ebay.Amount{
				Value:    strconv.FormatFloat(*price, 'f', 2, 64),
				Currency: defaults.Currency,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	listingID, err := l.market.PublishOffer(ctx, token, offerID)
	if err != nil {
		l.log.Warn("offer created but not published",
			"item_id", it.ID, "sku", sku, "offer_id", offerID, "error", err)
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("ebay.sku", sku),
		attribute.String("ebay.offer_id", offerID),
	)

	rec := domain.ListingRecord{SKU: sku, OfferID: offerID, ListingID: listingID}
	if err := l.store.MarkItemListed(ctx, it.ID, rec); errors.Is(err, store.ErrAlreadyListed) {
		// Another process recorded its own offer first; ours must not stay live.
		l.withdrawDuplicate(ctx, token, it.ID, offerID)
		return nil, fmt.Errorf("item %s (offer %s): %w", it.ID, offerID, ErrAlreadyListed)
	} else if err != nil {
		l.log.Error("offer published but not recorded",
			"item_id", it.ID, "sku", sku, "offer_id", offerID, "listing_id", listingID, "error", err)
		return nil, fmt.Errorf("recording listing: %w", err)
	}

	ev := &notify.ListingEvent{
		Type:      notify.EventListed,
		Operation: "list",
		ItemID:    it.ID,
		Title:     it.Name,
		SKU:       sku,
		OfferID:   offerID,
		ListingID: listingID,
		Price:     strconv.FormatFloat(*price, 'f', 2, 64) + " " + defaults.Currency,
	}
	if len(inv.Product.ImageURLs) > 0 {
		ev.ImageURL = inv.Product.ImageURLs[0]
	}
	l.send(ctx, ev)

	return &Result{
		ItemID:     it.ID,
		SKU:        sku,
		OfferID:    offerID,
		ListingID:  listingID,
		EbayStatus: domain.EbayListed,
	}, nil
}

func (l *Lister) unlist(ctx context.Context, itemID string) (*Result, error) {
	it, err := l.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetching item: %w", err)
	}

	if it.EbaySKU == "" || it.EbayOfferID == "" {
		return nil, fmt.Errorf("item %s: %w", it.ID, ErrMissingOffer)
	}
	if !it.IsListed() {
		return nil, fmt.Errorf("item %s (offer %s): %w", it.ID, it.EbayOfferID, ErrNotListed)
	}

	token, err := l.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining token: %w", err)
	}

	if err := l.market.WithdrawOffer(ctx, token, it.EbayOfferID); err != nil {
		return nil, err
	}

	if err := l.store.MarkItemUnlisted(ctx, it.ID); err != nil {
		l.log.Error("offer withdrawn but not recorded",
			"item_id", it.ID, "offer_id", it.EbayOfferID, "error", err)
		return nil, fmt.Errorf("recording unlisting: %w", err)
	}

	l.send(ctx, &notify.ListingEvent{
		Type:      notify.EventUnlisted,
		Operation: "unlist",
		ItemID:    it.ID,
		Title:     it.Name,
		SKU:       it.EbaySKU,
		OfferID:   it.EbayOfferID,
	})

	return &Result{
		ItemID:     it.ID,
		SKU:        it.EbaySKU,
		OfferID:    it.EbayOfferID,
		EbayStatus: domain.EbayUnlisted,
	}, nil
}

func (l *Lister) withdrawDuplicate(ctx context.Context, token, itemID, offerID string) {
	if err := l.market.WithdrawOffer(ctx, token, offerID); err != nil {
		l.log.Error("duplicate offer published and not withdrawn",
			"item_id", itemID, "offer_id", offerID, "error", err)
		return
	}
	l.log.Warn("withdrew duplicate offer", "item_id", itemID, "offer_id", offerID)
}

// conditionCode maps the item's free-text condition through the active
// table. Fallbacks and table disagreements are logged, never resolved here.
func (l *Lister) conditionCode(it *domain.Item) string {
	code, known := l.conditions.Code(it.Condition)
	if !known {
		metrics.ConditionFallbacksTotal.Inc()
		l.log.Warn("unrecognized condition, using Used",
			"item_id", it.ID, "condition", it.Condition, "code", code)
	}

	if d, conflict := ebay.ConditionConflict(it.Condition); conflict {
		metrics.ConditionConflictsTotal.Inc()
		l.log.Warn("condition tables disagree",
			"item_id", it.ID,
			"condition", d.Input,
			"listing_code", d.ListingCode,
			"resolver_code", d.ResolverCode,
			"table", string(l.conditions),
			"using", code,
		)
	}
	return code
}

func (l *Lister) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
}

func (l *Lister) observe(ctx context.Context, span trace.Span, op, itemID string, err error) {
	if err == nil {
		metrics.ListingOperationsTotal.WithLabelValues(op, "success").Inc()
		l.log.Info("listing operation succeeded", "operation", op, "item_id", itemID)
		return
	}

	kind := Classify(err)
	span.SetAttributes(attribute.String("error.kind", string(kind)))
	span.RecordError(err)
	span.SetStatus(codes.Error, string(kind))

	metrics.ListingOperationsTotal.WithLabelValues(op, string(kind)).Inc()
	l.log.Error("listing operation failed",
		"operation", op, "item_id", itemID, "kind", kind, "error", err)

	// Data errors are the caller's to fix; operators only hear about the rest.
	if kind != KindData {
		l.send(ctx, &notify.ListingEvent{
			Type:      notify.EventFailed,
			Operation: op,
			ItemID:    itemID,
			Kind:      string(kind),
			Error:     err.Error(),
		})
	}
}

// send delivers ev best-effort; a failed notification never fails the
// operation.
func (l *Lister) send(ctx context.Context, ev *notify.ListingEvent) {
	if err := l.notifier.Notify(ctx, ev); err != nil {
		l.log.Warn("listing notification failed",
			"event", ev.Type, "item_id", ev.ItemID, "error", err)
	}
}
