package lister

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/bluberry/bluberry/internal/ebay"
	ebayMocks "github.com/bluberry/bluberry/internal/ebay/mocks"
	"github.com/bluberry/bluberry/internal/notify"
	notifyMocks "github.com/bluberry/bluberry/internal/notify/mocks"
	"github.com/bluberry/bluberry/internal/store"
	storeMocks "github.com/bluberry/bluberry/internal/store/mocks"
	domain "github.com/bluberry/bluberry/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testDefaults = Defaults{
	CategoryID:          "38194",
	MerchantLocationKey: "warehouse-1",
	FulfillmentPolicyID: "fp-1",
	PaymentPolicyID:     "pp-1",
	ReturnPolicyID:      "rp-1",
}

type fixture struct {
	store  *storeMocks.MockStore
	tokens *ebayMocks.MockTokenProvider
	market *ebayMocks.MockMarketplace
	lister *Lister
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		store:  storeMocks.NewMockStore(t),
		tokens: ebayMocks.NewMockTokenProvider(t),
		market: ebayMocks.NewMockMarketplace(t),
	}
	base := []Option{WithLogger(quietLogger()), WithDefaults(testDefaults)}
	f.lister = New(f.store, f.tokens, f.market, append(base, opts...)...)
	return f
}

func ptr[T any](v T) *T { return &v }

func lampItem() *domain.Item {
	return &domain.Item{
		ID:          "item-1",
		Name:        "Lamp",
		Description: "Brass desk lamp",
		Condition:   "good",
		ImageRef:    `["https://cdn.example.com/lamp.jpg"]`,
		Price:       ptr(25.0),
		Status:      domain.ItemPending,
		EbayStatus:  domain.EbayUnlisted,
	}
}

func listedItem() *domain.Item {
	it := lampItem()
	it.Status = domain.ItemListed
	it.EbayStatus = domain.EbayListed
	it.ListedOnEbay = true
	it.EbaySKU = "BB-item-1"
	it.EbayOfferID = "offer-1"
	return it
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	l := New(nil, nil, nil)
	assert.Equal(t, ebay.ListingTable, l.conditions)
	assert.Equal(t, defaultTimeout, l.timeout)
	assert.Equal(t, "USD", l.defaults.Currency)
	assert.NotNil(t, l.log)
	assert.IsType(t, &notify.NoOpNotifier{}, l.notifier)
}

func TestSKU(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "BB-5f0c", SKU("5f0c"))
}

func TestList_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.MatchedBy(func(inv *ebay.InventoryItem) bool {
			return inv.Condition == "5000" &&
				inv.Product.Title == "Lamp" &&
				len(inv.Product.ImageURLs) == 1 &&
				inv.Availability.ShipToLocationAvailability.Quantity == 1
		})).
		Return(nil).Once()
	f.market.EXPECT().
		CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o *ebay.Offer) bool {
			return o.SKU == "BB-item-1" &&
				o.Format == "FIXED_PRICE" &&
				o.CategoryID == "38194" &&
				o.ListingPolicies.PaymentPolicyID == "pp-1" &&
				o.PricingSummary.Price == ebay.Amount{Value: "25.00", Currency: "USD"}
		})).
		Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().
		MarkItemListed(mock.Anything, "item-1", domain.ListingRecord{
			SKU: "BB-item-1", OfferID: "offer-1", ListingID: "listing-1",
		}).
		Return(nil).Once()

	res, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, &Result{
		ItemID:     "item-1",
		SKU:        "BB-item-1",
		OfferID:    "offer-1",
		ListingID:  "listing-1",
		EbayStatus: domain.EbayListed,
	}, res)
}

func TestList_ResolverTable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, WithConditionTable(ebay.ResolverTable))
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.MatchedBy(func(inv *ebay.InventoryItem) bool {
			return inv.Condition == "3000"
		})).
		Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("", nil).Once()
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).Return(nil).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.NoError(t, err)
}

func TestList_UnknownConditionFallsBackToUsed(t *testing.T) {
	t.Parallel()

	it := lampItem()
	it.Condition = "gently loved"

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(it, nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.MatchedBy(func(inv *ebay.InventoryItem) bool {
			return inv.Condition == ebay.ConditionUsed
		})).
		Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).Return(nil).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.NoError(t, err)
}

func TestList_OverridesFromOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.MatchedBy(func(inv *ebay.InventoryItem) bool {
			return inv.Availability.ShipToLocationAvailability.Quantity == 3
		})).
		Return(nil).Once()
	f.market.EXPECT().
		CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o *ebay.Offer) bool {
			return o.CategoryID == "99" && o.AvailableQuantity == 3 &&
				o.PricingSummary.Price.Value == "19.99"
		})).
		Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).Return(nil).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{
		Price:      ptr(19.99),
		Quantity:   3,
		CategoryID: "99",
	})
	require.NoError(t, err)
}

func TestList_NewOfferIDAfterUnlist(t *testing.T) {
	t.Parallel()

	it := lampItem()
	it.Status = domain.ItemUnlisted
	it.EbaySKU = "BB-item-1"
	it.EbayOfferID = "old-offer"

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(it, nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("new-offer", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "new-offer").Return("listing-2", nil).Once()
	f.store.EXPECT().
		MarkItemListed(mock.Anything, "item-1", mock.MatchedBy(func(rec domain.ListingRecord) bool {
			return rec.OfferID == "new-offer"
		})).
		Return(nil).Once()

	res, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, "old-offer", res.OfferID)
}

func TestList_RefreshFailedStopsBeforeMarketplace(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).
		Return("", fmt.Errorf("%w: token request failed (status 400): invalid_grant", ebay.ErrRefreshFailed)).
		Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ebay.ErrRefreshFailed)
	assert.Equal(t, KindAuthorization, Classify(err))
}

func TestList_RejectedBeforeNetwork(t *testing.T) {
	t.Parallel()

	noName := lampItem()
	noName.Name = ""
	noPrice := lampItem()
	noPrice.Price = nil
	zeroPrice := lampItem()
	zeroPrice.Price = ptr(0.0)

	tests := []struct {
		name     string
		item     *domain.Item
		getErr   error
		defaults *Defaults
		wantErr  error
		wantKind Kind
	}{
		{name: "already listed", item: listedItem(), wantErr: ErrAlreadyListed, wantKind: KindData},
		{name: "missing name", item: noName, wantErr: ErrMissingName, wantKind: KindData},
		{name: "missing price", item: noPrice, wantErr: ErrMissingPrice, wantKind: KindData},
		{name: "zero price", item: zeroPrice, wantErr: ErrMissingPrice, wantKind: KindData},
		{
			name:     "item not found",
			getErr:   fmt.Errorf("item item-1: %w", store.ErrNotFound),
			wantErr:  store.ErrNotFound,
			wantKind: KindData,
		},
		{
			name:     "listing policies not configured",
			item:     lampItem(),
			defaults: &Defaults{CategoryID: "1"},
			wantErr:  ebay.ErrNotConfigured,
			wantKind: KindConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []Option
			if tt.defaults != nil {
				opts = append(opts, WithDefaults(*tt.defaults))
			}
			f := newFixture(t, opts...)
			f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(tt.item, tt.getErr).Once()

			_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, Classify(err))
		})
	}
}

func TestList_PublishFailureLeavesItemUnlisted(t *testing.T) {
	t.Parallel()

	publishErr := &ebay.APIError{
		Op:         ebay.ErrPublish,
		StatusCode: http.StatusBadRequest,
		Body:       `{"errors":[{"errorId":25007}]}`,
	}

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("", publishErr).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ebay.ErrPublish)
	assert.Equal(t, KindProvider, Classify(err))
}

func TestList_RelistSurfacesExistingOfferRejection(t *testing.T) {
	t.Parallel()

	// Unlisted after a previous listing: same sku, old offer id kept.
	it := listedItem()
	it.ListedOnEbay = false
	it.EbayStatus = domain.EbayUnlisted

	offerErr := &ebay.APIError{
		Op:         ebay.ErrOfferCreate,
		StatusCode: http.StatusBadRequest,
		Body:       `{"errors":[{"errorId":25002,"message":"Offer entity already exists"}]}`,
	}

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(it, nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.MatchedBy(func(o *ebay.Offer) bool {
		return o.SKU == "BB-item-1"
	})).Return("", offerErr).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ebay.ErrOfferCreate)

	out := NewOutcome(nil, err, "")
	assert.Equal(t, KindProvider, out.Kind)
	assert.Contains(t, out.Details, "Offer entity already exists")
}

func TestList_InventoryFailureStopsSequence(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).
		Return(&ebay.APIError{Op: ebay.ErrInventoryCreate, StatusCode: 500, Body: "boom"}).
		Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ebay.ErrInventoryCreate)
}

func TestList_RecordFailureIsInternal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().
		MarkItemListed(mock.Anything, "item-1", mock.Anything).
		Return(errors.New("connection reset")).
		Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.Error(t, err)
	assert.Equal(t, KindInternal, Classify(err))
}

func TestList_ConcurrentCallsPublishOneOffer(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		item = lampItem()
	)
	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").
		RunAndReturn(func(context.Context, string) (*domain.Item, error) {
			mu.Lock()
			defer mu.Unlock()
			cp := *item
			return &cp, nil
		}).Times(2)
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, rec domain.ListingRecord) error {
			mu.Lock()
			defer mu.Unlock()
			item.EbaySKU, item.EbayOfferID = rec.SKU, rec.OfferID
			item.EbayStatus, item.ListedOnEbay = domain.EbayListed, true
			return nil
		}).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.lister.List(context.Background(), "item-1", ListOptions{})
		}()
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyListed):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "offer-1", item.EbayOfferID)
	assert.Zero(t, f.lister.locks.size())
}

func TestList_RecordConflictWithdrawsDuplicate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-2", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-2").Return("listing-2", nil).Once()
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).
		Return(fmt.Errorf("item item-1: %w", store.ErrAlreadyListed)).Once()
	f.market.EXPECT().WithdrawOffer(mock.Anything, "tok", "offer-2").Return(nil).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ErrAlreadyListed)
	assert.Equal(t, KindData, Classify(err))
}

func TestItemLocks_SerializesPerID(t *testing.T) {
	t.Parallel()

	var k itemLocks
	release := k.acquire("a")

	other := k.acquire("b")
	other()

	acquired := make(chan struct{})
	go func() {
		r := k.acquire("a")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire of the same id did not block")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	<-acquired
	assert.Eventually(t, func() bool { return k.size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestList_DetachedFromCallerCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	live := func(c context.Context) bool { return c.Err() == nil }
	liveCtx := mock.MatchedBy(func(c context.Context) bool { return live(c) })

	f := newFixture(t, WithTimeout(5*time.Second))
	f.store.EXPECT().GetItem(liveCtx, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(liveCtx).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(liveCtx, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(liveCtx, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(liveCtx, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().MarkItemListed(liveCtx, "item-1", mock.Anything).Return(nil).Once()

	_, err := f.lister.List(ctx, "item-1", ListOptions{})
	require.NoError(t, err)
}

func TestUnlist_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(listedItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().WithdrawOffer(mock.Anything, "tok", "offer-1").Return(nil).Once()
	f.store.EXPECT().MarkItemUnlisted(mock.Anything, "item-1").Return(nil).Once()

	res, err := f.lister.Unlist(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EbayUnlisted, res.EbayStatus)
	assert.Equal(t, "offer-1", res.OfferID, "offer id kept")
}

func TestUnlist_MissingOfferMakesNoCalls(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()

	_, err := f.lister.Unlist(context.Background(), "item-1")
	require.ErrorIs(t, err, ErrMissingOffer)
	assert.Equal(t, KindData, Classify(err))
}

func TestUnlist_AlreadyUnlisted(t *testing.T) {
	t.Parallel()

	it := listedItem()
	it.EbayStatus = domain.EbayUnlisted
	it.ListedOnEbay = false

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(it, nil).Once()

	_, err := f.lister.Unlist(context.Background(), "item-1")
	require.ErrorIs(t, err, ErrNotListed)
}

func TestUnlist_WithdrawFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(listedItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().
		WithdrawOffer(mock.Anything, "tok", "offer-1").
		Return(&ebay.APIError{Op: ebay.ErrWithdraw, StatusCode: 404, Body: "offer not found"}).
		Once()

	_, err := f.lister.Unlist(context.Background(), "item-1")
	require.ErrorIs(t, err, ebay.ErrWithdraw)
	assert.Equal(t, KindProvider, Classify(err))
}

func TestUnlist_NotAuthorized(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(listedItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("", ebay.ErrNotAuthorized).Once()

	_, err := f.lister.Unlist(context.Background(), "item-1")
	require.ErrorIs(t, err, ebay.ErrNotAuthorized)
	assert.Equal(t, KindAuthorization, Classify(err))
}

func TestList_NotifiesListed(t *testing.T) {
	t.Parallel()

	mn := notifyMocks.NewMockNotifier(t)
	mn.EXPECT().
		Notify(mock.Anything, &notify.ListingEvent{
			Type:      notify.EventListed,
			Operation: "list",
			ItemID:    "item-1",
			Title:     "Lamp",
			SKU:       "BB-item-1",
			OfferID:   "offer-1",
			ListingID: "listing-1",
			Price:     "25.00 USD",
			ImageURL:  "https://cdn.example.com/lamp.jpg",
		}).
		Return(errors.New("discord returned 500")).
		Once()

	f := newFixture(t, WithNotifier(mn))
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).Return(nil).Once()
	f.market.EXPECT().CreateOffer(mock.Anything, "tok", mock.Anything).Return("offer-1", nil).Once()
	f.market.EXPECT().PublishOffer(mock.Anything, "tok", "offer-1").Return("listing-1", nil).Once()
	f.store.EXPECT().MarkItemListed(mock.Anything, "item-1", mock.Anything).Return(nil).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.NoError(t, err, "notification failure must not fail the listing")
}

func TestUnlist_NotifiesUnlisted(t *testing.T) {
	t.Parallel()

	mn := notifyMocks.NewMockNotifier(t)
	mn.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(ev *notify.ListingEvent) bool {
			return ev.Type == notify.EventUnlisted && ev.OfferID == "offer-1"
		})).
		Return(nil).
		Once()

	f := newFixture(t, WithNotifier(mn))
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(listedItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	f.market.EXPECT().WithdrawOffer(mock.Anything, "tok", "offer-1").Return(nil).Once()
	f.store.EXPECT().MarkItemUnlisted(mock.Anything, "item-1").Return(nil).Once()

	_, err := f.lister.Unlist(context.Background(), "item-1")
	require.NoError(t, err)
}

func TestList_FailureNotifications(t *testing.T) {
	t.Parallel()

	t.Run("provider failure is reported", func(t *testing.T) {
		t.Parallel()

		mn := notifyMocks.NewMockNotifier(t)
		mn.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(ev *notify.ListingEvent) bool {
				return ev.Type == notify.EventFailed &&
					ev.Operation == "list" &&
					ev.Kind == string(KindProvider) &&
					ev.Error != ""
			})).
			Return(nil).
			Once()

		f := newFixture(t, WithNotifier(mn))
		f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
		f.tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
		f.market.EXPECT().
			CreateInventoryItem(mock.Anything, "tok", "BB-item-1", mock.Anything).
			Return(&ebay.APIError{Op: ebay.ErrInventoryCreate, StatusCode: 400, Body: "bad"}).
			Once()

		_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
		require.Error(t, err)
	})

	t.Run("data errors stay quiet", func(t *testing.T) {
		t.Parallel()

		// No Notify expectation: the mock fails the test if it is called.
		f := newFixture(t, WithNotifier(notifyMocks.NewMockNotifier(t)))
		f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(listedItem(), nil).Once()

		_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
		require.ErrorIs(t, err, ErrAlreadyListed)
	})
}

func TestList_RecordsSpan(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	f := newFixture(t, WithTracerProvider(tp))
	f.store.EXPECT().GetItem(mock.Anything, "item-1").Return(lampItem(), nil).Once()
	f.tokens.EXPECT().Token(mock.Anything).Return("", ebay.ErrNotAuthorized).Once()

	_, err := f.lister.List(context.Background(), "item-1", ListOptions{})
	require.ErrorIs(t, err, ebay.ErrNotAuthorized)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lister.List", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("item.id", "item-1"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.kind", string(KindAuthorization)))
}
