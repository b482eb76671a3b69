package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bluberry/bluberry/internal/api/handlers"
	mw "github.com/bluberry/bluberry/internal/api/middleware"
	"github.com/bluberry/bluberry/internal/breaker"
	"github.com/bluberry/bluberry/internal/config"
	"github.com/bluberry/bluberry/internal/ebay"
	"github.com/bluberry/bluberry/internal/lister"
	"github.com/bluberry/bluberry/internal/notify"
	"github.com/bluberry/bluberry/internal/scheduler"
	"github.com/bluberry/bluberry/internal/store"
)

// app holds the wired server components.
type app struct {
	echo      *echo.Echo
	scheduler *scheduler.Scheduler // nil when keep-alive is disabled
}

// newApp wires the store into the token provider, Sell client, lister and
// HTTP routes.
func newApp(cfg *config.Config, s store.Store, log *slog.Logger) (*app, error) {
	ec := &cfg.Ebay
	httpClient := &http.Client{
		Timeout:   ec.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	tokens := ebay.NewRefreshingTokenProvider(ec.ClientID, ec.ClientSecret, s,
		ebay.WithTokenURL(ec.TokenURL),
		ebay.WithAuthURL(ec.AuthURL),
		ebay.WithRedirectURI(ec.RedirectURI),
		ebay.WithScopes(ec.Scopes...),
		ebay.WithHTTPClient(httpClient),
		ebay.WithRefreshSkew(ec.RefreshSkew),
		ebay.WithRefreshRetries(ec.Retry.MaxRetries, ec.Retry.Interval),
		ebay.WithLogger(log.With("component", "ebay-auth")),
	)

	rl := ebay.NewRateLimiter(ec.RateLimit.PerSecond, ec.RateLimit.Burst, ec.RateLimit.DailyLimit)

	sellOpts := []ebay.SellOption{
		ebay.WithSellURL(ec.SellURL),
		ebay.WithMarketplace(ec.Marketplace),
		ebay.WithContentLanguage(ec.ContentLanguage),
		ebay.WithSellHTTPClient(httpClient),
		ebay.WithRateLimiter(rl),
		ebay.WithInventoryRetries(ec.Retry.MaxRetries, ec.Retry.Interval),
		ebay.WithSellLogger(log.With("component", "ebay-sell")),
	}
	if ec.Breaker.Threshold > 0 {
		sellOpts = append(sellOpts, ebay.WithBreaker(
			breaker.New("ebay-sell", ec.Breaker.Threshold, ec.Breaker.Cooldown),
		))
	}
	sell := ebay.NewSellClient(sellOpts...)

	ls := lister.New(s, tokens, sell,
		lister.WithLogger(log.With("component", "lister")),
		lister.WithNotifier(newNotifier(cfg.Notifications, log)),
		lister.WithConditionTable(ebay.ConditionTable(ec.ConditionTable)),
		lister.WithImageBaseURL(cfg.Storage.PublicBaseURL),
		lister.WithTimeout(ec.OperationTimeout),
		lister.WithDefaults(lister.Defaults{
			CategoryID:          ec.Listing.CategoryID,
			MerchantLocationKey: ec.Listing.MerchantLocationKey,
			FulfillmentPolicyID: ec.Listing.FulfillmentPolicyID,
			PaymentPolicyID:     ec.Listing.PaymentPolicyID,
			ReturnPolicyID:      ec.Listing.ReturnPolicyID,
			Currency:            ec.Listing.Currency,
		}),
	)

	a := &app{echo: newEcho(log)}
	registerRoutes(a.echo, s, ls, tokens, ec.Configured(), rl, log)

	if iv := cfg.Schedule.TokenRefreshInterval; iv > 0 {
		sched, err := scheduler.New(tokens, iv, log.With("component", "scheduler"))
		if err != nil {
			return nil, fmt.Errorf("creating scheduler: %w", err)
		}
		a.scheduler = sched
	}

	if !ec.Configured() {
		log.Warn("eBay credentials not configured; listing endpoints will report a config error")
	}
	return a, nil
}

func newNotifier(cfg config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if cfg.Discord.Enabled {
		log.Info("discord notifications enabled")
		return notify.NewDiscordNotifier(cfg.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log.With("component", "notify"))
}

func newEcho(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("bluberry")))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())
	return e
}

func registerRoutes(
	e *echo.Echo,
	s store.Store,
	ls handlers.ItemLister,
	auth handlers.Authorizer,
	configured bool,
	rl *ebay.RateLimiter,
	log *slog.Logger,
) {
	health := handlers.NewHealthHandler(s)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("BluBerry API", Version)
	humaCfg.Info.Description = "Item intake and eBay listing for BluBerry."
	api := humaecho.New(e, humaCfg)

	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(s))
	handlers.RegisterListingRoutes(api, handlers.NewListingHandler(ls))
	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(auth, configured,
		handlers.WithAuthLogger(log.With("component", "auth-handler")),
	))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))
}
