package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/bluberry/bluberry/internal/metrics"
	"github.com/bluberry/bluberry/internal/store"
	domain "github.com/bluberry/bluberry/pkg/types"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthURL  = "https://auth.ebay.com/oauth2/authorize"
	defaultScope    = "https://api.ebay.com/oauth/api_scope/sell.inventory"
)

// RefreshingTokenProvider implements TokenProvider on top of the persisted
// singleton token record. An expired access token is exchanged for a new
// pair using the stored refresh token and the result is written back.
// Concurrent callers that observe the same expired token share one refresh.
type RefreshingTokenProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	authURL      string
	scopes       []string

	store  TokenStore
	client *http.Client
	log    *slog.Logger

	skew          time.Duration
	maxRetries    uint64
	retryInterval time.Duration
	nowFunc       func() time.Time // for testing

	flight singleflight.Group
}

// OAuthOption configures the RefreshingTokenProvider.
type OAuthOption func(*RefreshingTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.tokenURL = u
	}
}

// WithAuthURL overrides the default eBay consent endpoint.
func WithAuthURL(u string) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.authURL = u
	}
}

// WithRedirectURI sets the redirect URI (eBay RuName) used by the
// authorization code grant.
func WithRedirectURI(u string) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.redirectURI = u
	}
}

// WithScopes overrides the requested OAuth scopes.
func WithScopes(scopes ...string) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.scopes = scopes
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.client = c
	}
}

// WithRefreshSkew treats tokens expiring within d as already expired.
func WithRefreshSkew(d time.Duration) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.skew = d
	}
}

// WithRefreshRetries sets how many extra attempts a refresh gets after a
// transport failure or 5xx response.
func WithRefreshRetries(n uint64, interval time.Duration) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.maxRetries = n
		p.retryInterval = interval
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.log = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *RefreshingTokenProvider) {
		p.nowFunc = f
	}
}

// NewRefreshingTokenProvider creates a token provider for the given client
// credentials backed by s.
func NewRefreshingTokenProvider(
	clientID, clientSecret string,
	s TokenStore,
	opts ...OAuthOption,
) *RefreshingTokenProvider {
	p := &RefreshingTokenProvider{
		clientID:      clientID,
		clientSecret:  clientSecret,
		tokenURL:      defaultTokenURL,
		authURL:       defaultAuthURL,
		scopes:        []string{defaultScope},
		store:         s,
		client:        &http.Client{Timeout: 10 * time.Second},
		log:           slog.Default(),
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultRetryInterval,
		nowFunc:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a currently valid access token, refreshing it first when
// the stored one has expired.
func (p *RefreshingTokenProvider) Token(ctx context.Context) (string, error) {
	return p.token(ctx, p.skew)
}

// WarmToken refreshes the stored token when it expires within the given
// window, even though it is still valid now.
func (p *RefreshingTokenProvider) WarmToken(ctx context.Context, within time.Duration) (string, error) {
	return p.token(ctx, max(p.skew, within))
}

func (p *RefreshingTokenProvider) token(ctx context.Context, skew time.Duration) (string, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return "", ErrNotConfigured
	}

	tok, err := p.load(ctx)
	if err != nil {
		return "", err
	}

	if tok.Valid(p.nowFunc(), skew) {
		return tok.AccessToken, nil
	}

	v, err, _ := p.flight.Do(domain.TokenSingletonID, func() (any, error) {
		// Another flight may have finished between our read and this one.
		current, err := p.load(ctx)
		if err != nil {
			return "", err
		}
		if current.Valid(p.nowFunc(), skew) {
			return current.AccessToken, nil
		}
		return p.refresh(ctx, current)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// Status returns the stored token record without refreshing it.
func (p *RefreshingTokenProvider) Status(ctx context.Context) (*domain.OAuthToken, error) {
	return p.load(ctx)
}

// AuthorizeURL returns the consent page URL that starts the authorization
// code flow. state is echoed back to the callback.
func (p *RefreshingTokenProvider) AuthorizeURL(state string) string {
	q := url.Values{
		"client_id":     {p.clientID},
		"redirect_uri":  {p.redirectURI},
		"response_type": {"code"},
		"scope":         {strings.Join(p.scopes, " ")},
	}
	if state != "" {
		q.Set("state", state)
	}
	return p.authURL + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for the first token pair and
// persists it as the singleton record.
func (p *RefreshingTokenProvider) ExchangeCode(
	ctx context.Context,
	code string,
) (*domain.OAuthToken, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return nil, ErrNotConfigured
	}
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {p.redirectURI},
	}

	resp, err := p.postToken(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	if resp.RefreshToken == "" {
		return nil, errors.New("exchanging authorization code: response carried no refresh token")
	}

	tok := p.newRecord(resp, "")
	if err := p.store.UpsertToken(ctx, tok); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}

	p.log.Info("marketplace account authorized", "expires_at", tok.ExpiresAt)
	return tok, nil
}

func (p *RefreshingTokenProvider) load(ctx context.Context) (*domain.OAuthToken, error) {
	tok, err := p.store.GetToken(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("loading token: %w", err)
	}
	if tok.RefreshToken == "" {
		return nil, ErrNotAuthorized
	}
	return tok, nil
}

func (p *RefreshingTokenProvider) refresh(
	ctx context.Context,
	current *domain.OAuthToken,
) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {current.RefreshToken},
		"scope":         {strings.Join(p.scopes, " ")},
	}

	resp, err := p.postToken(ctx, form)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		p.log.Error("token refresh failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	tok := p.newRecord(resp, current.RefreshToken)
	if err := p.store.UpsertToken(ctx, tok); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("%w: saving token: %w", ErrRefreshFailed, err)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	p.log.Info("token refreshed", "expires_at", tok.ExpiresAt)

	return tok.AccessToken, nil
}

// newRecord builds the singleton record from a token response. eBay does not
// rotate refresh tokens on refresh, so the previous one is kept when absent.
func (p *RefreshingTokenProvider) newRecord(
	resp *tokenResponse,
	previousRefresh string,
) *domain.OAuthToken {
	now := p.nowFunc()
	refresh := resp.RefreshToken
	if refresh == "" {
		refresh = previousRefresh
	}
	return &domain.OAuthToken{
		ID:           domain.TokenSingletonID,
		AccessToken:  resp.AccessToken,
		RefreshToken: refresh,
		ExpiresAt:    now.Add(time.Duration(resp.ExpiresIn) * time.Second),
		UpdatedAt:    now,
	}
}

// postToken calls the token endpoint, retrying transport failures and 5xx
// responses. Both grants are safe to repeat.
func (p *RefreshingTokenProvider) postToken(
	ctx context.Context,
	form url.Values,
) (*tokenResponse, error) {
	var out *tokenResponse

	err := retryIdempotent(ctx, p.maxRetries, p.retryInterval, func() error {
		resp, status, err := p.doTokenRequest(ctx, form)
		if err != nil {
			if status != 0 && !retryable(status) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *RefreshingTokenProvider) doTokenRequest(
	ctx context.Context,
	form url.Values,
) (*tokenResponse, int, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(p.clientID + ":" + p.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return nil, resp.StatusCode, fmt.Errorf(
			"token request failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, resp.StatusCode, errors.New("token response carried no access token")
	}

	return &tokenResp, resp.StatusCode, nil
}
