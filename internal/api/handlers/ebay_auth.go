package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/bluberry/bluberry/internal/ebay"
	domain "github.com/bluberry/bluberry/pkg/types"
)

// Authorizer drives the marketplace consent flow and reports token state.
type Authorizer interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error)
	Status(ctx context.Context) (*domain.OAuthToken, error)
}

// AuthHandler serves the eBay OAuth endpoints.
type AuthHandler struct {
	auth       Authorizer
	configured bool
	log        *slog.Logger
	nowFunc    func() time.Time // for testing
}

// AuthOption configures the AuthHandler.
type AuthOption func(*AuthHandler)

// WithAuthLogger sets a custom logger.
func WithAuthLogger(l *slog.Logger) AuthOption {
	return func(h *AuthHandler) {
		h.log = l
	}
}

// WithAuthNowFunc overrides the clock used for expiry reporting.
func WithAuthNowFunc(f func() time.Time) AuthOption {
	return func(h *AuthHandler) {
		h.nowFunc = f
	}
}

// NewAuthHandler creates a new AuthHandler. configured reports whether
// client credentials are present.
func NewAuthHandler(a Authorizer, configured bool, opts ...AuthOption) *AuthHandler {
	h := &AuthHandler{
		auth:       a,
		configured: configured,
		log:        slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AuthURLInput optionally carries a caller-chosen state value.
type AuthURLInput struct {
	State string `query:"state" doc:"Opaque value echoed to the callback; generated when empty"`
}

// AuthURLOutput is the consent page to send the seller to.
type AuthURLOutput struct {
	Body struct {
		URL   string `json:"url"   doc:"eBay consent page URL"`
		State string `json:"state" doc:"State value the callback will carry"`
	}
}

// CallbackInput is what eBay appends to the redirect.
type CallbackInput struct {
	Code             string `query:"code"              doc:"Authorization code"`
	State            string `query:"state"             doc:"State from the consent URL"`
	Error            string `query:"error"             doc:"Set when the seller declined consent"`
	ErrorDescription string `query:"error_description" doc:"Provider description of Error"`
}

// AuthStatusOutput describes the stored token without exposing it.
type AuthStatusOutput struct {
	Body AuthStatus
}

// AuthStatus is the secret-free view of the token record.
type AuthStatus struct {
	Configured bool       `json:"configured"           doc:"Client credentials are present"`
	Authorized bool       `json:"authorized"           doc:"A refresh token is stored"`
	Expired    bool       `json:"expired"              doc:"The access token is past expiry; the next call refreshes it"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" doc:"Access token expiry"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" doc:"Last time the record was written"`
}

// AuthorizeURL returns the consent URL that starts the authorization flow.
func (h *AuthHandler) AuthorizeURL(_ context.Context, input *AuthURLInput) (*AuthURLOutput, error) {
	if !h.configured {
		return nil, huma.Error503ServiceUnavailable(ebay.ErrNotConfigured.Error())
	}

	state := input.State
	if state == "" {
		state = uuid.NewString()
	}

	resp := &AuthURLOutput{}
	resp.Body.URL = h.auth.AuthorizeURL(state)
	resp.Body.State = state
	return resp, nil
}

// Callback exchanges the authorization code and stores the first token pair.
func (h *AuthHandler) Callback(ctx context.Context, input *CallbackInput) (*AuthStatusOutput, error) {
	if input.Error != "" {
		h.log.Warn("marketplace consent declined",
			"error", input.Error, "description", input.ErrorDescription)
		return nil, huma.Error400BadRequest("consent declined: " + input.Error)
	}
	if input.Code == "" {
		return nil, huma.Error400BadRequest("code is required")
	}

	tok, err := h.auth.ExchangeCode(ctx, input.Code)
	switch {
	case errors.Is(err, ebay.ErrNotConfigured):
		return nil, huma.Error503ServiceUnavailable(err.Error())
	case err != nil:
		h.log.Error("authorization code exchange failed", "state", input.State, "error", err)
		return nil, huma.Error502BadGateway("authorization code exchange failed")
	}

	return &AuthStatusOutput{Body: h.status(tok)}, nil
}

// Status reports whether the marketplace account is connected.
func (h *AuthHandler) Status(ctx context.Context, _ *struct{}) (*AuthStatusOutput, error) {
	tok, err := h.auth.Status(ctx)
	switch {
	case errors.Is(err, ebay.ErrNotAuthorized):
		return &AuthStatusOutput{Body: AuthStatus{Configured: h.configured}}, nil
	case err != nil:
		return nil, huma.Error500InternalServerError("loading token status failed")
	}
	return &AuthStatusOutput{Body: h.status(tok)}, nil
}

func (h *AuthHandler) status(tok *domain.OAuthToken) AuthStatus {
	expiresAt, updatedAt := tok.ExpiresAt, tok.UpdatedAt
	return AuthStatus{
		Configured: h.configured,
		Authorized: tok.RefreshToken != "",
		Expired:    !tok.Valid(h.nowFunc(), 0),
		ExpiresAt:  &expiresAt,
		UpdatedAt:  &updatedAt,
	}
}

// RegisterAuthRoutes registers the eBay OAuth endpoints.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ebay-auth-url",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/auth/url",
		Summary:     "Get the eBay consent URL",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.AuthorizeURL)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-auth-callback",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/auth/callback",
		Summary:     "Complete the eBay consent flow",
		Description: "Exchanges the authorization code for a token pair and stores it.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-auth-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/auth/status",
		Summary:     "Get eBay authorization status",
		Tags:        []string{"ebay"},
	}, h.Status)
}
