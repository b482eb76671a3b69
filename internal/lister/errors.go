package lister

import (
	"errors"

	"github.com/bluberry/bluberry/internal/breaker"
	"github.com/bluberry/bluberry/internal/ebay"
	"github.com/bluberry/bluberry/internal/store"
)

// Data errors. All of them are detected before any marketplace call.
var (
	ErrMissingOffer  = errors.New("missing sku/offer id: item was never listed")
	ErrNotListed     = errors.New("item is not currently listed")
	ErrAlreadyListed = errors.New("item is already listed; unlist it first")
	ErrMissingName   = errors.New("item name is required")
	ErrMissingPrice  = errors.New("a positive price is required to list an item")
)

// Kind classifies a failed list or unlist operation for the caller.
type Kind string

// Failure kinds.
const (
	KindConfig        Kind = "config"
	KindAuthorization Kind = "authorization"
	KindProvider      Kind = "provider"
	KindData          Kind = "data"
	KindInternal      Kind = "internal"
)

// Classify maps err onto the failure taxonomy. nil has no kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ebay.ErrNotConfigured):
		return KindConfig
	case errors.Is(err, ebay.ErrNotAuthorized), errors.Is(err, ebay.ErrRefreshFailed):
		return KindAuthorization
	case errors.Is(err, ErrMissingOffer),
		errors.Is(err, ErrNotListed),
		errors.Is(err, ErrAlreadyListed),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrMissingPrice),
		errors.Is(err, store.ErrNotFound):
		return KindData
	case errors.Is(err, ebay.ErrInventoryCreate),
		errors.Is(err, ebay.ErrOfferCreate),
		errors.Is(err, ebay.ErrPublish),
		errors.Is(err, ebay.ErrWithdraw),
		errors.Is(err, ebay.ErrDailyLimitReached),
		errors.Is(err, breaker.ErrOpen):
		return KindProvider
	default:
		return KindInternal
	}
}

// Outcome is the structured result returned to API callers for every list
// and unlist attempt. Failures never cross the API boundary as bare errors.
type Outcome struct {
	Success bool    `json:"success"           doc:"Whether the operation completed"`
	Message string  `json:"message"           doc:"Human-readable summary"`
	Kind    Kind    `json:"kind,omitempty"    doc:"Failure class: config, authorization, provider, data or internal" enum:"config,authorization,provider,data,internal"`
	Details string  `json:"details,omitempty" doc:"Diagnostic detail, including the raw provider response body"`
	Result  *Result `json:"result,omitempty"  doc:"Marketplace identifiers after a successful operation"`
}

// NewOutcome builds the caller-facing result of an operation.
func NewOutcome(res *Result, err error, successMsg string) Outcome {
	if err == nil {
		return Outcome{Success: true, Message: successMsg, Result: res}
	}

	kind := Classify(err)
	out := Outcome{Kind: kind, Details: err.Error()}

	switch kind {
	case KindConfig:
		out.Message = "marketplace integration is not configured"
	case KindAuthorization:
		out.Message = "reconnect your marketplace account"
	case KindProvider:
		out.Message = "the marketplace rejected the request"
		var apiErr *ebay.APIError
		if errors.As(err, &apiErr) {
			out.Details = apiErr.Body
		}
	case KindData:
		out.Message = err.Error()
	default:
		out.Message = "internal error"
		out.Details = ""
	}
	return out
}
