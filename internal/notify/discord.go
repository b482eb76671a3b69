package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bluberry/bluberry/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // listed
	colorOrange = 0xE67E22 // unlisted
	colorRed    = 0xE74C3C // failed

	listingURLPrefix = "https://www.ebay.com/itm/"
	maxErrorLen      = 1024
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// Notify sends ev as a single Discord embed.
func (d *DiscordNotifier) Notify(ctx context.Context, ev *ListingEvent) error {
	start := time.Now()
	err := d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{buildEmbed(ev)}})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
	}
	return err
}

func buildEmbed(ev *ListingEvent) discordEmbed {
	name := ev.Title
	if name == "" {
		name = ev.ItemID
	}

	embed := discordEmbed{Fields: []discordEmbedField{
		{Name: "Item", Value: ev.ItemID, Inline: true},
	}}
	addField := func(name, value string) {
		if value != "" {
			embed.Fields = append(embed.Fields, discordEmbedField{Name: name, Value: value, Inline: true})
		}
	}

	switch ev.Type {
	case EventListed:
		embed.Title = "Listed: " + name
		embed.Color = colorGreen
		if ev.ListingID != "" {
			embed.URL = listingURLPrefix + ev.ListingID
		}
	case EventUnlisted:
		embed.Title = "Unlisted: " + name
		embed.Color = colorOrange
	default:
		embed.Title = fmt.Sprintf("%s failed: %s", ev.Operation, name)
		embed.Color = colorRed
		embed.Description = truncate(ev.Error, maxErrorLen)
		addField("Kind", ev.Kind)
	}

	addField("SKU", ev.SKU)
	addField("Offer", ev.OfferID)
	addField("Price", ev.Price)

	if ev.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: ev.ImageURL}
	}
	return embed
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
