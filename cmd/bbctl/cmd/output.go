package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/bluberry/bluberry/internal/api/client"
	domain "github.com/bluberry/bluberry/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemsTable(w io.Writer, items []domain.Item) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tCONDITION\tPRICE\tSTATUS\tEBAY\tOFFER\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			truncate(it.Name, 40),
			dash(it.Condition),
			price(it.Price),
			it.Status,
			it.EbayStatus,
			dash(it.EbayOfferID),
		)
	}
	return tw.finish()
}

func printItemDetail(w io.Writer, it *domain.Item) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", it.ID)
	tw.writef("Name:\t%s\n", it.Name)
	tw.writef("Condition:\t%s\n", dash(it.Condition))
	tw.writef("Price:\t%s\n", price(it.Price))
	tw.writef("Contact:\t%s\n", it.Email)
	tw.writef("Status:\t%s\n", it.Status)
	tw.writef("eBay Status:\t%s\n", it.EbayStatus)
	tw.writef("SKU:\t%s\n", dash(it.EbaySKU))
	tw.writef("Offer ID:\t%s\n", dash(it.EbayOfferID))
	tw.writef("Submitted:\t%s\n", it.CreatedAt.Format(timeLayout))
	return tw.finish()
}

func printOutcome(w io.Writer, out *apiclient.Outcome) error {
	tw := newTabWriter(w)
	tw.writef("Success:\t%v\n", out.Success)
	tw.writef("Message:\t%s\n", out.Message)
	if out.Kind != "" {
		tw.writef("Kind:\t%s\n", out.Kind)
	}
	if out.Details != "" {
		tw.writef("Details:\t%s\n", out.Details)
	}
	if r := out.Result; r != nil {
		tw.writef("SKU:\t%s\n", r.SKU)
		tw.writef("Offer ID:\t%s\n", r.OfferID)
		if r.ListingID != "" {
			tw.writef("Listing ID:\t%s\n", r.ListingID)
		}
		tw.writef("eBay Status:\t%s\n", r.EbayStatus)
	}
	return tw.finish()
}

func printAuthStatus(w io.Writer, st *apiclient.AuthStatus) error {
	tw := newTabWriter(w)
	tw.writef("Configured:\t%v\n", st.Configured)
	tw.writef("Authorized:\t%v\n", st.Authorized)
	if st.ExpiresAt != nil {
		tw.writef("Expires:\t%s\n", st.ExpiresAt.Local().Format(timeLayout))
		tw.writef("Expired:\t%v\n", st.Expired)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	if q.ResetAt != nil {
		tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format(timeLayout))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func price(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *p)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
