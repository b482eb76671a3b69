package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestItemQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ItemQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: ItemQuery{},
			wantDataHas: []string{
				"FROM items",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM items",
		},
		{
			name:         "status filter",
			query:        ItemQuery{Status: ptr("pending")},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM items WHERE status = $1",
			wantArgs:     []any{"pending"},
		},
		{
			name:         "ebay status filter",
			query:        ItemQuery{EbayStatus: ptr("listed")},
			wantDataHas:  []string{"WHERE ebay_status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM items WHERE ebay_status = $1",
			wantArgs:     []any{"listed"},
		},
		{
			name: "both filters with correct parameter numbering",
			query: ItemQuery{
				Status:     ptr("listed"),
				EbayStatus: ptr("listed"),
			},
			wantDataHas:  []string{"status = $1 AND ebay_status = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM items WHERE status = $1 AND ebay_status = $2",
			wantArgs:     []any{"listed", "listed"},
		},
		{
			name:        "custom limit and offset",
			query:       ItemQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "negative limit defaults to 50",
			query:       ItemQuery{Limit: -10},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       ItemQuery{Limit: 1000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset defaults to 0",
			query:       ItemQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}
