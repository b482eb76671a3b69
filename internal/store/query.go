package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseItemsSelect = "SELECT " + itemColumns + " FROM items"

const countItemsSelect = "SELECT COUNT(*) FROM items"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an item
// query. It returns the data and count statements and the positional
// parameters they share.
func (q *ItemQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.EbayStatus != nil {
		conditions = append(conditions, fmt.Sprintf("ebay_status = $%d", paramIdx))
		args = append(args, *q.EbayStatus)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseItemsSelect, whereClause, limit, offset,
	)

	countSQL = countItemsSelect + whereClause

	return dataSQL, countSQL, args
}
