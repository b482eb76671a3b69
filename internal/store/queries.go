package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Item queries.
const (
	itemColumns = `id::text, item_name, item_description, item_condition,
		COALESCE(image_url, ''), contact_email, COALESCE(contact_phone, ''), price, status,
		COALESCE(ebay_sku, ''), COALESCE(ebay_offer_id, ''), ebay_status, listed_on_ebay,
		created_at, updated_at`

	queryInsertItem = `
		INSERT INTO items (
			item_name, item_description, item_condition, image_url,
			contact_email, contact_phone, price, status,
			ebay_status, listed_on_ebay, created_at, updated_at
		) VALUES (
			@item_name, @item_description, @item_condition, @image_url,
			@contact_email, @contact_phone, @price, @status,
			'unlisted', false, now(), now()
		)
		RETURNING id::text, ebay_status, listed_on_ebay, created_at, updated_at`

	queryGetItem = `SELECT ` + itemColumns + ` FROM items WHERE id::text = $1`

	queryMarkItemListed = `
		UPDATE items SET
			ebay_sku = $2,
			ebay_offer_id = $3,
			ebay_listing_id = NULLIF($4, ''),
			ebay_status = 'listed',
			listed_on_ebay = true,
			status = 'listed',
			updated_at = now()
		WHERE id::text = $1 AND NOT listed_on_ebay`

	queryItemListed = `SELECT listed_on_ebay FROM items WHERE id::text = $1`

	queryMarkItemUnlisted = `
		UPDATE items SET
			ebay_status = 'unlisted',
			listed_on_ebay = false,
			status = 'unlisted',
			updated_at = now()
		WHERE id::text = $1`
)

// Token queries.
const (
	queryGetToken = `
		SELECT id, access_token, refresh_token, expires_at, updated_at
		FROM ebay_tokens
		WHERE id::text = $1`

	queryUpsertToken = `
		INSERT INTO ebay_tokens (id, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at`
)
