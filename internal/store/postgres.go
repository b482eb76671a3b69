package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/bluberry/bluberry/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// poolSize <= 0 uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize) //nolint:gosec // pool size from validated config
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateItem inserts a newly submitted item and fills in its generated
// fields.
func (s *PostgresStore) CreateItem(ctx context.Context, it *domain.Item) error {
	if it.Status == "" {
		it.Status = domain.ItemPending
	}

	args := pgx.NamedArgs{
		"item_name":        it.Name,
		"item_description": it.Description,
		"item_condition":   it.Condition,
		"image_url":        it.ImageRef,
		"contact_email":    it.Email,
		"contact_phone":    it.Phone,
		"price":            it.Price,
		"status":           string(it.Status),
	}

	err := s.pool.QueryRow(ctx, queryInsertItem, args).Scan(
		&it.ID, &it.EbayStatus, &it.ListedOnEbay, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by id.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	it := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return it, nil
}

// ListItems queries items with optional filters, returning results and the
// total count.
func (s *PostgresStore) ListItems(
	ctx context.Context,
	q *ItemQuery,
) ([]domain.Item, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, 0, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating items: %w", err)
	}

	return items, total, nil
}

// MarkItemListed records the marketplace identifiers of a published offer.
// It only applies to an item that is not listed, so a second concurrent
// listing cannot overwrite the first offer id.
func (s *PostgresStore) MarkItemListed(
	ctx context.Context,
	id string,
	rec domain.ListingRecord,
) error {
	tag, err := s.pool.Exec(ctx, queryMarkItemListed, id, rec.SKU, rec.OfferID, rec.ListingID)
	if err != nil {
		return fmt.Errorf("marking item listed: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var listed bool
	if err := s.pool.QueryRow(ctx, queryItemListed, id).Scan(&listed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("item %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("checking item %s: %w", id, err)
	}
	return fmt.Errorf("item %s: %w", id, ErrAlreadyListed)
}

// MarkItemUnlisted records a withdrawn offer. The sku and offer id are kept.
func (s *PostgresStore) MarkItemUnlisted(ctx context.Context, id string) error {
	return s.execOne(ctx, "marking item unlisted", id, queryMarkItemUnlisted, id)
}

// GetToken retrieves the singleton OAuth token record.
func (s *PostgresStore) GetToken(ctx context.Context) (*domain.OAuthToken, error) {
	t := &domain.OAuthToken{}
	err := s.pool.QueryRow(ctx, queryGetToken, domain.TokenSingletonID).Scan(
		&t.ID, &t.AccessToken, &t.RefreshToken, &t.ExpiresAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("oauth token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("getting oauth token: %w", err)
	}
	return t, nil
}

// UpsertToken overwrites the singleton OAuth token record.
func (s *PostgresStore) UpsertToken(ctx context.Context, t *domain.OAuthToken) error {
	if _, err := s.pool.Exec(ctx, queryUpsertToken,
		domain.TokenSingletonID, t.AccessToken, t.RefreshToken, t.ExpiresAt, t.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting oauth token: %w", err)
	}
	return nil
}

func (s *PostgresStore) execOne(ctx context.Context, what, id, sql string, args ...any) error {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanItem(row scannable, it *domain.Item) error {
	return row.Scan(
		&it.ID, &it.Name, &it.Description, &it.Condition,
		&it.ImageRef, &it.Email, &it.Phone, &it.Price, &it.Status,
		&it.EbaySKU, &it.EbayOfferID, &it.EbayStatus, &it.ListedOnEbay,
		&it.CreatedAt, &it.UpdatedAt,
	)
}
