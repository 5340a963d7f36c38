// Package postgres provides a Repository backed by PostgreSQL for deployments
// where the quotation application runs against a shared database.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/quote-insights/internal/repository"
)

// Store is a PostgreSQL-backed repository.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// TrainingRows returns every quotation line joined with its product. The inner
// join drops rows whose product reference no longer resolves.
func (s *Store) TrainingRows(ctx context.Context) ([]repository.TrainingRow, error) {
	const query = `
		SELECT qi.quantity, qi.width_ft, qi.height_ft, qi.unit_price, qi.line_total,
		       p.category, p.base_cost_per_sqft
		FROM quotation_item AS qi
		JOIN product AS p ON qi.product_id = p.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query training rows: %w", err)
	}
	defer rows.Close()

	var out []repository.TrainingRow
	for rows.Next() {
		var r repository.TrainingRow
		if err := rows.Scan(&r.Quantity, &r.WidthFt, &r.HeightFt, &r.UnitPrice, &r.LineTotal, &r.Category, &r.BaseCostPerSqft); err != nil {
			return nil, fmt.Errorf("failed to scan training row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training rows: %w", err)
	}
	return out, nil
}

// CustomerHistories returns every customer with their quotations.
func (s *Store) CustomerHistories(ctx context.Context) ([]repository.CustomerHistory, error) {
	const query = `
		SELECT c.id, c.name, q.id, q.total_amount, q.timestamp
		FROM customer AS c
		LEFT JOIN quotation AS q ON q.customer_id = c.id
		ORDER BY c.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer histories: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerHistory
	byID := make(map[int64]int)
	for rows.Next() {
		var (
			custID   int64
			custName string
			quoteID  *int64
			total    *float64
			ts       *time.Time
		)
		if err := rows.Scan(&custID, &custName, &quoteID, &total, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan customer history row: %w", err)
		}
		idx, ok := byID[custID]
		if !ok {
			out = append(out, repository.CustomerHistory{CustomerID: custID, Name: custName})
			idx = len(out) - 1
			byID[custID] = idx
		}
		if quoteID != nil {
			quote := repository.QuoteRecord{ID: *quoteID}
			if total != nil {
				quote.TotalAmount = *total
			}
			if ts != nil {
				quote.Timestamp = *ts
			}
			out[idx].Quotes = append(out[idx].Quotes, quote)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer histories: %w", err)
	}
	return out, nil
}
