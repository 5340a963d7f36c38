// Package sqlite provides a Repository backed by a local SQLite database,
// matching the schema of the quotation web application it supports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jonathan/quote-insights/internal/repository"
)

// Store is a SQLite-backed repository.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for seeding.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) ensureSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS customer (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		company_name TEXT,
		address TEXT,
		date_created TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS product (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		base_cost_per_sqft REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS quotation (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		customer_id INTEGER NOT NULL REFERENCES customer(id),
		total_amount REAL NOT NULL DEFAULT 0.0,
		status TEXT NOT NULL DEFAULT 'Draft',
		timestamp TIMESTAMP,
		ai_summary TEXT
	);
	CREATE TABLE IF NOT EXISTS quotation_item (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quotation_id INTEGER NOT NULL REFERENCES quotation(id),
		product_id INTEGER NOT NULL REFERENCES product(id),
		quantity INTEGER NOT NULL DEFAULT 1,
		width_ft REAL NOT NULL,
		height_ft REAL NOT NULL,
		unit_price REAL NOT NULL DEFAULT 0.0,
		line_total REAL NOT NULL DEFAULT 0.0
	);
	CREATE INDEX IF NOT EXISTS idx_quotation_customer_id ON quotation(customer_id);
	CREATE INDEX IF NOT EXISTS idx_quotation_item_quotation_id ON quotation_item(quotation_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// TrainingRows returns every quotation line joined with its product. The inner
// join drops rows whose product reference no longer resolves.
func (s *Store) TrainingRows(ctx context.Context) ([]repository.TrainingRow, error) {
	const query = `
		SELECT qi.quantity, qi.width_ft, qi.height_ft, qi.unit_price, qi.line_total,
		       p.category, p.base_cost_per_sqft
		FROM quotation_item AS qi
		JOIN product AS p ON qi.product_id = p.id`

	rows, err := s.db.QueryContext(ctx, query)
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

// CustomerHistories returns every customer with their quotations. Customers
// without quotations are included with no quotes.
func (s *Store) CustomerHistories(ctx context.Context) ([]repository.CustomerHistory, error) {
	const query = `
		SELECT c.id, c.name, q.id, q.total_amount, q.timestamp
		FROM customer AS c
		LEFT JOIN quotation AS q ON q.customer_id = c.id
		ORDER BY c.id`

	rows, err := s.db.QueryContext(ctx, query)
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
			quoteID  sql.NullInt64
			total    sql.NullFloat64
			ts       sql.NullTime
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
		if quoteID.Valid {
			out[idx].Quotes = append(out[idx].Quotes, repository.QuoteRecord{
				ID:          quoteID.Int64,
				TotalAmount: total.Float64,
				Timestamp:   ts.Time,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer histories: %w", err)
	}
	return out, nil
}
