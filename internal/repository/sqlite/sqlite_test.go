package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesSchema(t *testing.T) {
	store := openTestStore(t)

	rows, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)

	histories, err := store.CustomerHistories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestTrainingRows_JoinsProducts(t *testing.T) {
	store := openTestStore(t)
	db := store.DB()

	_, err := db.Exec(`INSERT INTO customer (id, name) VALUES (1, 'Alice Smith')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO product (id, name, category, base_cost_per_sqft) VALUES (1, 'Bay Window', 'Window', 32.5)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO quotation (id, title, customer_id, total_amount, timestamp) VALUES (1, 'Quote 1', 1, 780.0, ?)`,
		time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO quotation_item (quotation_id, product_id, quantity, width_ft, height_ft, unit_price, line_total)
		VALUES (1, 1, 2, 4.0, 3.0, 32.5, 780.0)`)
	require.NoError(t, err)

	rows, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 2, r.Quantity)
	assert.Equal(t, 4.0, r.WidthFt)
	assert.Equal(t, 3.0, r.HeightFt)
	assert.Equal(t, 32.5, r.UnitPrice)
	assert.Equal(t, 780.0, r.LineTotal)
	assert.Equal(t, "Window", r.Category)
	assert.Equal(t, 32.5, r.BaseCostPerSqft)
}

func TestTrainingRows_DropsDanglingProductReferences(t *testing.T) {
	store := openTestStore(t)
	db := store.DB()

	_, err := db.Exec(`INSERT INTO customer (id, name) VALUES (1, 'Alice Smith')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO quotation (id, title, customer_id) VALUES (1, 'Quote 1', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO quotation_item (quotation_id, product_id, quantity, width_ft, height_ft)
		VALUES (1, 99, 1, 2.0, 2.0)`)
	require.NoError(t, err)

	rows, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCustomerHistories_IncludesQuotelessCustomers(t *testing.T) {
	store := openTestStore(t)
	db := store.DB()

	_, err := db.Exec(`INSERT INTO customer (id, name) VALUES (1, 'Alice Smith'), (2, 'Bob Jones')`)
	require.NoError(t, err)
	ts := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	_, err = db.Exec(`INSERT INTO quotation (id, title, customer_id, total_amount, timestamp) VALUES
		(1, 'Quote 1', 1, 500.0, ?), (2, 'Quote 2', 1, 750.0, ?)`, ts, ts.AddDate(0, 0, 5))
	require.NoError(t, err)

	histories, err := store.CustomerHistories(context.Background())
	require.NoError(t, err)
	require.Len(t, histories, 2)

	assert.Equal(t, int64(1), histories[0].CustomerID)
	assert.Equal(t, "Alice Smith", histories[0].Name)
	require.Len(t, histories[0].Quotes, 2)
	amounts := []float64{histories[0].Quotes[0].TotalAmount, histories[0].Quotes[1].TotalAmount}
	assert.ElementsMatch(t, []float64{500.0, 750.0}, amounts)

	assert.Equal(t, int64(2), histories[1].CustomerID)
	assert.Empty(t, histories[1].Quotes)
}

func TestSeed_ProducesTrainableDataset(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Seed(42))

	rows, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Positive(t, r.Quantity)
		assert.Positive(t, r.WidthFt)
		assert.Positive(t, r.HeightFt)
		assert.Positive(t, r.LineTotal)
		assert.NotEmpty(t, r.Category)
	}

	histories, err := store.CustomerHistories(context.Background())
	require.NoError(t, err)
	assert.Len(t, histories, 12)
}

func TestSeed_DeterministicForSameSeed(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	require.NoError(t, a.Seed(7))
	require.NoError(t, b.Seed(7))

	rowsA, err := a.TrainingRows(context.Background())
	require.NoError(t, err)
	rowsB, err := b.TrainingRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rowsA, rowsB)
}
