package sqlite

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

var seedCategories = []string{
	"Double-Hung Window",
	"Casement Window",
	"Bay Window",
	"Picture Window",
	"Sliding Door",
	"French Door",
}

var seedFirstNames = []string{"Alice", "Bob", "Carol", "David", "Eve", "Frank", "Grace", "Hank", "Ivy", "Jack", "Karen", "Leo"}
var seedLastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Rodriguez", "Wilson", "Martinez", "Anderson"}

// Seed wipes the quotation tables and repopulates them with a synthetic but
// realistic dataset: 12 customers, 3 product variants per category, and 2-4
// quotations per customer with 1-3 lines each. The generator is seeded so two
// runs with the same seed produce the same database.
func (s *Store) Seed(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now().UTC()

	for _, table := range []string{"quotation_item", "quotation", "product", "customer"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var customerIDs []int64
	for i := 0; i < 12; i++ {
		name := seedFirstNames[rng.Intn(len(seedFirstNames))] + " " + seedLastNames[rng.Intn(len(seedLastNames))]
		created := now.AddDate(0, 0, -rng.Intn(121))
		res, err := tx.Exec(
			`INSERT INTO customer (name, email, phone, company_name, address, date_created)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			name,
			fmt.Sprintf("customer%d@example.com", i+1),
			fmt.Sprintf("+44 7%09d", rng.Intn(900000000)+100000000),
			"Homeowner",
			fmt.Sprintf("%d High Street, Birmingham, UK", rng.Intn(200)+1),
			created,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read customer id: %w", err)
		}
		customerIDs = append(customerIDs, id)
	}

	type product struct {
		id       int64
		category string
		baseCost float64
	}
	var products []product
	for _, cat := range seedCategories {
		for i := 0; i < 3; i++ {
			base := roundTo(20+rng.Float64()*35, 2)
			res, err := tx.Exec(
				`INSERT INTO product (name, description, category, base_cost_per_sqft)
				 VALUES (?, ?, ?, ?)`,
				fmt.Sprintf("%s Model %c", cat, 'A'+i),
				fmt.Sprintf("High-efficiency %s with low-E glass and sturdy frame.", cat),
				cat,
				base,
			)
			if err != nil {
				return fmt.Errorf("failed to insert product: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read product id: %w", err)
			}
			products = append(products, product{id: id, category: cat, baseCost: base})
		}
	}

	for _, custID := range customerIDs {
		quoteCount := rng.Intn(3) + 2
		for q := 0; q < quoteCount; q++ {
			ts := now.AddDate(0, 0, -rng.Intn(61))
			res, err := tx.Exec(
				`INSERT INTO quotation (title, customer_id, total_amount, status, timestamp)
				 VALUES (?, ?, 0.0, 'Draft', ?)`,
				fmt.Sprintf("Customer %d - Replacement Quote", custID),
				custID,
				ts,
			)
			if err != nil {
				return fmt.Errorf("failed to insert quotation: %w", err)
			}
			quoteID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read quotation id: %w", err)
			}

			total := 0.0
			itemCount := rng.Intn(3) + 1
			for i := 0; i < itemCount; i++ {
				prod := products[rng.Intn(len(products))]
				quantity := rng.Intn(5) + 1
				width := roundTo(2+rng.Float64()*4, 2)
				height := roundTo(2+rng.Float64()*4, 2)
				area := width * height
				unitPrice := roundTo(prod.baseCost*(1.5+rng.Float64()), 2)
				lineTotal := roundTo(unitPrice*float64(quantity)*maxFloat(area, 1.0), 2)
				if _, err := tx.Exec(
					`INSERT INTO quotation_item (quotation_id, product_id, quantity, width_ft, height_ft, unit_price, line_total)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					quoteID, prod.id, quantity, width, height, unitPrice, lineTotal,
				); err != nil {
					return fmt.Errorf("failed to insert quotation item: %w", err)
				}
				total += lineTotal
			}
			if _, err := tx.Exec(`UPDATE quotation SET total_amount = ? WHERE id = ?`, roundTo(total, 2), quoteID); err != nil {
				return fmt.Errorf("failed to update quotation total: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
