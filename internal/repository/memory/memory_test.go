package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/quote-insights/internal/repository"
)

func TestStore_TrainingRowsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.AddTrainingRows(repository.TrainingRow{Quantity: 1, Category: "Window"})

	rows, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows[0].Category = "mutated"
	again, err := store.TrainingRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Window", again[0].Category)
}

func TestStore_CustomerHistories(t *testing.T) {
	store := NewStore()
	store.AddCustomerHistories(
		repository.CustomerHistory{CustomerID: 1, Name: "Alice Smith"},
		repository.CustomerHistory{CustomerID: 2, Name: "Bob Jones"},
	)

	histories, err := store.CustomerHistories(context.Background())
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.Equal(t, "Alice Smith", histories[0].Name)
}
