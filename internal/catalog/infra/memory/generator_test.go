package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCatalog(t *testing.T) {
	products := GenerateCatalog(1)

	require.Len(t, products, 7*productsPerCategory)

	for i, p := range products {
		assert.Equal(t, i+1, p.ID, "ids must be dense and 1-based")
		assert.True(t, p.Price.IsPositive())
		assert.GreaterOrEqual(t, p.Stock, 10)
		assert.NotEmpty(t, p.Sizes)
	}
}

func TestGenerateCatalogDeterministic(t *testing.T) {
	a := GenerateCatalog(7)
	b := GenerateCatalog(7)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.True(t, a[i].Price.Equal(b[i].Price))
	}
}
