package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sample() []Product {
	return []Product{
		{ID: "p1", Name: map[string]string{"ru": "Пельмени", "uz": "Chuchvara"}, Price: 45000},
		{ID: "p2", Name: map[string]string{"ru": "Манты"}, Price: 55000},
	}
}

func TestDisplayNameFallback(t *testing.T) {
	p := Product{ID: "p2", Name: map[string]string{"ru": "Манты"}}

	require.Equal(t, "Манты", p.DisplayName("ru"))
	require.Equal(t, "Манты", p.DisplayName("uz")) // falls back to ru
	require.Equal(t, "p2", Product{ID: "p2"}.DisplayName("ru"))
}

func TestSeedOnlyOnce(t *testing.T) {
	c := NewProvider(t.TempDir())

	require.NoError(t, c.Seed(sample()))
	require.NoError(t, c.Seed([]Product{{ID: "px"}}))

	products := c.List()
	require.Len(t, products, 2)
	require.Equal(t, "p1", products[0].ID)
}

func TestFind(t *testing.T) {
	c := NewProvider(t.TempDir())
	require.NoError(t, c.Seed(sample()))

	p, ok := c.Find("p2")
	require.True(t, ok)
	require.Equal(t, float64(55000), p.Price)

	_, ok = c.Find("p404")
	require.False(t, ok)
}

func TestAddIsVisibleImmediately(t *testing.T) {
	c := NewProvider(t.TempDir())
	require.NoError(t, c.Seed(sample()))

	require.NoError(t, c.Add(Product{ID: "p3", Name: map[string]string{"ru": "Самса"}, Price: 25000}))

	p, ok := c.Find("p3")
	require.True(t, ok)
	require.Equal(t, "Самса", p.DisplayName("ru"))
}

func TestListCorruptDocumentServesEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("<xml>"), 0o644))

	require.Empty(t, NewProvider(dir).List())
}

func TestNewID(t *testing.T) {
	id := NewID()
	require.Len(t, id, 9)
	require.Equal(t, byte('p'), id[0])
	require.NotEqual(t, id, NewID())
}
