package order

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testOrder(id string) Order {
	return Order{
		ID:          id,
		ProductID:   "p1",
		ProductName: "Пельмени классические",
		Price:       45000,
		Qty:         2,
		Name:        "Test",
		Phone:       "+998901234567",
		Lang:        "ru",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestAppendAndListAll(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Append(testOrder("o1")))
	require.NoError(t, s.Append(testOrder("o2")))

	orders := s.ListAll()
	require.Len(t, orders, 2)
	require.Equal(t, "o1", orders[0].ID)
	require.Equal(t, "o2", orders[1].ID)
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	s := NewStore(t.TempDir())

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			require.NoError(t, s.Append(testOrder(fmt.Sprintf("o%d", i))))
		}(i)
	}
	wg.Wait()

	orders := s.ListAll()
	require.Len(t, orders, n)

	seen := make(map[string]bool, n)
	for _, o := range orders {
		seen[o.ID] = true
	}
	require.Len(t, seen, n)
}

func TestAppendSurvivesCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{{{"), 0o644))

	s := NewStore(dir)
	require.NoError(t, s.Append(testOrder("o1")))

	orders := s.ListAll()
	require.Len(t, orders, 1)
	require.Equal(t, "o1", orders[0].ID)
}

func TestListAllCorruptDocumentIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("not json"), 0o644))

	require.Empty(t, NewStore(dir).ListAll())
}
