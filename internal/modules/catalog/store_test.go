package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/internal/store"
)

func newSeeded(t *testing.T, items []Product) (*Store, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	s := NewStore(mem)
	require.NoError(t, s.Replace(context.Background(), items))
	return s, mem
}

func TestLoadAbsentAndCorrupt(t *testing.T) {
	ctx := context.Background()

	mem := store.NewMemory()
	s := NewStore(mem)
	require.NoError(t, s.Load(ctx))
	assert.True(t, s.Empty())

	// malformed JSON is no data, not a crash
	require.NoError(t, mem.Save(ctx, SnapshotKey, []byte(`{nope`)))
	s2 := NewStore(mem)
	require.NoError(t, s2.Load(ctx))
	assert.True(t, s2.Empty())
}

func TestLoadClampsNegativeStock(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Save(ctx, SnapshotKey, []byte(`[{"id":"p1","name":"A","price":1,"stock":-3}]`)))

	s := NewStore(mem)
	require.NoError(t, s.Load(ctx))
	p, ok := s.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 0, p.Stock)
}

func TestReplacePersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	_, mem := newSeeded(t, []Product{{ID: "p1", Name: "A", Price: 10, Stock: 5}})

	// a fresh store over the same persistence sees the same list
	s2 := NewStore(mem)
	require.NoError(t, s2.Load(ctx))
	assert.Equal(t, 5, s2.Stock("p1"))
}

func TestAddGeneratesIDAndPlaceholderImage(t *testing.T) {
	s, _ := newSeeded(t, nil)

	p, err := s.Add(context.Background(), AddInput{
		Name: "Gizmo X1", Description: "d", Price: 19.99, Category: "Accessories", Stock: 10,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ID, "admin-prod-"))
	assert.Contains(t, p.ImageURL, "Text=Gizmo+X1")

	// prepended
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestAddRejectsBadPriceAndStock(t *testing.T) {
	s, _ := newSeeded(t, nil)

	_, err := s.Add(context.Background(), AddInput{Name: "X", Price: 0, Stock: 1})
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)

	_, err = s.Add(context.Background(), AddInput{Name: "X", Price: 1, Stock: -1})
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
}

func TestDeleteRemovesFromSearch(t *testing.T) {
	s, _ := newSeeded(t, []Product{
		{ID: "p1", Name: "SoundBlaster", Category: "Audio", Price: 10, Stock: 5},
		{ID: "p2", Name: "Laptop", Category: "Computing", Price: 10, Stock: 5},
	})

	require.NoError(t, s.Delete(context.Background(), "p1"))

	for _, p := range s.Search("", "", true) {
		assert.NotEqual(t, "p1", p.ID)
	}
	_, ok := s.Get("p1")
	assert.False(t, ok)

	err := s.Delete(context.Background(), "p1")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestSetStock(t *testing.T) {
	s, _ := newSeeded(t, []Product{{ID: "p1", Name: "A", Price: 10, Stock: 5}})
	ctx := context.Background()

	require.NoError(t, s.SetStock(ctx, "p1", 0))
	assert.Equal(t, 0, s.Stock("p1"))

	err := s.SetStock(ctx, "p1", -1)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Equal(t, "Stock cannot be negative.", ae.PublicMsg)
}

func TestDecrementClampedNeverGoesNegative(t *testing.T) {
	s, _ := newSeeded(t, []Product{
		{ID: "p1", Name: "A", Price: 10, Stock: 5},
		{ID: "p2", Name: "B", Price: 10, Stock: 2},
	})

	err := s.DecrementClamped(context.Background(), []StockLine{
		{ProductID: "p1", Qty: 2},
		{ProductID: "p2", Qty: 9}, // over-asks; clamps at zero
		{ProductID: "ghost", Qty: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Stock("p1"))
	assert.Equal(t, 0, s.Stock("p2"))
}

func TestSearchHidesOutOfStockForShoppers(t *testing.T) {
	s, _ := newSeeded(t, Fallback())

	for _, p := range s.Search("", "", false) {
		assert.Greater(t, p.Stock, 0)
	}

	// admin view includes the two zero-stock samples
	all := s.Search("", "", true)
	oos := 0
	for _, p := range all {
		if p.Stock == 0 {
			oos++
		}
	}
	assert.Equal(t, 2, oos)

	// term matches name, description and category, case-insensitive
	hits := s.Search("drone", "", true)
	require.NotEmpty(t, hits)
	assert.Equal(t, "SkyDrone Explorer", hits[0].Name)

	// category filter is exact
	comp := s.Search("", "Computing", true)
	assert.Len(t, comp, 2)
}

func TestCategoriesSortedUnique(t *testing.T) {
	s, _ := newSeeded(t, Fallback())
	got := s.Categories()
	assert.Equal(t, []string{"Accessories", "Audio", "Cameras", "Computing", "Drones", "Gaming", "Mobiles", "Smart Home", "TV & Video", "Wearables"}, got)
}

func TestOverviewCounts(t *testing.T) {
	s, _ := newSeeded(t, Fallback())
	total, in, out := s.Overview()
	assert.Equal(t, 12, total)
	assert.Equal(t, 10, in)
	assert.Equal(t, 2, out)
}
