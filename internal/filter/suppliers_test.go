package filter

import (
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSuppliers() []model.Supplier {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.Supplier{
		{
			ID:           1,
			BusinessName: "Atlas Leather",
			Description:  "Handmade leather goods",
			Domain:       model.SupplierDomain{ID: 1, Name: "Crafts"},
			Type:         model.SupplierTypeWorkshop,
			CreatedAt:    base,
		},
		{
			ID:           2,
			BusinessName: "Sahara Imports",
			Description:  "Electronics wholesale",
			Domain:       model.SupplierDomain{ID: 2, Name: "Electronics"},
			Type:         model.SupplierTypeImporter,
			CreatedAt:    base.Add(48 * time.Hour),
		},
		{
			ID:           3,
			BusinessName: "Casbah Market",
			Description:  "General goods",
			Domain:       model.SupplierDomain{ID: 3, Name: "Retail"},
			Type:         model.SupplierTypeMerchant,
			CreatedAt:    base.Add(24 * time.Hour),
		},
	}
}

func TestFilterSuppliers(t *testing.T) {
	t.Run("SearchMatchesBusinessName", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{SearchQuery: "atlas"})

		require.Len(t, got, 1)
		assert.Equal(t, "Atlas Leather", got[0].BusinessName)
	})

	t.Run("SearchMatchesDescription", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{SearchQuery: "wholesale"})

		require.Len(t, got, 1)
		assert.Equal(t, "Sahara Imports", got[0].BusinessName)
	})

	t.Run("SearchMatchesDomainName", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{SearchQuery: "electronics"})

		require.Len(t, got, 1)
		assert.Equal(t, "Sahara Imports", got[0].BusinessName)
	})

	t.Run("TypeAllKeepsEverything", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{SupplierType: TypeAll})

		assert.Len(t, got, len(testSuppliers()))
	})

	t.Run("TypeCaseInsensitive", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{SupplierType: "Workshop"})

		require.Len(t, got, 1)
		assert.Equal(t, "Atlas Leather", got[0].BusinessName)
	})

	t.Run("EmptyTypeKeepsEverything", func(t *testing.T) {
		got := FilterSuppliers(testSuppliers(), State{})

		assert.Len(t, got, len(testSuppliers()))
	})

	t.Run("EmptyDomainIsSafe", func(t *testing.T) {
		in := []model.Supplier{{ID: 9, BusinessName: "No Domain"}}

		got := FilterSuppliers(in, State{SearchQuery: "electronics"})

		assert.Empty(t, got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s := State{SearchQuery: "goods", SupplierType: TypeAll}
		once := FilterSuppliers(testSuppliers(), s)
		twice := FilterSuppliers(once, s)

		assert.Equal(t, once, twice)
	})
}

func TestSortSuppliers(t *testing.T) {
	t.Run("Alphabetical", func(t *testing.T) {
		got := SortSuppliers(testSuppliers(), SortAlphabetical)

		require.Len(t, got, 3)
		assert.Equal(t, "Atlas Leather", got[0].BusinessName)
		assert.Equal(t, "Casbah Market", got[1].BusinessName)
		assert.Equal(t, "Sahara Imports", got[2].BusinessName)
	})

	t.Run("MostRecent", func(t *testing.T) {
		got := SortSuppliers(testSuppliers(), SortMostRecent)

		require.Len(t, got, 3)
		assert.Equal(t, "Sahara Imports", got[0].BusinessName)
		assert.Equal(t, "Casbah Market", got[1].BusinessName)
		assert.Equal(t, "Atlas Leather", got[2].BusinessName)
	})

	t.Run("UnknownOptionPreservesOrder", func(t *testing.T) {
		in := testSuppliers()
		got := SortSuppliers(in, SortPopularity)

		assert.Equal(t, in, got)
	})

	t.Run("StableOnEqualKeys", func(t *testing.T) {
		now := time.Now()
		in := []model.Supplier{
			{ID: 1, BusinessName: "First", CreatedAt: now},
			{ID: 2, BusinessName: "Second", CreatedAt: now},
		}
		got := SortSuppliers(in, SortMostRecent)

		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(2), got[1].ID)
	})
}
