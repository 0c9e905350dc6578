package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var basilisco = Product{
	ID:            "p1",
	Name:          "Ração para lagartos 500g",
	Price:         49.90,
	ImageURL:      "https://cdn.example.com/racao.png",
	StockQuantity: 5,
}

func TestAddItemNewLine(t *testing.T) {
	c, out := AddItem(Cart{}, basilisco, 3)

	require.Equal(t, OutcomeAdded, out.Kind)
	require.Len(t, c.Lines, 1)
	assert.NotEmpty(t, c.Lines[0].LineID)
	assert.Equal(t, "p1", c.Lines[0].ProductID)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, 5, c.Lines[0].StockCeiling)
	assert.Equal(t, basilisco.Name, c.Lines[0].Name)
	assert.Equal(t, basilisco.Price, c.Lines[0].UnitPrice)
}

func TestAddItemDefaultsToOne(t *testing.T) {
	c, out := AddItem(Cart{}, basilisco, 0)

	require.Equal(t, OutcomeAdded, out.Kind)
	require.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddItemMergeThenReject(t *testing.T) {
	// Stock 5: adding 3 then 3 again must keep the line at 3.
	c, out := AddItem(Cart{}, basilisco, 3)
	require.Equal(t, OutcomeAdded, out.Kind)

	c2, out := AddItem(c, basilisco, 3)
	require.Equal(t, OutcomeRejectedStock, out.Kind)
	assert.Equal(t, 6, out.Quantity)
	assert.Equal(t, 5, out.Stock)

	// No partial fulfillment: prior state untouched.
	require.Len(t, c2.Lines, 1)
	assert.Equal(t, 3, c2.Lines[0].Quantity)
}

func TestAddItemNeverExceedsStock(t *testing.T) {
	c := Cart{}
	for i := 0; i < 20; i++ {
		c, _ = AddItem(c, basilisco, 1)
	}
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestAddItemSingleRequestOverStock(t *testing.T) {
	c, out := AddItem(Cart{}, basilisco, 6)

	require.Equal(t, OutcomeRejectedStock, out.Kind)
	assert.Empty(t, c.Lines)
}

func TestAddItemRefreshesStockCeiling(t *testing.T) {
	c, _ := AddItem(Cart{}, basilisco, 2)

	restocked := basilisco
	restocked.StockQuantity = 10
	c, out := AddItem(c, restocked, 1)

	require.Equal(t, OutcomeAdded, out.Kind)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, 10, c.Lines[0].StockCeiling)
}

func TestAddItemOnePerProduct(t *testing.T) {
	other := Product{ID: "p2", Name: "Lâmpada UVB", Price: 89.0, StockQuantity: 2}

	c, _ := AddItem(Cart{}, basilisco, 1)
	c, _ = AddItem(c, other, 1)
	c, _ = AddItem(c, basilisco, 1)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "p1", c.Lines[0].ProductID)
	assert.Equal(t, "p2", c.Lines[1].ProductID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c, _ := AddItem(Cart{}, basilisco, 2)

	c2, out := RemoveItem(c, "p1")
	require.Equal(t, OutcomeRemoved, out.Kind)
	assert.Equal(t, basilisco.Name, out.Name)
	assert.Empty(t, c2.Lines)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	c, out := RemoveItem(Cart{}, "nope")
	require.Equal(t, OutcomeNoop, out.Kind)
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantity(t *testing.T) {
	tests := map[string]struct {
		quantity     int
		wantKind     OutcomeKind
		wantQuantity int
		wantLines    int
	}{
		"set exactly":           {quantity: 4, wantKind: OutcomeUpdated, wantQuantity: 4, wantLines: 1},
		"below one removes":     {quantity: 0, wantKind: OutcomeRemoved, wantLines: 0},
		"negative removes":      {quantity: -3, wantKind: OutcomeRemoved, wantLines: 0},
		"over ceiling rejected": {quantity: 6, wantKind: OutcomeRejectedStock, wantQuantity: 2, wantLines: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := AddItem(Cart{}, basilisco, 2)

			c2, out := UpdateQuantity(c, "p1", tc.quantity)
			require.Equal(t, tc.wantKind, out.Kind)
			require.Len(t, c2.Lines, tc.wantLines)
			if tc.wantLines > 0 && tc.wantKind != OutcomeRejectedStock {
				assert.Equal(t, tc.wantQuantity, c2.Lines[0].Quantity)
			}
			if tc.wantKind == OutcomeRejectedStock {
				assert.Equal(t, 2, c2.Lines[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	_, out := UpdateQuantity(Cart{}, "nope", 3)
	require.Equal(t, OutcomeNoop, out.Kind)
}

func TestClear(t *testing.T) {
	c, _ := AddItem(Cart{}, basilisco, 2)
	c2, out := Clear(c)

	require.Equal(t, OutcomeCleared, out.Kind)
	assert.Empty(t, c2.Lines)
}

func TestDerivedAggregates(t *testing.T) {
	other := Product{ID: "p2", Name: "Lâmpada UVB", Price: 89.0, StockQuantity: 4}

	c, _ := AddItem(Cart{}, basilisco, 3)
	c, _ = AddItem(c, other, 2)

	assert.Equal(t, 5, c.ItemCount())
	want := 49.90*3 + 89.0*2

	// Idempotent recomputation, no drift.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want, c.TotalPrice(), 1e-9)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	c, _ := AddItem(Cart{}, basilisco, 2)

	_, _ = UpdateQuantity(c, "p1", 4)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	_, _ = RemoveItem(c, "p1")
	assert.Len(t, c.Lines, 1)
}
