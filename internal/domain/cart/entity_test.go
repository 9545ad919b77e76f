// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/domain/product"
)

func TestAddLine_MergesSameProductAndSize(t *testing.T) {
	c := &Cart{}

	first := c.AddLine(1, product.SizeM, 2)
	second := c.AddLine(1, product.SizeM, 3)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestAddLine_DifferentSizesAreSeparateLines(t *testing.T) {
	c := &Cart{}

	c.AddLine(1, product.SizeM, 1)
	c.AddLine(1, product.SizeL, 1)

	require.Len(t, c.Lines, 2)
	assert.NotEqual(t, c.Lines[0].ID, c.Lines[1].ID)
}

func TestAddLine_AssignsUniqueIDs(t *testing.T) {
	c := &Cart{}

	a := c.AddLine(1, product.SizeS, 1)
	b := c.AddLine(2, product.SizeS, 1)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdateLine(t *testing.T) {
	c := &Cart{}
	line := c.AddLine(1, product.SizeM, 1)

	ok := c.UpdateLine(line.ID, 4)

	require.True(t, ok)
	assert.Equal(t, 4, c.Lines[0].Quantity)
}

func TestUpdateLine_UnknownLine(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, product.SizeM, 1)

	assert.False(t, c.UpdateLine("missing", 2))
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestRemoveLine(t *testing.T) {
	c := &Cart{}
	keep := c.AddLine(1, product.SizeM, 1)
	drop := c.AddLine(2, product.SizeL, 1)

	c.RemoveLine(drop.ID)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, keep.ID, c.Lines[0].ID)
}

func TestRemoveLine_UnknownLineIsNoOp(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, product.SizeM, 1)

	c.RemoveLine("missing")

	assert.Len(t, c.Lines, 1)
}

func TestClearAndIsEmpty(t *testing.T) {
	c := &Cart{}
	assert.True(t, c.IsEmpty())

	c.AddLine(1, product.SizeM, 2)
	assert.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestTotalQuantity(t *testing.T) {
	c := &Cart{}
	c.AddLine(1, product.SizeM, 2)
	c.AddLine(2, product.SizeL, 3)

	assert.Equal(t, 5, c.TotalQuantity())
}

func TestHasIdentity(t *testing.T) {
	assert.False(t, (&Cart{}).HasIdentity())

	userID := uint(7)
	assert.True(t, (&Cart{UserID: &userID}).HasIdentity())
	assert.True(t, (&Cart{SessionID: "abc"}).HasIdentity())
}
