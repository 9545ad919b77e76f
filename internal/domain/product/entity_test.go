// internal/domain/product/entity_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	for raw, want := range map[string]Size{
		"S":   SizeS,
		"m":   SizeM,
		" l ": SizeL,
		"xl":  SizeXL,
		"XL":  SizeXL,
	} {
		got, ok := ParseSize(raw)
		require.True(t, ok, "ParseSize(%q)", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "XS", "XXL", "medium"} {
		_, ok := ParseSize(raw)
		assert.False(t, ok, "ParseSize(%q)", raw)
	}
}

func TestParseCategory(t *testing.T) {
	for raw, want := range map[string]Category{
		"Men":   CategoryMen,
		"women": CategoryWomen,
		"KIDS":  CategoryKids,
	} {
		got, ok := ParseCategory(raw)
		require.True(t, ok, "ParseCategory(%q)", raw)
		assert.Equal(t, want, got)
	}

	_, ok := ParseCategory("unisex")
	assert.False(t, ok)
}

func TestSizeRoundTrip(t *testing.T) {
	p := &Product{}
	p.SetSizes([]Size{SizeS, SizeM, SizeXL})

	assert.Equal(t, "S,M,XL", p.Sizes)
	assert.Equal(t, []Size{SizeS, SizeM, SizeXL}, p.SizeList())

	assert.True(t, p.HasSize(SizeM))
	assert.False(t, p.HasSize(SizeL))
}

func TestSizeList_Empty(t *testing.T) {
	p := &Product{}
	assert.Empty(t, p.SizeList())
}

func TestFormattedPrice(t *testing.T) {
	p := &Product{Price: 2999}
	assert.InDelta(t, 29.99, p.FormattedPrice(), 0.001)
}

func TestIsInStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).IsInStock())
	assert.False(t, (&Product{Stock: 0}).IsInStock())
}
