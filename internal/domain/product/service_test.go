// internal/domain/product/service_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
)

// Filter validation runs before any query, so a service without a database
// connection is enough to exercise the rejection paths.
func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewService(nil, &config.Config{})

	resp, err := svc.List(&ListRequest{Category: "shoes"})
	require.ErrorIs(t, err, ErrInvalidFilter)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), `unknown category "shoes"`)
}

func TestListRejectsUnknownSize(t *testing.T) {
	svc := NewService(nil, &config.Config{})

	resp, err := svc.List(&ListRequest{Size: "XXL"})
	require.ErrorIs(t, err, ErrInvalidFilter)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), `unknown size "XXL"`)
}
