package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewProduct verifies a fresh product carries no identifier until
// the store assigns one.
func TestNewProduct(t *testing.T) {
	p, err := NewProduct("P100", "Product 1")
	require.NoError(t, err)

	assert.Zero(t, p.ID())
	assert.Equal(t, "P100", p.Code())
	assert.Equal(t, "Product 1", p.Name())
}

func TestNewProduct_TrimsWhitespace(t *testing.T) {
	p, err := NewProduct("  P100 ", " Product 1 ")
	require.NoError(t, err)

	assert.Equal(t, "P100", p.Code())
	assert.Equal(t, "Product 1", p.Name())
}

// TestNewProduct_Validation covers every constructor rejection.
func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", "Product 1")
	assert.ErrorIs(t, err, ErrEmptyProductCode)

	_, err = NewProduct("   ", "Product 1")
	assert.ErrorIs(t, err, ErrEmptyProductCode)

	_, err = NewProduct("P100", "")
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct(strings.Repeat("x", 256), "Product 1")
	assert.ErrorIs(t, err, ErrProductCodeTooLong)

	_, err = NewProduct("P100", strings.Repeat("x", 256))
	assert.ErrorIs(t, err, ErrProductNameTooLong)
}

// TestReconstructProduct verifies rehydration keeps persisted state
// as-is, without validation.
func TestReconstructProduct(t *testing.T) {
	p := ReconstructProduct(7, "P700", "Product 7")

	assert.Equal(t, int64(7), p.ID())
	assert.Equal(t, "P700", p.Code())
	assert.Equal(t, "Product 7", p.Name())
}
