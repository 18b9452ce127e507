package domain

import "errors"

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductCodeTaken indicates the unique constraint on product code was violated.
	ErrProductCodeTaken = errors.New("product code is already taken")
)

// Domain errors for Product validation
var (
	// ErrEmptyProductCode indicates an attempt to create a product with an empty code.
	ErrEmptyProductCode = errors.New("product code cannot be empty")

	// ErrEmptyProductName indicates an attempt to create a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductCodeTooLong indicates the product code exceeds maximum length of 255 characters.
	ErrProductCodeTooLong = errors.New("product code exceeds maximum length of 255 characters")

	// ErrProductNameTooLong indicates the product name exceeds maximum length of 255 characters.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")
)
