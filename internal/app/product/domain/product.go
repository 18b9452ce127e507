package domain

import "strings"

// Product is the aggregate root for the product catalog domain.
// A product is immutable once constructed; replacing its code or name
// means writing a new value for the same identifier.
type Product struct {
	id   int64
	code string
	name string
}

// NewProduct creates a Product that has not been persisted yet.
// The identifier stays zero until the store assigns one on insert.
func NewProduct(code, name string) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &Product{
		code: strings.TrimSpace(code),
		name: strings.TrimSpace(name),
	}, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used by repositories when loading from the database; performs no
// validation because the store already enforced the constraints.
func ReconstructProduct(id int64, code, name string) *Product {
	return &Product{
		id:   id,
		code: code,
		name: name,
	}
}

// Getters

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Code() string {
	return p.code
}

func (p *Product) Name() string {
	return p.name
}

// Validation helpers

func validateProductCode(code string) error {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ErrEmptyProductCode
	}
	if len(trimmed) > 255 {
		return ErrProductCodeTooLong
	}
	return nil
}

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 255 {
		return ErrProductNameTooLong
	}
	return nil
}
