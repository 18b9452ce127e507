package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColID   = "id"
	ColCode = "code"
	ColName = "name"
)
