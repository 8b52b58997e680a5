package catalog

// Product is one catalog entry as served by the order-service API.
// Field tags match the wire format of GET /products.
type Product struct {
	ID    int64  `json:"product_id"`
	Name  string `json:"product_name"`
	Price Price  `json:"price"`
}
