package domain

// ProductSnapshot is the catalog's view of a product at fetch time. The order
// core copies name and price into order items and never refreshes them.
type ProductSnapshot struct {
	ID    uint64
	Name  string
	Price float64
	Stock int64
}

type StockItem struct {
	ProductID uint64
	Quantity  uint32
}
