package models

// Customer represents a buyer. Phone numbers are globally unique.
type Customer struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
}

// Item represents a catalog entry
type Item struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

// Order references one customer and an ordered list of catalog item ids.
// Items keeps insertion order and may contain duplicates. The referenced
// customer and item ids are not guaranteed to still exist; orders tolerate
// dangling references.
type Order struct {
	ID         int64   `db:"id" json:"id"`
	CustomerID int64   `db:"customer_id" json:"customer_id"`
	Timestamp  int64   `db:"timestamp" json:"timestamp"`
	Notes      *string `db:"notes" json:"notes"`
	Items      []int64 `db:"-" json:"items"`
}

// OrderItemRow is one row of the order_items join table. Position records
// where the item id sat in the submitted list.
type OrderItemRow struct {
	OrderID  int64 `db:"order_id" json:"order_id"`
	ItemID   int64 `db:"item_id" json:"item_id"`
	Position int   `db:"position" json:"position"`
}
