package entity

import "time"

// InventoryItem is a supply a supplier offers to farmers. Purchase
// requests reference items by name.
type InventoryItem struct {
	ID         string    `json:"id" firestore:"id"`
	SupplierID string    `json:"supplier_id" firestore:"supplier_id"`
	Name       string    `json:"name" firestore:"name"`
	Type       string    `json:"type" firestore:"type"` // "seed", "fertilizer", "pesticide", "equipment"
	Quantity   int       `json:"quantity" firestore:"quantity"`
	Unit       string    `json:"unit" firestore:"unit"`
	Price      float64   `json:"price" firestore:"price"`
	Available  bool      `json:"available" firestore:"available"`
	CreatedAt  time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updated_at"`
}
