package domain

import "time"

// StatusReceived is the status every new order starts in. Admins may
// overwrite it with any string afterwards.
const StatusReceived = "Received"

type Location struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"short_code,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type LineItem struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type Order struct {
	ID         int                 `json:"id"`
	Restaurant string              `json:"restaurant"`
	Name       string              `json:"name"`
	StudentID  string              `json:"student_id"`
	Phone      string              `json:"phone"`
	Items      map[string]LineItem `json:"order_items"`
	Total      float64             `json:"total"`
	Status     string              `json:"status"`
	OrderTime  time.Time           `json:"order_time"`
	LocationID *int                `json:"location_id"`
	// LocationName is resolved at draft time for the confirmation page;
	// it is not persisted with the order.
	LocationName string `json:"location_name,omitempty"`
}

type OrderStats struct {
	TotalOrders  int     `json:"total_orders"`
	OrdersToday  int     `json:"orders_today"`
	RevenueToday float64 `json:"revenue_today"`
}

type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	Restaurant string    `json:"restaurant"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}
