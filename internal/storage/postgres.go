package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"campus-canteen/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the two tables and backfills columns that older
// deployments may be missing. Every statement is idempotent, so this runs
// unconditionally on startup.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant TEXT NOT NULL,
			name TEXT NOT NULL,
			student_id TEXT NOT NULL,
			phone TEXT NOT NULL,
			items TEXT NOT NULL,
			total REAL NOT NULL,
			status TEXT DEFAULT 'Received',
			order_time TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			short_code TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS location_id INTEGER",
		"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS qr_code BYTEA",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	var locationID sql.NullInt64
	if order.LocationID != nil {
		locationID = sql.NullInt64{Int64: int64(*order.LocationID), Valid: true}
	}

	return r.DB.QueryRow(`
		INSERT INTO orders (restaurant, name, student_id, phone, items, total, status, location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_time`,
		order.Restaurant, order.Name, order.StudentID, order.Phone,
		string(items), order.Total, order.Status, locationID,
	).Scan(&order.ID, &order.OrderTime)
}

func (r *PostgresRepository) ListOrdersFor(studentID, phone string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant, name, student_id, phone, items, total, status, order_time, location_id
		FROM orders
		WHERE student_id = $1 AND phone = $2
		ORDER BY order_time DESC`, studentID, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *PostgresRepository) ListAllOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant, name, student_id, phone, items, total, status, order_time, location_id
		FROM orders
		ORDER BY order_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var items sql.NullString
		var locationID sql.NullInt64
		if err := rows.Scan(&order.ID, &order.Restaurant, &order.Name, &order.StudentID,
			&order.Phone, &items, &order.Total, &order.Status, &order.OrderTime, &locationID); err != nil {
			continue
		}
		order.Items = decodeLineItems(items)
		if locationID.Valid {
			id := int(locationID.Int64)
			order.LocationID = &id
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// decodeLineItems tolerates NULL or malformed stored items; a read never
// fails because of them, the order just shows no line items.
func decodeLineItems(items sql.NullString) map[string]domain.LineItem {
	decoded := map[string]domain.LineItem{}
	if !items.Valid || items.String == "" {
		return decoded
	}
	if err := json.Unmarshal([]byte(items.String), &decoded); err != nil {
		return map[string]domain.LineItem{}
	}
	return decoded
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) error {
	_, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	return err
}

func (r *PostgresRepository) DeleteOrder(orderID int) error {
	_, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", orderID)
	return err
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) OrderStats() (domain.OrderStats, error) {
	var stats domain.OrderStats
	err := r.DB.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE order_time::date = CURRENT_DATE),
		       COALESCE(SUM(total) FILTER (WHERE order_time::date = CURRENT_DATE), 0)
		FROM orders`).Scan(&stats.TotalOrders, &stats.OrdersToday, &stats.RevenueToday)
	return stats, err
}

func (r *PostgresRepository) CreateLocation(loc *domain.Location) error {
	shortCode := sql.NullString{String: loc.ShortCode, Valid: loc.ShortCode != ""}
	return r.DB.QueryRow(`
		INSERT INTO locations (name, short_code, is_active)
		VALUES ($1, $2, 1)
		RETURNING id, created_at`,
		loc.Name, shortCode,
	).Scan(&loc.ID, &loc.CreatedAt)
}

func (r *PostgresRepository) GetLocation(id int) (*domain.Location, error) {
	var loc domain.Location
	var shortCode sql.NullString
	var isActive int
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(short_code, ''), is_active, created_at
		FROM locations
		WHERE id = $1`, id).
		Scan(&loc.ID, &loc.Name, &shortCode, &isActive, &loc.CreatedAt)
	if err != nil {
		return nil, err
	}
	loc.ShortCode = shortCode.String
	loc.IsActive = isActive == 1
	return &loc, nil
}

func (r *PostgresRepository) ListActiveLocations() ([]domain.Location, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(short_code, ''), is_active, created_at
		FROM locations
		WHERE is_active = 1
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLocations(rows)
}

func (r *PostgresRepository) ListAllLocations() ([]domain.Location, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(short_code, ''), is_active, created_at
		FROM locations
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLocations(rows)
}

func scanLocations(rows *sql.Rows) ([]domain.Location, error) {
	var locations []domain.Location
	for rows.Next() {
		var loc domain.Location
		var isActive int
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.ShortCode, &isActive, &loc.CreatedAt); err != nil {
			continue
		}
		loc.IsActive = isActive == 1
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *PostgresRepository) ToggleLocation(id int) error {
	_, err := r.DB.Exec(
		"UPDATE locations SET is_active = CASE WHEN is_active = 1 THEN 0 ELSE 1 END WHERE id = $1", id)
	return err
}

func (r *PostgresRepository) DeleteLocation(id int) error {
	_, err := r.DB.Exec("DELETE FROM locations WHERE id = $1", id)
	return err
}
