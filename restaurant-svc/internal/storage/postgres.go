package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func promotionColumns(p *domain.Promotion) (sql.NullInt64, sql.NullString) {
	if p == nil {
		return sql.NullInt64{}, sql.NullString{}
	}
	return sql.NullInt64{Int64: int64(p.Discount), Valid: true}, sql.NullString{String: p.EndDate, Valid: true}
}

func scanPromotion(discount sql.NullInt64, endDate sql.NullString) *domain.Promotion {
	if !discount.Valid {
		return nil
	}
	return &domain.Promotion{Discount: int(discount.Int64), EndDate: endDate.String}
}

func (r *PostgresRepository) ListItems(category domain.Category) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, category, name, description, price, icon, discount, promotion_end
		FROM menu_items
		WHERE category = $1
		ORDER BY id`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var (
			item     domain.MenuItem
			discount sql.NullInt64
			endDate  sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Category, &item.Name, &item.Description, &item.Price, &item.Icon, &discount, &endDate); err != nil {
			return nil, err
		}
		item.Promotion = scanPromotion(discount, endDate)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(category domain.Category, id int64) (*domain.MenuItem, error) {
	var (
		item     domain.MenuItem
		discount sql.NullInt64
		endDate  sql.NullString
	)
	err := r.DB.QueryRow(`
		SELECT id, category, name, description, price, icon, discount, promotion_end
		FROM menu_items
		WHERE category = $1 AND id = $2`, string(category), id).
		Scan(&item.ID, &item.Category, &item.Name, &item.Description, &item.Price, &item.Icon, &discount, &endDate)
	if err != nil {
		return nil, notFound(err)
	}
	item.Promotion = scanPromotion(discount, endDate)
	return &item, nil
}

func (r *PostgresRepository) CreateItem(item *domain.MenuItem) error {
	discount, endDate := promotionColumns(item.Promotion)
	_, err := r.DB.Exec(`
		INSERT INTO menu_items (id, category, name, description, price, icon, discount, promotion_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, string(item.Category), item.Name, item.Description, item.Price, item.Icon, discount, endDate)
	return err
}

func (r *PostgresRepository) UpdateItem(item *domain.MenuItem) error {
	discount, endDate := promotionColumns(item.Promotion)
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, icon=$4, discount=$5, promotion_end=$6
		WHERE category=$7 AND id=$8`,
		item.Name, item.Description, item.Price, item.Icon, discount, endDate, string(item.Category), item.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteItem(category domain.Category, id int64) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE category=$1 AND id=$2", string(category), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type deliveryColumns struct {
	id, name, address sql.NullString
	lng, lat          sql.NullFloat64
}

func newDeliveryColumns(l *domain.DeliveryLocation) deliveryColumns {
	if l == nil {
		return deliveryColumns{}
	}
	return deliveryColumns{
		id:      sql.NullString{String: l.ID, Valid: true},
		name:    sql.NullString{String: l.Name, Valid: true},
		address: sql.NullString{String: l.Address, Valid: true},
		lng:     sql.NullFloat64{Float64: l.Coordinates.Lng, Valid: true},
		lat:     sql.NullFloat64{Float64: l.Coordinates.Lat, Valid: true},
	}
}

func (d deliveryColumns) location() *domain.DeliveryLocation {
	if !d.id.Valid {
		return nil
	}
	return &domain.DeliveryLocation{
		ID:          d.id.String,
		Name:        d.name.String,
		Address:     d.address.String,
		Coordinates: domain.Coordinates{Lng: d.lng.Float64, Lat: d.lat.Float64},
	}
}

const orderColumns = `id, total, status, fulfillment, table_number, timestamp_label, created_at, payment_phone,
		delivery_id, delivery_name, delivery_address, delivery_lng, delivery_lat`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order    domain.Order
		delivery deliveryColumns
	)
	err := row.Scan(&order.ID, &order.Total, &order.Status, &order.Fulfillment, &order.TableNumber,
		&order.Timestamp, &order.CreatedAt, &order.PaymentPhone,
		&delivery.id, &delivery.name, &delivery.address, &delivery.lng, &delivery.lat)
	order.DeliveryLocation = delivery.location()
	return order, err
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	delivery := newDeliveryColumns(order.DeliveryLocation)
	if _, err := tx.Exec(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		order.ID, order.Total, string(order.Status), string(order.Fulfillment), order.TableNumber,
		order.Timestamp, order.CreatedAt, order.PaymentPhone,
		delivery.id, delivery.name, delivery.address, delivery.lng, delivery.lat); err != nil {
		return fmt.Errorf("insert order %d: %w", order.ID, err)
	}

	for position, line := range order.Items {
		discount, endDate := promotionColumns(line.Item.Promotion)
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, position, item_id, category, name, description, price, icon, discount, promotion_end, quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			order.ID, position, line.Item.ID, string(line.Item.Category), line.Item.Name, line.Item.Description,
			line.Item.Price, line.Item.Icon, discount, endDate, line.Quantity); err != nil {
			return fmt.Errorf("insert order %d line %d: %w", order.ID, position, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) orderItems(query string, args ...any) (map[int64][]domain.CartLine, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[int64][]domain.CartLine)
	for rows.Next() {
		var (
			orderID  int64
			line     domain.CartLine
			discount sql.NullInt64
			endDate  sql.NullString
		)
		if err := rows.Scan(&orderID, &line.Item.ID, &line.Item.Category, &line.Item.Name, &line.Item.Description,
			&line.Item.Price, &line.Item.Icon, &discount, &endDate, &line.Quantity); err != nil {
			return nil, err
		}
		line.Item.Promotion = scanPromotion(discount, endDate)
		lines[orderID] = append(lines[orderID], line)
	}
	return lines, rows.Err()
}

const orderItemColumns = `order_id, item_id, category, name, description, price, icon, discount, promotion_end, quantity`

func (r *PostgresRepository) GetOrder(id int64) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}

	lines, err := r.orderItems(`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("load items of order %d: %w", id, err)
	}
	order.Items = lines[id]
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := r.orderItems(`SELECT ` + orderItemColumns + ` FROM order_items ORDER BY order_id, position`)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	for i := range orders {
		orders[i].Items = lines[orders[i].ID]
	}
	return orders, nil
}

// UpdateOrder persists the mutable part of an order: status and delivery
// location.
func (r *PostgresRepository) UpdateOrder(order *domain.Order) error {
	delivery := newDeliveryColumns(order.DeliveryLocation)
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status=$1, delivery_id=$2, delivery_name=$3, delivery_address=$4, delivery_lng=$5, delivery_lat=$6
		WHERE id=$7`,
		string(order.Status), delivery.id, delivery.name, delivery.address, delivery.lng, delivery.lat, order.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id BIGINT NOT NULL,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price BIGINT NOT NULL CHECK (price >= 0),
			icon TEXT NOT NULL,
			discount INT,
			promotion_end TEXT,
			PRIMARY KEY (category, id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGINT PRIMARY KEY,
			total BIGINT NOT NULL,
			status TEXT NOT NULL,
			fulfillment TEXT NOT NULL,
			table_number TEXT NOT NULL,
			timestamp_label TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			payment_phone TEXT NOT NULL,
			delivery_id TEXT,
			delivery_name TEXT,
			delivery_address TEXT,
			delivery_lng DOUBLE PRECISION,
			delivery_lat DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id BIGINT NOT NULL REFERENCES orders(id),
			position INT NOT NULL,
			item_id BIGINT NOT NULL,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price BIGINT NOT NULL,
			icon TEXT NOT NULL,
			discount INT,
			promotion_end TEXT,
			quantity INT NOT NULL CHECK (quantity > 0),
			PRIMARY KEY (order_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
