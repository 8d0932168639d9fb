package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-digital/restaurant-svc/internal/domain"
	"restaurant-digital/restaurant-svc/internal/service"
	"restaurant-digital/restaurant-svc/internal/storage"
)

var (
	_ service.CatalogRepository = (*storage.MemoryRepository)(nil)
	_ service.OrderRepository   = (*storage.MemoryRepository)(nil)
	_ service.CatalogRepository = (*storage.PostgresRepository)(nil)
	_ service.OrderRepository   = (*storage.PostgresRepository)(nil)
	_ service.EventPublisher    = (*storage.KafkaPublisher)(nil)
	_ service.Notifier          = (*storage.RabbitNotifier)(nil)
	_ storage.AMQPPublisher     = (*amqp.Channel)(nil)
)

func setupTestDB(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

var menuColumns = []string{"id", "category", "name", "description", "price", "icon", "discount", "promotion_end"}

var orderRowColumns = []string{
	"id", "total", "status", "fulfillment", "table_number", "timestamp_label", "created_at", "payment_phone",
	"delivery_id", "delivery_name", "delivery_address", "delivery_lng", "delivery_lat",
}

var orderItemRowColumns = []string{
	"order_id", "item_id", "category", "name", "description", "price", "icon", "discount", "promotion_end", "quantity",
}

func TestMemoryRepository_CopiesValues(t *testing.T) {
	repo := storage.NewMemoryRepository()
	item := &domain.MenuItem{ID: 7, Category: domain.CategoryMeals, Name: "Fufu", Price: 2500,
		Promotion: &domain.Promotion{Discount: 5, EndDate: "2030-01-01"}}
	require.NoError(t, repo.CreateItem(item))

	item.Name = "changed"
	item.Promotion.Discount = 80

	stored, err := repo.GetItem(domain.CategoryMeals, 7)
	require.NoError(t, err)
	assert.Equal(t, "Fufu", stored.Name)
	assert.Equal(t, 5, stored.Promotion.Discount)

	_, err = repo.GetItem(domain.CategoryDrinks, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateItem(&domain.MenuItem{ID: 8, Category: domain.CategoryMeals}), domain.ErrNotFound)

	affected, err := repo.DeleteItem(domain.CategoryMeals, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	affected, err = repo.DeleteItem(domain.CategoryMeals, 7)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestMemoryRepository_Orders(t *testing.T) {
	repo := storage.NewMemoryRepository()
	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, repo.CreateOrder(&domain.Order{ID: id, Status: domain.StatusPreparing,
			Items: []domain.CartLine{{Item: domain.MenuItem{ID: 1}, Quantity: 1}}}))
	}

	orders, err := repo.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{orders[0].ID, orders[1].ID, orders[2].ID})

	orders[0].Items[0].Quantity = 99
	stored, err := repo.GetOrder(10)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Items[0].Quantity)

	stored.Status = domain.StatusCompleted
	require.NoError(t, repo.UpdateOrder(stored))
	stored, err = repo.GetOrder(10)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)

	_, err = repo.GetOrder(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateOrder(&domain.Order{ID: 99}), domain.ErrNotFound)
}

func TestPostgresRepository_ListItems(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, category, name, description, price, icon, discount, promotion_end FROM menu_items").
		WithArgs("repas").
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow(1, "repas", "Burger Classique", "Pain artisanal", 3500, "🍔", nil, nil).
			AddRow(2, "repas", "Pizza Margherita", "Base tomate", 4000, "🍕", 15, "2025-06-15"))

	items, err := repo.ListItems(domain.CategoryMeals)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Promotion)
	require.NotNil(t, items[1].Promotion)
	assert.Equal(t, domain.Promotion{Discount: 15, EndDate: "2025-06-15"}, *items[1].Promotion)
	assert.Equal(t, int64(3400), items[1].EffectivePrice())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetItemNotFound(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("SELECT id, category, name").
		WithArgs("boissons", int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetItem(domain.CategoryDrinks, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ItemWrites(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		run     func(*storage.PostgresRepository) error
		wantErr error
	}{
		{
			name: "create with promotion",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO menu_items").
					WithArgs(int64(2), "repas", "Pizza", "Tomate", int64(4000), "🍕",
						sql.NullInt64{Int64: 15, Valid: true}, sql.NullString{String: "2025-06-15", Valid: true}).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(r *storage.PostgresRepository) error {
				return r.CreateItem(&domain.MenuItem{ID: 2, Category: domain.CategoryMeals, Name: "Pizza", Description: "Tomate",
					Price: 4000, Icon: "🍕", Promotion: &domain.Promotion{Discount: 15, EndDate: "2025-06-15"}})
			},
		},
		{
			name: "update clears promotion",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE menu_items").
					WithArgs("Pizza", "Tomate", int64(4000), "🍕", sql.NullInt64{}, sql.NullString{}, "repas", int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(r *storage.PostgresRepository) error {
				return r.UpdateItem(&domain.MenuItem{ID: 2, Category: domain.CategoryMeals, Name: "Pizza", Description: "Tomate", Price: 4000, Icon: "🍕"})
			},
		},
		{
			name: "update missing row",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE menu_items").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			run: func(r *storage.PostgresRepository) error {
				return r.UpdateItem(&domain.MenuItem{ID: 9, Category: domain.CategoryMeals})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "delete",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM menu_items").WithArgs("boissons", int64(101)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(r *storage.PostgresRepository) error {
				affected, err := r.DeleteItem(domain.CategoryDrinks, 101)
				if err == nil && affected != 1 {
					return assert.AnError
				}
				return err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			testCase.setup(mock)

			err := testCase.run(repo)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	repo, mock := setupTestDB(t)
	createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID: 1748781000000, Total: 5100, Status: domain.StatusDelivering, Fulfillment: domain.FulfillmentDelivery,
		TableNumber: "Table 5", Timestamp: "12:30:00", CreatedAt: createdAt, PaymentPhone: phone,
		DeliveryLocation: &campus,
		Items: []domain.CartLine{
			{Item: domain.MenuItem{ID: 1, Category: domain.CategoryMeals, Name: "Burger Classique", Description: "d", Price: 3500, Icon: "🍔"}, Quantity: 1},
			{Item: domain.MenuItem{ID: 101, Category: domain.CategoryDrinks, Name: "Coca-Cola", Description: "d", Price: 800, Icon: "🥤"}, Quantity: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.ID, int64(5100), "livraison", "delivery", "Table 5", "12:30:00", createdAt, phone,
			sql.NullString{String: "2", Valid: true}, sql.NullString{String: campus.Name, Valid: true},
			sql.NullString{String: campus.Address, Valid: true},
			sql.NullFloat64{Float64: campus.Coordinates.Lng, Valid: true}, sql.NullFloat64{Float64: campus.Coordinates.Lat, Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(order.ID, 0, int64(1), "repas", "Burger Classique", "d", int64(3500), "🍔",
		sql.NullInt64{}, sql.NullString{}, 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(order.ID, 1, int64(101), "boissons", "Coca-Cola", "d", int64(800), "🥤",
		sql.NullInt64{}, sql.NullString{}, 2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrderRollsBack(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateOrder(&domain.Order{ID: 1, Items: []domain.CartLine{{Item: domain.MenuItem{ID: 1}, Quantity: 1}}})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	repo, mock := setupTestDB(t)
	createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(42, 3500, "commande en cours", "dine-in", "Table 5", "12:30:00", createdAt, phone, nil, nil, nil, nil, nil))
	mock.ExpectQuery("SELECT (.+) FROM order_items WHERE order_id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(orderItemRowColumns).
			AddRow(42, 1, "repas", "Burger Classique", "d", 3500, "🍔", nil, nil, 1))

	order, err := repo.GetOrder(42)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	assert.Equal(t, domain.FulfillmentDineIn, order.Fulfillment)
	assert.Nil(t, order.DeliveryLocation)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Burger Classique", order.Items[0].Item.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetOrderNotFound(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("FROM orders").WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListOrders(t *testing.T) {
	repo, mock := setupTestDB(t)
	createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY id").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(1, 3500, "passé", "dine-in", "Table 5", "12:30:00", createdAt, phone, nil, nil, nil, nil, nil).
			AddRow(2, 1600, "livraison", "delivery", "Table 5", "12:31:00", createdAt, phone,
				"search", "Adresse recherchée", "Rue 12", 1.25, 6.15))
	mock.ExpectQuery("SELECT (.+) FROM order_items ORDER BY order_id, position").
		WillReturnRows(sqlmock.NewRows(orderItemRowColumns).
			AddRow(1, 1, "repas", "Burger Classique", "d", 3500, "🍔", nil, nil, 1).
			AddRow(2, 101, "boissons", "Coca-Cola", "d", 800, "🥤", 10, "2025-06-10", 2))

	orders, err := repo.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 1)
	require.NotNil(t, orders[1].DeliveryLocation)
	assert.Equal(t, "Rue 12", orders[1].DeliveryLocation.Address)
	assert.Equal(t, 10, orders[1].Items[0].Item.Promotion.Discount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateOrder(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs("passé", sql.NullString{}, sql.NullString{}, sql.NullString{}, sql.NullFloat64{}, sql.NullFloat64{}, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrder(&domain.Order{ID: 3, Status: domain.StatusCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS menu_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS order_items").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := storage.NewKafkaPublisher(writer)
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	evt := domain.NewOrderEvent(domain.EventOrderPlaced, domain.Order{
		ID: 1748781000000, Status: domain.StatusPreparing, Total: 3500,
		Items: []domain.CartLine{{Item: domain.MenuItem{ID: 1, Category: domain.CategoryMeals, Name: "Burger Classique"}, Quantity: 1}},
	}, at)
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), evt))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "1748781000000", string(writer.messages[0].Key))

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, evt, decoded)

	writer.err = assert.AnError
	assert.ErrorIs(t, publisher.PublishOrderEvent(context.Background(), evt), assert.AnError)
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func TestRabbitNotifier_Notify(t *testing.T) {
	ch := &fakeChannel{}
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	notice := service.Notice{
		Kind:       service.NoticePaymentSucceeded,
		CheckoutID: "c-1",
		Message:    "Paiement réussi !",
		At:         at,
	}

	storage.NewRabbitNotifier(ch, "checkout_notices").Notify(context.Background(), notice)

	assert.Equal(t, "checkout_notices", ch.exchange)
	assert.Equal(t, service.NoticePaymentSucceeded, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, "c-1", ch.msg.CorrelationId)
	assert.Equal(t, at, ch.msg.Timestamp)

	var decoded service.Notice
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, notice, decoded)
}

func TestRabbitNotifier_PublishErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}

	assert.NotPanics(t, func() {
		storage.NewRabbitNotifier(ch, "checkout_notices").Notify(context.Background(), service.Notice{Kind: service.NoticeOrderFailed})
	})
	assert.Equal(t, service.NoticeOrderFailed, ch.key)
}
