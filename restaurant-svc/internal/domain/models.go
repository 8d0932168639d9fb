package domain

import (
	"errors"
	"time"
)

// Category is the closed set of menu sections.
type Category string

const (
	CategoryMeals  Category = "repas"
	CategoryDrinks Category = "boissons"
)

var (
	ErrInvalidCategory = errors.New("unknown menu category")
	ErrNotFound        = errors.New("not found")
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryMeals, CategoryDrinks}
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryMeals, CategoryDrinks:
		return Category(s), nil
	}
	return "", ErrInvalidCategory
}

type Promotion struct {
	Discount int    `json:"discount"`
	EndDate  string `json:"end_date"`
}

type MenuItem struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Icon        string     `json:"image"`
	Category    Category   `json:"category"`
	Promotion   *Promotion `json:"promotion"`
}

// MenuView is a MenuItem as shown to customers and admins, with the
// promotional price already applied.
type MenuView struct {
	MenuItem
	EffectivePrice int64 `json:"effective_price"`
}

type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Item.Price * int64(l.Quantity)
}

type CartView struct {
	Lines     []CartLine `json:"lines"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"item_count"`
}

type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

type DeliveryLocation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coords"`
}

type FulfillmentType string

const (
	FulfillmentDineIn   FulfillmentType = "dine-in"
	FulfillmentDelivery FulfillmentType = "delivery"
)

var ErrInvalidFulfillment = errors.New("fulfillment type must be dine-in or delivery")

func ParseFulfillment(s string) (FulfillmentType, error) {
	switch FulfillmentType(s) {
	case FulfillmentDineIn, FulfillmentDelivery:
		return FulfillmentType(s), nil
	}
	return "", ErrInvalidFulfillment
}

type Order struct {
	ID               int64             `json:"id"`
	Items            []CartLine        `json:"items"`
	Total            int64             `json:"total"`
	Status           OrderStatus       `json:"status"`
	Fulfillment      FulfillmentType   `json:"fulfillment"`
	TableNumber      string            `json:"table_number"`
	Timestamp        string            `json:"timestamp"`
	CreatedAt        time.Time         `json:"created_at"`
	PaymentPhone     string            `json:"payment_phone"`
	DeliveryLocation *DeliveryLocation `json:"delivery_location,omitempty"`
}

// OrderStats backs the admin dashboard counters.
type OrderStats struct {
	Total      int `json:"total"`
	Preparing  int `json:"preparing"`
	Delivering int `json:"delivering"`
	Completed  int `json:"completed"`
}

// Summary backs the customer home page counters.
type Summary struct {
	CartItems    int `json:"cart_items"`
	OrdersPlaced int `json:"orders_placed"`
	OrdersServed int `json:"orders_served"`
}
