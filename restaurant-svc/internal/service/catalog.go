package service

import (
	"strings"
	"time"

	"restaurant-digital/restaurant-svc/internal/domain"
)

const promotionDateLayout = "2006-01-02"

func (a *App) Menu(category domain.Category) ([]domain.MenuView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	items, err := a.catalog.ListItems(category)
	if err != nil {
		return nil, err
	}
	views := make([]domain.MenuView, 0, len(items))
	for _, item := range items {
		views = append(views, item.View())
	}
	return views, nil
}

func validateMenuItem(item domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" ||
		strings.TrimSpace(item.Description) == "" ||
		strings.TrimSpace(item.Icon) == "" ||
		item.Price < 0 {
		return ErrInvalidMenuItem
	}
	return nil
}

func (a *App) CreateMenuItem(category domain.Category, item domain.MenuItem) (*domain.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	item.ID = a.ids.Next()
	item.Category = category
	item.Promotion = nil
	if err := a.catalog.CreateItem(&item); err != nil {
		return nil, err
	}
	log.Infof("menu item %d (%s) added to %s", item.ID, item.Name, category)
	return &item, nil
}

// UpdateMenuItem replaces the descriptive fields and keeps id, category and
// promotion.
func (a *App) UpdateMenuItem(category domain.Category, id int64, item domain.MenuItem) (*domain.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.catalog.GetItem(category, id)
	if err != nil {
		return nil, menuItemError(err)
	}
	current.Name = item.Name
	current.Description = item.Description
	current.Price = item.Price
	current.Icon = item.Icon
	if err := a.catalog.UpdateItem(current); err != nil {
		return nil, menuItemError(err)
	}
	return current, nil
}

func (a *App) RemoveMenuItem(category domain.Category, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	affected, err := a.catalog.DeleteItem(category, id)
	if err != nil {
		return menuItemError(err)
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	log.Infof("menu item %d removed from %s", id, category)
	return nil
}

func validatePromotion(discount int, endDate string) error {
	if discount < domain.MinDiscount || discount > domain.MaxDiscount {
		return ErrInvalidPromotion
	}
	if _, err := time.Parse(promotionDateLayout, strings.TrimSpace(endDate)); err != nil {
		return ErrInvalidPromotion
	}
	return nil
}

func (a *App) SetPromotion(category domain.Category, id int64, discount int, endDate string) (*domain.MenuItem, error) {
	if err := validatePromotion(discount, endDate); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	item, err := a.catalog.GetItem(category, id)
	if err != nil {
		return nil, menuItemError(err)
	}
	item.Promotion = &domain.Promotion{Discount: discount, EndDate: strings.TrimSpace(endDate)}
	if err := a.catalog.UpdateItem(item); err != nil {
		return nil, menuItemError(err)
	}
	return item, nil
}

func (a *App) ClearPromotion(category domain.Category, id int64) (*domain.MenuItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item, err := a.catalog.GetItem(category, id)
	if err != nil {
		return nil, menuItemError(err)
	}
	item.Promotion = nil
	if err := a.catalog.UpdateItem(item); err != nil {
		return nil, menuItemError(err)
	}
	return item, nil
}
