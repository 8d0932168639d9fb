package service

import (
	"fmt"

	"restaurant-digital/restaurant-svc/internal/domain"
)

// DefaultMenu is the catalog a fresh restaurant starts with.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Category: domain.CategoryMeals, Name: "Burger Classique", Description: "Pain artisanal, steak haché, salade, tomate, oignon", Price: 3500, Icon: "🍔"},
		{ID: 2, Category: domain.CategoryMeals, Name: "Pizza Margherita", Description: "Base tomate, mozzarella, basilic frais", Price: 4000, Icon: "🍕",
			Promotion: &domain.Promotion{Discount: 15, EndDate: "2025-06-15"}},
		{ID: 3, Category: domain.CategoryMeals, Name: "Salade César", Description: "Salade romaine, poulet grillé, parmesan, croûtons", Price: 2800, Icon: "🥗"},
		{ID: 4, Category: domain.CategoryMeals, Name: "Pâtes Carbonara", Description: "Spaghettis, lardons, crème, parmesan, œuf", Price: 3200, Icon: "🍝"},
		{ID: 5, Category: domain.CategoryMeals, Name: "Poisson Grillé", Description: "Filet de dorade, légumes de saison, riz", Price: 4500, Icon: "🐟"},
		{ID: 6, Category: domain.CategoryMeals, Name: "Couscous Royal", Description: "Semoule, agneau, merguez, légumes", Price: 5000, Icon: "🍲"},

		{ID: 101, Category: domain.CategoryDrinks, Name: "Coca-Cola", Description: "Boisson gazeuse rafraîchissante", Price: 800, Icon: "🥤",
			Promotion: &domain.Promotion{Discount: 10, EndDate: "2025-06-10"}},
		{ID: 102, Category: domain.CategoryDrinks, Name: "Jus d'Orange", Description: "Jus d'orange frais pressé", Price: 1000, Icon: "🍊"},
		{ID: 103, Category: domain.CategoryDrinks, Name: "Eau Minérale", Description: "Eau plate ou gazeuse", Price: 500, Icon: "💧"},
		{ID: 104, Category: domain.CategoryDrinks, Name: "Café Expresso", Description: "Café italien authentique", Price: 600, Icon: "☕"},
		{ID: 105, Category: domain.CategoryDrinks, Name: "Thé Vert", Description: "Thé vert bio aux herbes", Price: 700, Icon: "🍵"},
		{ID: 106, Category: domain.CategoryDrinks, Name: "Smoothie Tropical", Description: "Mangue, ananas, banane", Price: 1200, Icon: "🥤"},
	}
}

// SeedMenu stores DefaultMenu when the catalog is empty. It returns the
// number of items written.
func SeedMenu(repo CatalogRepository) (int, error) {
	for _, category := range domain.Categories() {
		existing, err := repo.ListItems(category)
		if err != nil {
			return 0, fmt.Errorf("list %s: %w", category, err)
		}
		if len(existing) > 0 {
			return 0, nil
		}
	}

	seeded := 0
	for _, item := range DefaultMenu() {
		item := item
		if err := repo.CreateItem(&item); err != nil {
			return seeded, fmt.Errorf("seed %q: %w", item.Name, err)
		}
		seeded++
	}
	return seeded, nil
}
