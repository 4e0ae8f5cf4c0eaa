// Package menu holds the fixed storefront menu. The menu is a build-time
// constant: it is never persisted and never changes while the process runs.
package menu

import "earlybirds/internal/model"

var items = []model.MenuItem{
	{
		ID:          "latte",
		Name:        "Caffè Latte",
		Price:       4.25,
		Description: "Rich espresso with steamed milk.",
		ImageURL:    "https://images.unsplash.com/photo-1512568448817-bb9a9604d72b?w=300&h=300&fit=crop",
	},
	{
		ID:          "macchiato",
		Name:        "Caramel Macchiato",
		Price:       4.95,
		Description: "Espresso with vanilla-flavored syrup, milk and caramel drizzle.",
		ImageURL:    "https://images.unsplash.com/photo-1485808191679-5f86510681a2?q=80&w=300&h=300&auto=format&fit=crop",
	},
	{
		ID:          "cold-brew",
		Name:        "Vanilla Sweet Cream Cold Brew",
		Price:       4.45,
		Description: "Slow-steeped cold brew topped with house-made vanilla sweet cream.",
		ImageURL:    "https://images.unsplash.com/photo-1517701604599-bb29b565090c?q=80&w=300&h=300&auto=format&fit=crop",
	},
	{
		ID:          "frappuccino",
		Name:        "Mocha Frappuccino",
		Price:       5.25,
		Description: "Coffee, mocha sauce and milk blended with ice and topped with whipped cream.",
		ImageURL:    "https://images.unsplash.com/photo-1572490122747-3968b75cc699?q=80&w=300&h=300&auto=format&fit=crop",
	},
	{
		ID:          "spring-latte",
		Name:        "Honey Lavender Latte",
		Price:       5.45,
		Description: "🌸 Spring Special: Creamy latte with hints of honey and floral lavender.",
		ImageURL:    "https://images.unsplash.com/photo-1596701062351-8c2c14d1fcd0?w=300&h=300&fit=crop",
	},
}

// Items returns the menu in declaration order. Callers must not mutate the
// returned slice.
func Items() []model.MenuItem {
	return items
}
