// Package catalog holds the static restaurant menus. The data is loaded once
// at startup and never mutated; orders snapshot names and prices from it so
// later edits here cannot change past orders.
package catalog

type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Restaurant struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Description  string         `json:"description"`
	Rating       float64        `json:"rating"`
	DeliveryTime string         `json:"delivery_time"`
	Menu         []MenuCategory `json:"menu"`
}

// FieldKey is the form field name carrying the quantity for an item,
// "{category}_{item}".
func FieldKey(category, item string) string {
	return category + "_" + item
}

// All returns the restaurants in display order.
func All() []Restaurant {
	return restaurants
}

// Get looks a restaurant up by its id.
func Get(id string) (Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

var restaurants = []Restaurant{
	{
		ID:           "main_canteen",
		Name:         "Nalambagam Canteen",
		Image:        "klu_nalambagam.jpg",
		Description:  "Authentic South Indian cuisine with fresh ingredients and traditional flavors",
		Rating:       4.5,
		DeliveryTime: "15-20 min",
		Menu: []MenuCategory{
			{Name: "breakfast", Items: []MenuItem{
				{Name: "Idli", Price: 8},
				{Name: "Masala Dosa", Price: 45},
				{Name: "Pongal", Price: 35},
				{Name: "Vada", Price: 8},
				{Name: "Poori Set", Price: 30},
			}},
			{Name: "lunch", Items: []MenuItem{
				{Name: "Veg Meals", Price: 70},
				{Name: "Special Meals", Price: 90},
				{Name: "Chapati", Price: 15},
				{Name: "Chicken Fried Rice", Price: 100},
				{Name: "Veg Fried Rice", Price: 70},
				{Name: "Egg Fried Rice", Price: 80},
				{Name: "Biryani", Price: 110},
				{Name: "Plain Biryani", Price: 90},
			}},
			{Name: "snacks", Items: []MenuItem{
				{Name: "Samosa", Price: 15},
				{Name: "Bonda", Price: 20},
				{Name: "Sandwich", Price: 35},
				{Name: "Pani Puri", Price: 30},
				{Name: "Masala Puri", Price: 40},
			}},
			{Name: "beverages", Items: []MenuItem{
				{Name: "Tea", Price: 10},
				{Name: "Coffee", Price: 15},
				{Name: "Buttermilk", Price: 20},
				{Name: "Fresh Juice", Price: 35},
			}},
		},
	},
	{
		ID:           "madurai_lee",
		Name:         "Madurai Lee Corner",
		Image:        "madurai_lee_corner_logo.jpg",
		Description:  "Modern cafe serving premium coffee, teas, and delicious snacks",
		Rating:       4.3,
		DeliveryTime: "10-15 min",
		Menu: []MenuCategory{
			{Name: "coffee", Items: []MenuItem{
				{Name: "Filter Coffee", Price: 25},
				{Name: "Cappuccino", Price: 60},
				{Name: "Latte", Price: 70},
				{Name: "Espresso", Price: 50},
				{Name: "Americano", Price: 55},
				{Name: "Mocha", Price: 75},
			}},
			{Name: "tea", Items: []MenuItem{
				{Name: "Regular Tea", Price: 15},
				{Name: "Green Tea", Price: 30},
				{Name: "Masala Chai", Price: 25},
				{Name: "Herbal Tea", Price: 35},
				{Name: "Lemon Tea", Price: 30},
			}},
			{Name: "cold beverages", Items: []MenuItem{
				{Name: "Cold Coffee", Price: 65},
				{Name: "Milk Shake", Price: 80},
				{Name: "Smoothie", Price: 90},
				{Name: "Iced Tea", Price: 45},
				{Name: "Fresh Juice", Price: 60},
			}},
			{Name: "snacks", Items: []MenuItem{
				{Name: "Veg Sandwich", Price: 50},
				{Name: "Grilled Sandwich", Price: 65},
				{Name: "Burger", Price: 75},
				{Name: "Pizza Slice", Price: 85},
				{Name: "Cake", Price: 45},
				{Name: "Cookies", Price: 30},
			}},
		},
	},
	{
		ID:           "radha_krishna",
		Name:         "Radha Krishna",
		Image:        "radha_krishna.jpg",
		Description:  "Multi-cuisine restaurant offering South Indian, North Indian, and Chinese dishes",
		Rating:       4.4,
		DeliveryTime: "20-25 min",
		Menu: []MenuCategory{
			{Name: "south indian", Items: []MenuItem{
				{Name: "Ghee Roast Dosa", Price: 65},
				{Name: "Onion Uttapam", Price: 55},
				{Name: "Rava Dosa", Price: 50},
				{Name: "Pesarattu", Price: 45},
				{Name: "Set Dosa", Price: 40},
			}},
			{Name: "north indian", Items: []MenuItem{
				{Name: "Paneer Butter Masala", Price: 120},
				{Name: "Chole Bhature", Price: 80},
				{Name: "Dal Makhani", Price: 90},
				{Name: "Naan", Price: 25},
				{Name: "Roti", Price: 15},
			}},
			{Name: "chinese", Items: []MenuItem{
				{Name: "Noodles", Price: 70},
				{Name: "Fried Rice", Price: 65},
				{Name: "Manchurian", Price: 85},
				{Name: "Spring Rolls", Price: 60},
				{Name: "Schezwan Rice", Price: 75},
			}},
			{Name: "beverages", Items: []MenuItem{
				{Name: "Fresh Lime", Price: 30},
				{Name: "Mint Mojito", Price: 50},
				{Name: "Falooda", Price: 80},
				{Name: "Badam Milk", Price: 45},
				{Name: "Rose Milk", Price: 35},
			}},
		},
	},
}
