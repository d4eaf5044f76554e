package models

// PriceBand is the fixed unit-price range for a category, in currency units.
type PriceBand struct {
	Min float64
	Max float64
}

// MenuCatalog maps each of the six fixed categories to an ordered set of item
// names. It is built once at process start and never mutated afterwards;
// category iteration order is fixed so generation runs are reproducible.
type MenuCatalog struct {
	categories []string
	items      map[string][]string
}

// Categories returns the catalog's categories in their fixed order.
func (c *MenuCatalog) Categories() []string {
	return c.categories
}

// Items returns the ordered item names for a category, or nil if the
// category is not part of the catalog.
func (c *MenuCatalog) Items(category string) []string {
	return c.items[category]
}

// PriceBands holds the unit price range per category.
var PriceBands = map[string]PriceBand{
	CategoryMeal:      {8, 18},
	CategorySnack:     {3, 7},
	CategoryBakery:    {2, 5},
	CategoryBeverages: {2, 5},
	CategoryDesserts:  {4, 8},
	CategorySides:     {2, 6},
}

// DefaultCatalog returns the built-in menu covering a spread of cuisines so
// trained models generalise across restaurant types.
func DefaultCatalog() *MenuCatalog {
	return &MenuCatalog{
		categories: []string{
			CategoryMeal, CategorySnack, CategoryBakery,
			CategoryBeverages, CategoryDesserts, CategorySides,
		},
		items: map[string][]string{
			CategoryMeal: {
				// British
				"Fish and Chips", "Shepherd's Pie", "Bangers and Mash", "Cottage Pie",
				"Steak and Kidney Pie", "Roast Beef", "Sunday Roast", "Full English Breakfast",
				// Italian
				"Spaghetti Bolognese", "Carbonara", "Lasagne", "Risotto", "Pizza Margherita",
				"Pizza Pepperoni", "Penne Arrabbiata", "Ravioli", "Gnocchi",
				// Asian
				"Chicken Curry", "Thai Green Curry", "Pad Thai", "Fried Rice", "Noodles",
				"Sweet and Sour Chicken", "Beef in Black Bean", "Spring Rolls", "Dumplings",
				// American
				"Burger", "Cheeseburger", "Hot Dog", "Ribs", "Fried Chicken", "Mac and Cheese",
				// Mediterranean
				"Falafel", "Shawarma", "Kebab", "Moussaka", "Greek Salad",
				// Seafood
				"Grilled Salmon", "Fish Fingers", "Prawn Cocktail", "Calamari", "Tuna Steak",
				// Others
				"Steak", "Pork Chop", "Lamb Chops", "Chicken Breast", "Meatballs",
			},
			CategorySnack: {
				"Garlic Bread", "Chips", "Nachos", "Onion Rings", "Chicken Wings",
				"Mozzarella Sticks", "Bruschetta", "Olives", "Breadsticks", "Potato Wedges",
				"Popcorn Chicken", "Crisps", "Pretzels", "Cheese Sticks", "Samosas",
			},
			CategoryBakery: {
				"Croissant", "Pain au Chocolat", "Danish Pastry", "Muffin", "Scone",
				"Bagel", "Doughnut", "Cookie", "Brownie", "Cake Slice",
				"Tart", "Pie Slice", "Cupcake", "Biscuits", "Roll",
			},
			CategoryBeverages: {
				"Coffee", "Tea", "Hot Chocolate", "Latte", "Cappuccino",
				"Orange Juice", "Apple Juice", "Smoothie", "Milkshake", "Soft Drink",
				"Iced Tea", "Lemonade", "Water", "Energy Drink",
			},
			CategoryDesserts: {
				"Ice Cream", "Tiramisu", "Cheesecake", "Apple Pie", "Chocolate Cake",
				"Pudding", "Trifle", "Sundae", "Sorbet", "Mousse",
				"Panna Cotta", "Crème Brûlée", "Fruit Salad",
			},
			CategorySides: {
				"Salad", "Coleslaw", "Vegetables", "Rice", "Mashed Potato",
				"Roast Potatoes", "Bread Roll", "Soup", "Fries", "Sweet Potato Fries",
			},
		},
	}
}
