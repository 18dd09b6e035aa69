package localstore

import (
	"sync"
	"time"

	"foodies/internal/domain/entity"
)

// placeholderImageURL is attached to foods created through the local path,
// where no upload storage exists.
const placeholderImageURL = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800"

// seedUsers returns the fixed demo accounts. Copied fresh on every call so
// callers can never mutate the seed.
func seedUsers() []StoredUser {
	return []StoredUser{
		{User: entity.User{ID: "1", Name: "Admin User", Email: "admin@test.com", Role: entity.RoleAdmin}},
		{User: entity.User{ID: "2", Name: "John Doe", Email: "user@test.com", Role: entity.RoleUser}},
	}
}

// seedFoods returns the fixed demo catalog, one entry per category. The ids
// and prices match the original fixture set.
func seedFoods() []entity.FoodItem {
	now := time.Now().UTC()

	return []entity.FoodItem{
		{ID: "1", Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken pieces and traditional spices", Category: "Biryani", Price: 299, ImageURL: "https://images.pexels.com/photos/1624487/pexels-photo-1624487.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "2", Name: "Mutton Biryani", Description: "Rich and flavorful mutton biryani with saffron and ghee", Category: "Biryani", Price: 399, ImageURL: "https://images.pexels.com/photos/15146310/pexels-photo-15146310.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "3", Name: "Veg Biryani", Description: "Delicious vegetable biryani with mixed vegetables and aromatic spices", Category: "Biryani", Price: 199, ImageURL: "https://images.pexels.com/photos/4393426/pexels-photo-4393426.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "4", Name: "Classic Chicken Burger", Description: "Juicy chicken patty with lettuce, tomato, and our special sauce", Category: "Burgers", Price: 179, ImageURL: "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "6", Name: "Cheese Burger", Description: "Beef patty with melted cheese, onions, and pickles", Category: "Burgers", Price: 199, ImageURL: "https://images.pexels.com/photos/580612/pexels-photo-580612.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "7", Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil", Category: "Pizzas", Price: 249, ImageURL: "https://images.pexels.com/photos/2762942/pexels-photo-2762942.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "8", Name: "Pepperoni Pizza", Description: "Spicy pepperoni with mozzarella cheese and tomato sauce", Category: "Pizzas", Price: 299, ImageURL: "https://images.pexels.com/photos/2619970/pexels-photo-2619970.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "10", Name: "Butter Chicken", Description: "Creamy tomato-based chicken curry with aromatic spices", Category: "Curries", Price: 249, ImageURL: "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "11", Name: "Paneer Makhani", Description: "Rich and creamy paneer curry in tomato gravy", Category: "Curries", Price: 199, ImageURL: "https://images.pexels.com/photos/4393426/pexels-photo-4393426.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "12", Name: "Fresh Lime Soda", Description: "Refreshing lime soda with mint leaves", Category: "Drinks", Price: 79, ImageURL: "https://images.pexels.com/photos/1542252/pexels-photo-1542252.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "13", Name: "Mango Lassi", Description: "Creamy mango lassi made with fresh mangoes", Category: "Drinks", Price: 99, ImageURL: "https://images.pexels.com/photos/1143754/pexels-photo-1143754.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "14", Name: "Gulab Jamun", Description: "Soft and spongy milk dumplings in sugar syrup", Category: "Desserts", Price: 89, ImageURL: "https://images.pexels.com/photos/4449068/pexels-photo-4449068.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "15", Name: "Chocolate Brownie", Description: "Rich chocolate brownie with vanilla ice cream", Category: "Desserts", Price: 119, ImageURL: "https://images.pexels.com/photos/1854652/pexels-photo-1854652.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "34", Name: "Samosa", Description: "Crispy triangular pastry filled with spiced potatoes", Category: "Snacks", Price: 39, ImageURL: "https://images.pexels.com/photos/5560763/pexels-photo-5560763.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
		{ID: "39", Name: "Spaghetti Carbonara", Description: "Classic Italian pasta with eggs, cheese, and pancetta", Category: "Pasta", Price: 219, ImageURL: "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg?auto=compress&cs=tinysrgb&w=800", CreatedAt: now},
	}
}

// Catalog is the in-memory food catalog: the fixed seed plus any items
// created at runtime. Created items live for the process lifetime only,
// matching the original substitute's behavior.
type Catalog struct {
	mu    sync.RWMutex
	items []entity.FoodItem
}

// NewCatalog returns a catalog seeded with the demo fixture set.
func NewCatalog() *Catalog {
	return &Catalog{items: seedFoods()}
}

// List returns a copy of every catalog entry.
func (c *Catalog) List() []entity.FoodItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.FoodItem, len(c.items))
	copy(out, c.items)

	return out
}

// Find returns the entry with the given id, or nil.
func (c *Catalog) Find(id string) *entity.FoodItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]

			return &item
		}
	}

	return nil
}

// Add appends a new entry.
func (c *Catalog) Add(item entity.FoodItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// Remove deletes the entry with the given id, reporting whether it existed.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)

			return true
		}
	}

	return false
}
