package main

import (
	"errors"
	"log"
	"os"
	"time"

	"restro-orders-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedCatalog loads a starter menu so a fresh install has something to show.
func SeedCatalog(db *gorm.DB) {
	categories := []model.MenuCategory{
		{Name: "Starters", SortOrder: 1},
		{Name: "Main Course", SortOrder: 2},
		{Name: "Breads", SortOrder: 3},
		{Name: "Desserts", SortOrder: 4},
		{Name: "Beverages", SortOrder: 5},
	}
	byName := make(map[string]model.MenuCategory, len(categories))
	for _, c := range categories {
		if err := db.Where("name = ?", c.Name).FirstOrCreate(&c).Error; err != nil {
			log.Printf("Error seeding category %s: %v", c.Name, err)
			continue
		}
		byName[c.Name] = c
	}

	item := func(name, desc string, price float64, category string) model.MenuItem {
		it := model.MenuItem{
			Name:        name,
			Description: desc,
			Price:       price,
			IsAvailable: true,
			IsVisible:   true,
		}
		if c, ok := byName[category]; ok {
			id := c.Id
			it.CategoryId = &id
		}
		return it
	}

	items := []model.MenuItem{
		item("Paneer Tikka", "Char-grilled cottage cheese with mint chutney", 220, "Starters"),
		item("Veg Manchurian", "Crispy vegetable dumplings in spicy sauce", 180, "Starters"),
		item("Dal Makhani", "Slow-cooked black lentils in butter", 240, "Main Course"),
		item("Paneer Butter Masala", "Cottage cheese in rich tomato gravy", 260, "Main Course"),
		item("Veg Biryani", "Fragrant basmati rice with seasonal vegetables", 230, "Main Course"),
		item("Butter Naan", "Tandoor-baked leavened bread", 45, "Breads"),
		item("Tandoori Roti", "Whole wheat tandoor bread", 25, "Breads"),
		item("Gulab Jamun", "Milk dumplings in cardamom syrup, 2 pcs", 90, "Desserts"),
		item("Masala Chaas", "Spiced buttermilk", 60, "Beverages"),
		item("Fresh Lime Soda", "Sweet, salted or mixed", 70, "Beverages"),
	}
	for _, it := range items {
		if err := db.Where("name = ?", it.Name).FirstOrCreate(&it).Error; err != nil {
			log.Printf("Error seeding menu item %s: %v", it.Name, err)
		}
	}

	starts := time.Now()
	ends := starts.AddDate(0, 1, 0)
	special := model.FestivalSpecial{
		Name:        "Festive Thali",
		Description: "Limited-time grand thali with seasonal sweets",
		Price:       399,
		StartsAt:    &starts,
		EndsAt:      &ends,
		IsActive:    true,
	}
	if err := db.Where("name = ?", special.Name).FirstOrCreate(&special).Error; err != nil {
		log.Printf("Error seeding festival special: %v", err)
	}

	log.Println("Menu catalog seeded.")
}

// SeedAdmin creates the staff account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Skipped when the account already exists or the env vars are missing.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin account already exists, skipping")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking admin account: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:         email,
		PasswordHash:  &hashStr,
		FullName:      "Restaurant Admin",
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
		ReferralCode:  "ADMIN-0001",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin account: %v", err)
		return
	}
	log.Printf("Admin account created: %s", email)
}
