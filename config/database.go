package config

import (
	"log"

	"dinein-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to sqlite and migrates the schema. The handle is returned
// to the caller rather than stashed in a package variable; main owns its
// lifecycle and closes it on shutdown.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.Table{},
		&models.TableSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Staff{},
		&models.StaffInvite{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB releases the underlying connection pool
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedRestaurant creates the configured restaurant if it doesn't exist yet
func SeedRestaurant(db *gorm.DB, cfg *Config) (*models.Restaurant, error) {
	var r models.Restaurant
	err := db.Where(models.Restaurant{Slug: cfg.RestaurantSlug}).
		Attrs(models.Restaurant{Name: cfg.RestaurantName, TaxRate: 5, IsOpen: true}).
		FirstOrCreate(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SeedAdmin creates the first approved admin account from env credentials.
// Without it a fresh install would have nobody able to approve staff.
func SeedAdmin(db *gorm.DB, cfg *Config, restaurantID uint) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&models.Staff{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.Staff{
		RestaurantID: restaurantID,
		Email:        cfg.AdminEmail,
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
		IsApproved:   true,
	}
	return db.Create(&admin).Error
}
