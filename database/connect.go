package database

import (
	"fmt"
	"strconv"

	"venue_manager/config"
	"venue_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.PackageType{},
		&model.ServiceCategory{},
		&model.Service{},
		&model.EventPackage{},
		&model.PaxPriceTier{},
		&model.PackageService{},
		&model.Venue{},
		&model.VenuePhoto{},
		&model.Theme{},
		&model.Asset{},
	)
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_packages_name_per_type ON event_packages (package_type_id, LOWER(name))")
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_ci ON service_categories (LOWER(name))")
	fmt.Println("Database Migrated")

	SeedData(DB)
}
