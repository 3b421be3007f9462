package database

import (
	"log"

	"venue_manager/model"
	"venue_manager/utils"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	packageTypes := []model.PackageType{
		{Name: "Wedding", Description: "Wedding receptions and ceremonies", Active: utils.Ptr(true)},
		{Name: "Corporate", Description: "Company events, launches and conferences", Active: utils.Ptr(true)},
		{Name: "Birthday", Description: "Birthday and debut celebrations", Active: utils.Ptr(true)},
	}
	for _, pt := range packageTypes {
		if err := db.Where(model.PackageType{Name: pt.Name}).FirstOrCreate(&pt).Error; err != nil {
			log.Println("failed to seed package type:", pt.Name, "error:", err)
		}
	}

	categories := []model.ServiceCategory{
		{Name: "Catering"},
		{Name: "Decoration"},
		{Name: "Photography"},
		{Name: "Sound And Lights"},
	}
	for _, cat := range categories {
		if err := db.Where(model.ServiceCategory{Name: cat.Name}).FirstOrCreate(&cat).Error; err != nil {
			log.Println("failed to seed service category:", cat.Name, "error:", err)
		}
	}

	themes := []model.Theme{
		{Name: "Classic Gold", PrimaryColor: "#C9A227", SecondaryColor: "#FFFFFF", AccentColor: "#1F2937", Active: utils.Ptr(true)},
		{Name: "Garden Green", PrimaryColor: "#2F855A", SecondaryColor: "#F0FFF4", AccentColor: "#744210", Active: utils.Ptr(true)},
	}
	for _, theme := range themes {
		if err := db.Where(model.Theme{Name: theme.Name}).FirstOrCreate(&theme).Error; err != nil {
			log.Println("failed to seed theme:", theme.Name, "error:", err)
		}
	}
}
