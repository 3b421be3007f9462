package helper

import (
	"log"
	"time"

	"venue_manager/config"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/robfig/cron/v3"
)

var summaryScheduler *cron.Cron

func StartSummaryScheduler() {
	summaryScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// 23:55 every day
	_, err := summaryScheduler.AddFunc("55 23 * * *", sendDailyCatalogSummary)
	if err != nil {
		log.Printf("failed to start summary scheduler: %v", err)
		return
	}

	summaryScheduler.Start()
	log.Println("Daily summary scheduler started (23:55)")
}

func StopSummaryScheduler() {
	if summaryScheduler != nil {
		summaryScheduler.Stop()
		log.Println("Daily summary scheduler stopped")
	}
}

func sendDailyCatalogSummary() {
	to := config.Config("ADMIN_ALERT_EMAIL")
	if to == "" {
		return
	}

	db := database.DB
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	data := utils.CatalogSummaryData{Date: now.Format("2006-01-02")}
	db.Model(&model.EventPackage{}).Count(&data.PackageCount)
	db.Model(&model.EventPackage{}).Where("active = ?", true).Count(&data.ActivePackages)
	db.Model(&model.EventPackage{}).Where("created_at >= ?", startOfDay).Count(&data.PackagesCreated)
	db.Model(&model.Service{}).Where("active = ?", true).Count(&data.ServiceCount)
	db.Model(&model.Venue{}).Where("active = ?", true).Count(&data.VenueCount)

	var lowStock []model.Asset
	if err := db.Where("active = ? AND quantity <= low_stock_threshold", true).Find(&lowStock).Error; err != nil {
		log.Printf("failed to load low stock assets for summary: %v", err)
	}
	for _, asset := range lowStock {
		data.LowStockAssets = append(data.LowStockAssets, asset.Name)
	}

	utils.SendCatalogSummaryEmail(to, data)
}
